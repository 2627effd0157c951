package wire

// anyUrcPayload bounds the raw text captured for an unrecognized URC.
const anyUrcPayload = 512

// AnyUrc is the catch-all unsolicited result code: an empty tag and a
// single raw-until-terminator payload. Placed last in a URC pack it
// parses any non-empty CRLF-terminated line of up to anyUrcPayload bytes.
// A lone empty line does not parse on its own (the leading-CRLF tolerance
// takes its terminator), and a longer line does not parse at all.
type AnyUrc struct {
	Payload LineText
}

// NewAnyUrc returns a catch-all URC candidate.
func NewAnyUrc() *AnyUrc {
	return &AnyUrc{Payload: NewLineText(anyUrcPayload)}
}

func (u *AnyUrc) Accept(v InputVisitor) bool {
	return ParseResponse(v, "", &u.Payload)
}

// URCDispatcher consumes unsolicited result codes from the head of an
// input buffer. Dispatch returns the number of bytes consumed, or 0 when
// the input does not hold a complete line.
type URCDispatcher interface {
	Dispatch(input []byte) int
}

// URCPack is a response pack whose final alternative is AnyUrc, so
// Dispatch consumes any line at the head of the input that AnyUrc
// accepts; a lone empty line stays in the input until the next line
// arrives.
type URCPack struct {
	Pack
	handler func(Response)
}

// NewURCPack declares a URC pack over the given alternatives plus the
// AnyUrc fallback.
func NewURCPack(alts ...Factory) *URCPack {
	alts = append(append([]Factory(nil), alts...), func() Response { return NewAnyUrc() })
	return &URCPack{Pack: *NewPack(alts...)}
}

// SetHandler installs a callback invoked with the bound URC after every
// successful Dispatch.
func (u *URCPack) SetHandler(fn func(Response)) { u.handler = fn }

// Dispatch attempts one URC parse from the head of input.
func (u *URCPack) Dispatch(input []byte) int {
	d := NewDeserializer(input)
	if !u.Accept(d) {
		return 0
	}
	if u.handler != nil {
		u.handler(u.Value())
	}
	return d.Consumed()
}
