package std

import "github.com/zmolnar/go-atlink/wire"

const atiLineLen = 32

// Ati requests device identification.
type Ati struct{}

func (c *Ati) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "ATI", wire.TermCrLf)
}

// AtiLine is one free-text identification line.
type AtiLine struct {
	Text wire.LineText
}

func (l *AtiLine) AcceptLine(v wire.InputVisitor) bool {
	return wire.ParseLine(v, "", &l.Text)
}

// AtiResponse is the multi-line identification block: manufacturer,
// model and revision, each on its own line.
type AtiResponse struct {
	Manufacturer AtiLine
	Model        AtiLine
	Revision     AtiLine
}

func NewAtiResponse() *AtiResponse {
	return &AtiResponse{
		Manufacturer: AtiLine{Text: wire.NewLineText(atiLineLen)},
		Model:        AtiLine{Text: wire.NewLineText(atiLineLen)},
		Revision:     AtiLine{Text: wire.NewLineText(atiLineLen)},
	}
}

func (r *AtiResponse) Accept(v wire.InputVisitor) bool {
	return wire.ParseMultiLine(v, "+ATI:", &r.Manufacturer, &r.Model, &r.Revision)
}
