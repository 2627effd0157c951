package wire

// Field is one comma-separated element of a frame, usable on both the
// serialize and the parse path. QuotedString, LineText and the enum
// types implement it directly; Int adapts a plain integer.
type Field interface {
	emit(v OutputVisitor) bool
	parse(v InputVisitor) bool
}

// Int adapts an int32 as a frame field.
func Int(p *int32) Field { return intField{p} }

type intField struct{ p *int32 }

func (f intField) emit(v OutputVisitor) bool { return v.Int(*f.p) }
func (f intField) parse(v InputVisitor) bool { return v.Int(f.p) }

// EmitCommand drives v over the tag, the comma-separated fields and the
// terminator. Zero-field commands still emit `tag TERM`.
func EmitCommand(v OutputVisitor, tag string, term Term, fields ...Field) bool {
	if tag != "" && !v.Sequence(tag) {
		return false
	}
	for i, f := range fields {
		if i > 0 && !v.Sequence(comma) {
			return false
		}
		if !f.emit(v) {
			return false
		}
	}
	return v.Sequence(term.literal())
}

// ParseResponse recovers `tag (, field)* CRLF` from v. An optional
// leading CRLF before the tag is tolerated; this is a parsing rule, not
// part of the response shape.
func ParseResponse(v InputVisitor, tag string, fields ...Field) bool {
	v.Sequence(CrLf)
	if tag != "" && !v.Sequence(tag) {
		return false
	}
	for i, f := range fields {
		if i > 0 && !v.Sequence(comma) {
			return false
		}
		if !f.parse(v) {
			return false
		}
	}
	return v.Sequence(CrLf)
}

// Liner is one line of a multi-line response.
type Liner interface {
	AcceptLine(v InputVisitor) bool
}

// ParseLine recovers one `tag? (field (, field)*)? CRLF` sub-frame of a
// multi-line response. Unlike ParseResponse no leading CRLF is accepted.
func ParseLine(v InputVisitor, tag string, fields ...Field) bool {
	if tag != "" && !v.Sequence(tag) {
		return false
	}
	for i, f := range fields {
		if i > 0 && !v.Sequence(comma) {
			return false
		}
		if !f.parse(v) {
			return false
		}
	}
	return v.Sequence(CrLf)
}

// ParseMultiLine recovers an optional leading CRLF, the parent tag, a
// CRLF, then each line in declaration order. The empty line following
// the last child is deliberately left in the input: the final result
// code that follows eats it through its own leading-CRLF tolerance.
func ParseMultiLine(v InputVisitor, tag string, lines ...Liner) bool {
	v.Sequence(CrLf)
	if tag != "" && !v.Sequence(tag) {
		return false
	}
	if !v.Sequence(CrLf) {
		return false
	}
	for _, ln := range lines {
		if !ln.AcceptLine(v) {
			return false
		}
	}
	return true
}
