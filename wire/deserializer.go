package wire

import (
	"bytes"
	"strconv"
)

// Deserializer recovers fields from an input buffer. The cursor only
// moves forward; Rewind resets it so a pack can trial-parse the same
// input against several candidate shapes.
type Deserializer struct {
	input []byte
	pos   int
}

// NewDeserializer wraps the input to parse. The buffer is borrowed, not
// copied.
func NewDeserializer(input []byte) *Deserializer {
	return &Deserializer{input: input}
}

func (d *Deserializer) Rewind() { d.pos = 0 }

// Consumed reports how far the cursor has advanced, whitespace included.
func (d *Deserializer) Consumed() int { return d.pos }

// skipSpace consumes leading ASCII space and tab. The skipped bytes stay
// consumed even when the field after them fails to parse.
func (d *Deserializer) skipSpace() {
	for d.pos < len(d.input) {
		c := d.input[d.pos]
		if c != ' ' && c != '\t' {
			return
		}
		d.pos++
	}
}

func (d *Deserializer) Sequence(seq string) bool {
	d.skipSpace()
	rest := d.input[d.pos:]
	if len(rest) < len(seq) || string(rest[:len(seq)]) != seq {
		return false
	}
	d.pos += len(seq)
	return true
}

func (d *Deserializer) Int(dst *int32) bool {
	d.skipSpace()
	n := scanInt(d.input[d.pos:])
	if n == 0 {
		return false
	}
	v, err := strconv.ParseInt(string(d.input[d.pos:d.pos+n]), 10, 32)
	if err != nil {
		return false
	}
	*dst = int32(v)
	d.pos += n
	return true
}

// Quoted parses a double-quoted literal, unescaping \" in the body. When
// the body does not fit the destination the field fails, the destination
// is left empty, and only the two delimiter bytes are consumed.
func (d *Deserializer) Quoted(q *QuotedString) bool {
	d.skipSpace()
	rest := d.input[d.pos:]
	if len(rest) == 0 || rest[0] != '"' {
		return false
	}
	q.Reset()
	overflow := false
	i := 1
	for i < len(rest) {
		c := rest[i]
		if c == '\\' && i+1 < len(rest) && rest[i+1] == '"' {
			c = '"'
			i += 2
		} else if c == '"' {
			// closing delimiter
			if overflow {
				q.Reset()
				d.pos += 2
				return false
			}
			d.pos += i + 1
			return true
		} else {
			i++
		}
		if !overflow && q.n < len(q.buf) {
			q.buf[q.n] = c
			q.n++
		} else {
			overflow = true
		}
	}
	// no closing quote in the input
	q.Reset()
	return false
}

func (d *Deserializer) Line(t *LineText) bool {
	rest := d.input[d.pos:]
	end := bytes.Index(rest, []byte(CrLf))
	if end < 0 {
		end = len(rest)
	}
	d.pos += t.set(rest[:end])
	return true
}

func (d *Deserializer) Enum(e Enum) bool {
	d.skipSpace()
	n := e.Parse(d.input[d.pos:])
	if n == 0 {
		return false
	}
	d.pos += n
	return true
}
