package std

import "github.com/zmolnar/go-atlink/wire"

// Ok is the positive final result code.
type Ok struct{}

func (o *Ok) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "OK")
}

// Error is the generic negative final result code.
type Error struct{}

func (e *Error) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "ERROR")
}
