package std

import "github.com/zmolnar/go-atlink/wire"

// Raw sends an arbitrary command line verbatim, CRLF terminated. Used by
// interactive front-ends where the command text is typed by the user.
type Raw struct {
	Line string
}

func (r *Raw) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, r.Line, wire.TermCrLf)
}
