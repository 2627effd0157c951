package std

import "github.com/zmolnar/go-atlink/wire"

// CmsError is the message-service error final result, `+CMS ERROR: <n>`.
// The code space is carrier-defined, so it is transported as a plain
// integer.
type CmsError struct {
	Code int32
}

func NewCmsError() *CmsError { return &CmsError{} }

func (e *CmsError) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "+CMS ERROR:", wire.Int(&e.Code))
}
