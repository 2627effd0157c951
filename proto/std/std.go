// Package std carries the standard response and command shapes every
// AT-style device speaks: the terminal result set (OK, ERROR, +CMS
// ERROR, +CME ERROR) and a few common commands (CPIN, ATI).
package std

import "github.com/zmolnar/go-atlink/wire"

// FinalResult builds the result pack for a command exchange: the caller
// supplied extras first (preferred matches), then the terminal set
// Ok / Error / CmsError / CmeError.
func FinalResult(extras ...wire.Factory) *wire.Pack {
	alts := append(append([]wire.Factory(nil), extras...),
		func() wire.Response { return &Ok{} },
		func() wire.Response { return &Error{} },
		func() wire.Response { return NewCmsError() },
		func() wire.Response { return NewCmeError() },
	)
	return wire.NewPack(alts...)
}
