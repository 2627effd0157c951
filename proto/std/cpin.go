package std

import "github.com/zmolnar/go-atlink/wire"

// CpinCode is the SIM lock state reported by +CPIN.
type CpinCode int32

const (
	CpinReady CpinCode = iota
	CpinSimPin
	CpinSimPuk
	CpinPhSimPin
	CpinPhSimPuk
	CpinSimPin2
	CpinSimPuk2
)

// cpinCodes maps the wire strings to variants, strictly sorted by key.
var cpinCodes = wire.NewTable(
	wire.TableEntry[CpinCode]{Key: "PH_SIM_PIN", Value: CpinPhSimPin},
	wire.TableEntry[CpinCode]{Key: "PH_SIM_PUK", Value: CpinPhSimPuk},
	wire.TableEntry[CpinCode]{Key: "READY", Value: CpinReady},
	wire.TableEntry[CpinCode]{Key: "SIM_PIN", Value: CpinSimPin},
	wire.TableEntry[CpinCode]{Key: "SIM_PIN2", Value: CpinSimPin2},
	wire.TableEntry[CpinCode]{Key: "SIM_PUK", Value: CpinSimPuk},
	wire.TableEntry[CpinCode]{Key: "SIM_PUK2", Value: CpinSimPuk2},
)

// CpinRead queries the SIM lock state.
type CpinRead struct{}

func (c *CpinRead) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "+CPIN?", wire.TermCrLf)
}

// CpinWrite submits the PIN. Write-style command, bare CR terminator.
type CpinWrite struct {
	Pin int32
}

func (c *CpinWrite) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "+CPIN=", wire.TermCr, wire.Int(&c.Pin))
}

// CpinReadResponse carries the lock state for CpinRead.
type CpinReadResponse struct {
	Code wire.Tabled[CpinCode]
}

func NewCpinReadResponse() *CpinReadResponse {
	return &CpinReadResponse{Code: cpinCodes.Bind(CpinReady)}
}

func (r *CpinReadResponse) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "+CPIN:", &r.Code)
}
