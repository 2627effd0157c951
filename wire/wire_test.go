package wire_test

import (
	"github.com/zmolnar/go-atlink/wire"
)

// Shared fixtures: a command and a response exercising every field kind.

type strCode int32

const (
	codeFive strCode = iota
	codeSix
	codeSeven
	codeEight
	codeNine
)

var strCodes = wire.NewTable(
	wire.TableEntry[strCode]{Key: "Eight", Value: codeEight},
	wire.TableEntry[strCode]{Key: "Five", Value: codeFive},
	wire.TableEntry[strCode]{Key: "Nine", Value: codeNine},
	wire.TableEntry[strCode]{Key: "Seven", Value: codeSeven},
	wire.TableEntry[strCode]{Key: "Six", Value: codeSix},
)

func newIntEnum() wire.Numeric[int32] {
	return wire.NewNumeric[int32](0, 1, 2, 3, 4)
}

type testCommand struct {
	num     int32
	str     wire.QuotedString
	intEnum wire.Numeric[int32]
	strEnum wire.Tabled[strCode]
}

func newTestCommand() *testCommand {
	return &testCommand{
		num:     123456,
		str:     wire.NewQuotedString(32),
		intEnum: newIntEnum(),
		strEnum: strCodes.Bind(codeFive),
	}
}

func (c *testCommand) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "+TEST CMD:", wire.TermCrLf,
		wire.Int(&c.num), &c.str, &c.intEnum, &c.strEnum)
}

type testResponse struct {
	num     int32
	str     wire.QuotedString
	intEnum wire.Numeric[int32]
	strEnum wire.Tabled[strCode]
}

func newTestResponse() *testResponse {
	return &testResponse{
		str:     wire.NewQuotedString(32),
		intEnum: newIntEnum(),
		strEnum: strCodes.Bind(codeFive),
	}
}

func (r *testResponse) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "+TEST:",
		wire.Int(&r.num), &r.str, &r.intEnum, &r.strEnum)
}
