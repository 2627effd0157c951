package std_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmolnar/go-atlink/proto/std"
	"github.com/zmolnar/go-atlink/wire"
)

func TestFinalResultTerminalSet(t *testing.T) {
	cases := []struct {
		name  string
		input string
		check func(t *testing.T, p *wire.Pack)
	}{
		{
			name:  "ok",
			input: "OK\r\n",
			check: func(t *testing.T, p *wire.Pack) {
				assert.True(t, wire.Holds[*std.Ok](p))
			},
		},
		{
			name:  "ok with leading crlf",
			input: "\r\nOK\r\n",
			check: func(t *testing.T, p *wire.Pack) {
				assert.True(t, wire.Holds[*std.Ok](p))
			},
		},
		{
			name:  "error",
			input: "ERROR\r\n",
			check: func(t *testing.T, p *wire.Pack) {
				assert.True(t, wire.Holds[*std.Error](p))
			},
		},
		{
			name:  "cms error",
			input: "+CMS ERROR: 321\r\n",
			check: func(t *testing.T, p *wire.Pack) {
				cms, ok := wire.As[*std.CmsError](p)
				require.True(t, ok)
				assert.Equal(t, int32(321), cms.Code)
			},
		},
		{
			name:  "cme error",
			input: "+CME ERROR: 11\r\n",
			check: func(t *testing.T, p *wire.Pack) {
				cme, ok := wire.As[*std.CmeError](p)
				require.True(t, ok)
				assert.Equal(t, std.CmeSimPin, cme.Code.Value)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pack := std.FinalResult()
			d := wire.NewDeserializer([]byte(tc.input))
			require.True(t, pack.Accept(d))
			assert.Equal(t, len(tc.input), d.Consumed())
			tc.check(t, pack)
		})
	}
}

func TestFinalResultExtrasArePreferred(t *testing.T) {
	// an extra shape is declared ahead of the terminal set and wins when
	// its frame matches
	pack := std.FinalResult(func() wire.Response { return &extendedOk{} })
	d := wire.NewDeserializer([]byte("OK: 3\r\n"))
	require.True(t, pack.Accept(d))
	ext, ok := wire.As[*extendedOk](pack)
	require.True(t, ok)
	assert.Equal(t, int32(3), ext.Code)
}

type extendedOk struct {
	Code int32
}

func (r *extendedOk) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "OK:", wire.Int(&r.Code))
}

func TestFinalResultUnknownLineDoesNotBind(t *testing.T) {
	pack := std.FinalResult()
	d := wire.NewDeserializer([]byte("+CREG: 1\r\n"))
	assert.False(t, pack.Accept(d))
	assert.False(t, pack.Bound())
}

func TestCmeErrorRejectsUndeclaredCode(t *testing.T) {
	e := std.NewCmeError()
	d := wire.NewDeserializer([]byte("+CME ERROR: 99\r\n"))
	assert.False(t, e.Accept(d))
}

func TestCpinCommands(t *testing.T) {
	t.Run("read is a query command", func(t *testing.T) {
		buf := make([]byte, 32)
		s := wire.NewSerializer(buf)
		require.True(t, (&std.CpinRead{}).Accept(s))
		assert.Equal(t, "+CPIN?\r\n", string(s.Bytes()))
	})

	t.Run("write uses bare CR", func(t *testing.T) {
		buf := make([]byte, 32)
		s := wire.NewSerializer(buf)
		require.True(t, (&std.CpinWrite{Pin: 1234}).Accept(s))
		assert.Equal(t, "+CPIN=1234\r", string(s.Bytes()))
	})
}

func TestCpinReadResponse(t *testing.T) {
	for _, tc := range []struct {
		wireStr string
		want    std.CpinCode
	}{
		{"READY", std.CpinReady},
		{"SIM_PIN", std.CpinSimPin},
		{"SIM_PUK", std.CpinSimPuk},
		{"PH_SIM_PIN", std.CpinPhSimPin},
	} {
		r := std.NewCpinReadResponse()
		d := wire.NewDeserializer([]byte("+CPIN: " + tc.wireStr + "\r\n"))
		require.True(t, r.Accept(d), tc.wireStr)
		assert.Equal(t, tc.want, r.Code.Value, tc.wireStr)
	}
}

func TestAtiRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	s := wire.NewSerializer(buf)
	require.True(t, (&std.Ati{}).Accept(s))
	assert.Equal(t, "ATI\r\n", string(s.Bytes()))

	input := "\r\n+ATI:\r\nAcme Telecom\r\nAT9000\r\nr1.2.3\r\n\r\nOK\r\n"
	r := std.NewAtiResponse()
	d := wire.NewDeserializer([]byte(input))
	require.True(t, r.Accept(d))
	assert.Equal(t, "Acme Telecom", r.Manufacturer.Text.String())
	assert.Equal(t, "AT9000", r.Model.Text.String())
	assert.Equal(t, "r1.2.3", r.Revision.Text.String())

	// the rest of the input must parse as a final result
	pack := std.FinalResult()
	d2 := wire.NewDeserializer([]byte(input[d.Consumed():]))
	require.True(t, pack.Accept(d2))
	assert.True(t, wire.Holds[*std.Ok](pack))
}

func TestRawCommand(t *testing.T) {
	buf := make([]byte, 32)
	s := wire.NewSerializer(buf)
	require.True(t, (&std.Raw{Line: "AT+CSQ"}).Accept(s))
	assert.Equal(t, "AT+CSQ\r\n", string(s.Bytes()))
}
