package fsm

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmolnar/go-atlink/platform"
	"github.com/zmolnar/go-atlink/platform/loopback"
	"github.com/zmolnar/go-atlink/wire"
)

// Minimal shapes for driving the engine.

type okResult struct{}

func (r *okResult) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "OK")
}

type errResult struct{}

func (r *errResult) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "ERROR")
}

func newResultPack() *wire.Pack {
	return wire.NewPack(
		func() wire.Response { return &okResult{} },
		func() wire.Response { return &errResult{} },
	)
}

type pingCommand struct{}

func (c *pingCommand) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "AT", wire.TermCrLf)
}

type statusCommand struct{}

func (c *statusCommand) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "+STATUS?", wire.TermCrLf)
}

type statusResponse struct {
	value int32
}

func (r *statusResponse) Accept(v wire.InputVisitor) bool {
	return wire.ParseResponse(v, "+STATUS:", wire.Int(&r.value))
}

type bigCommand struct{}

func (c *bigCommand) Accept(v wire.OutputVisitor) bool {
	return wire.EmitCommand(v, "+BIG:0123456789ABCDEF", wire.TermCrLf)
}

func startEngine(t *testing.T, dev platform.DeviceIO, urcs wire.URCDispatcher, cfg Config) *Orchestrator {
	t.Helper()
	o := New(dev, urcs, cfg)
	done := make(chan struct{})
	go func() {
		o.Loop()
		close(done)
	}()
	t.Cleanup(func() {
		o.ShutDown()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("worker did not exit on shutdown")
		}
	})
	return o
}

func TestExchangeWithFinalResultOnly(t *testing.T) {
	dev := loopback.New(loopback.Exchange{Expect: "AT\r\n", Reply: "\r\nOK\r\n"})
	o := startEngine(t, dev, wire.NewURCPack(), Config{})

	result := newResultPack()
	ec := o.SendCommand(result, &pingCommand{}, nil)

	require.Equal(t, NoError, ec)
	assert.True(t, wire.Holds[*okResult](result))
}

func TestExchangeWithResponsePayload(t *testing.T) {
	dev := loopback.New(loopback.Exchange{
		Expect: "+STATUS?\r\n",
		Reply:  "\r\n+STATUS: 5\r\nOK\r\n",
	})
	o := startEngine(t, dev, wire.NewURCPack(), Config{})

	result := newResultPack()
	resp := &statusResponse{}
	ec := o.SendCommand(result, &statusCommand{}, resp)

	require.Equal(t, NoError, ec)
	assert.Equal(t, int32(5), resp.value)
	assert.True(t, wire.Holds[*okResult](result))
}

// A terminal ERROR still completes the exchange; the caller reads the
// disposition from the bound alternative.
func TestExchangeErrorResultIsStillCompletion(t *testing.T) {
	dev := loopback.New(loopback.Exchange{Expect: "AT\r\n", Reply: "\r\nERROR\r\n"})
	o := startEngine(t, dev, wire.NewURCPack(), Config{})

	result := newResultPack()
	ec := o.SendCommand(result, &pingCommand{}, nil)

	require.Equal(t, NoError, ec)
	assert.True(t, wire.Holds[*errResult](result))
}

// URCs arriving in the same byte run as the response must not starve it,
// and vice versa.
func TestExchangeInterleavedWithURCs(t *testing.T) {
	dev := loopback.New(loopback.Exchange{
		Expect: "+STATUS?\r\n",
		Reply:  "+RING: 1\r\n\r\n+STATUS: 9\r\n+RING: 2\r\nOK\r\n",
	})
	urcs := wire.NewURCPack()
	var mu sync.Mutex
	var seen []string
	urcs.SetHandler(func(r wire.Response) {
		if any, ok := r.(*wire.AnyUrc); ok {
			mu.Lock()
			seen = append(seen, any.Payload.String())
			mu.Unlock()
		}
	})
	o := startEngine(t, dev, urcs, Config{})

	result := newResultPack()
	resp := &statusResponse{}
	ec := o.SendCommand(result, &statusCommand{}, resp)

	require.Equal(t, NoError, ec)
	assert.Equal(t, int32(9), resp.value)
	assert.True(t, wire.Holds[*okResult](result))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"+RING: 1", "+RING: 2"}, seen)
}

// Bytes split across reads are buffered as leftover until the frame
// completes.
func TestExchangeReassemblesPartialFrames(t *testing.T) {
	dev := loopback.New(loopback.Exchange{
		Expect: "+STATUS?\r\n",
		Reply:  "\r\n+STATUS: 4", // first half only
	})
	o := startEngine(t, dev, wire.NewURCPack(), Config{})

	result := newResultPack()
	resp := &statusResponse{}
	done := make(chan ErrorCode, 1)
	go func() { done <- o.SendCommand(result, &statusCommand{}, resp) }()

	select {
	case <-done:
		t.Fatal("exchange completed on a partial frame")
	case <-time.After(50 * time.Millisecond):
	}

	dev.Push("2\r\nOK\r\n")

	select {
	case ec := <-done:
		require.Equal(t, NoError, ec)
		assert.Equal(t, int32(42), resp.value)
		assert.True(t, wire.Holds[*okResult](result))
	case <-time.After(2 * time.Second):
		t.Fatal("exchange did not complete after the second half")
	}
}

func TestIdleURCDrain(t *testing.T) {
	dev := loopback.New()
	urcs := wire.NewURCPack()
	var mu sync.Mutex
	var seen []string
	urcs.SetHandler(func(r wire.Response) {
		if any, ok := r.(*wire.AnyUrc); ok {
			mu.Lock()
			seen = append(seen, any.Payload.String())
			mu.Unlock()
		}
	})
	startEngine(t, dev, urcs, Config{})

	dev.Push("+CREG: 1\r\n+CSQ: 23,0\r\n")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"+CREG: 1", "+CSQ: 23,0"}, seen)
}

func TestSerializationFailure(t *testing.T) {
	dev := loopback.New()
	o := startEngine(t, dev, wire.NewURCPack(), Config{BufferSize: 16})

	result := newResultPack()
	ec := o.SendCommand(result, &bigCommand{}, nil)

	assert.Equal(t, ErrSerialize, ec)
	assert.Empty(t, dev.Writes())
}

func TestShortWriteFailure(t *testing.T) {
	dev := loopback.New(loopback.Exchange{Reply: "OK\r\n"})
	dev.SetShortWrite(2)
	o := startEngine(t, dev, wire.NewURCPack(), Config{})

	result := newResultPack()
	ec := o.SendCommand(result, &pingCommand{}, nil)

	assert.Equal(t, ErrWrite, ec)
}

// The cooldown separates consecutive sends by at least the configured
// quiet window.
func TestCooldownBetweenExchanges(t *testing.T) {
	const cooldown = 60 * time.Millisecond
	dev := loopback.New(
		loopback.Exchange{Expect: "AT\r\n", Reply: "OK\r\n"},
		loopback.Exchange{Expect: "AT\r\n", Reply: "OK\r\n"},
	)
	o := startEngine(t, dev, wire.NewURCPack(), Config{Cooldown: cooldown})

	require.Equal(t, NoError, o.SendCommand(newResultPack(), &pingCommand{}, nil))
	first := time.Now()
	require.Equal(t, NoError, o.SendCommand(newResultPack(), &pingCommand{}, nil))
	elapsed := time.Since(first)

	assert.GreaterOrEqual(t, elapsed, cooldown-5*time.Millisecond,
		"second send must wait out the cooldown")
	assert.Len(t, dev.Writes(), 2)
}

// Concurrent senders are fully serialized: one exchange in flight at a
// time, every caller completes.
func TestConcurrentSendersAreSerialized(t *testing.T) {
	const callers = 4
	script := make([]loopback.Exchange, callers)
	for i := range script {
		script[i] = loopback.Exchange{Expect: "AT\r\n", Reply: "OK\r\n"}
	}
	dev := loopback.New(script...)
	o := startEngine(t, dev, wire.NewURCPack(), Config{Cooldown: time.Millisecond})

	var wg sync.WaitGroup
	codes := make([]ErrorCode, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = o.SendCommand(newResultPack(), &pingCommand{}, nil)
		}(i)
	}
	wg.Wait()

	for i, ec := range codes {
		assert.Equal(t, NoError, ec, "caller %d", i)
	}
	assert.Len(t, dev.Writes(), callers)
}

// Shutdown releases a caller parked on an exchange the device never
// answers, with a distinct error code.
func TestShutdownReleasesWaitingCaller(t *testing.T) {
	dev := loopback.New(loopback.Exchange{Expect: "AT\r\n", Reply: ""})
	o := New(dev, wire.NewURCPack(), Config{})
	done := make(chan struct{})
	go func() {
		o.Loop()
		close(done)
	}()

	result := newResultPack()
	got := make(chan ErrorCode, 1)
	go func() { got <- o.SendCommand(result, &pingCommand{}, nil) }()

	// let the command reach the waiting state
	assert.Eventually(t, func() bool { return len(dev.Writes()) == 1 },
		2*time.Second, time.Millisecond)

	o.ShutDown()

	select {
	case ec := <-got:
		assert.Equal(t, ErrShutDown, ec)
	case <-time.After(2 * time.Second):
		t.Fatal("caller was not released on shutdown")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit")
	}

	// later callers fail fast
	assert.Equal(t, ErrShutDown, o.SendCommand(newResultPack(), &pingCommand{}, nil))
}
