package fsm

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zmolnar/go-atlink/internal/logging"
	"github.com/zmolnar/go-atlink/platform"
	"github.com/zmolnar/go-atlink/wire"
)

// Engine defaults, used when the corresponding Config field is zero.
const (
	DefaultCooldown   = 20 * time.Millisecond
	DefaultBufferSize = 512
	DefaultQueueDepth = 16
)

// exchange is one outstanding command/response transaction. The caller
// owns every field for the lifetime of the call; the engine only borrows
// them while the exchange is in flight.
type exchange struct {
	result *wire.Pack
	cmd    wire.Command
	resp   wire.Response // nil when the command has no payload response
	sem    *platform.Semaphore
	ec     *ErrorCode

	gotResp   bool
	gotResult bool
}

type stateKind uint8

const (
	stIdle stateKind = iota
	stSending
	stWaiting
)

// state is a tagged variant: the request in flight lives inside the
// Sending and Waiting arms, so "a request with no owner" cannot be
// represented.
type state struct {
	kind stateKind
	req  *exchange
}

// Config tunes an Orchestrator.
type Config struct {
	Cooldown   time.Duration
	BufferSize int
	QueueDepth int
	Observer   Observer
	Logger     *logging.Logger
}

// Orchestrator multiplexes command/response exchanges and URC traffic
// over one byte device. One long-lived worker (Loop) owns the transport
// state; callers enter through SendCommand and block until their
// exchange terminates.
type Orchestrator struct {
	io  platform.DeviceIO
	urc wire.URCDispatcher
	obs Observer
	log *logging.Logger

	mu   sync.Mutex
	idle *sync.Cond
	st   state
	down bool

	events   *platform.Queue[event]
	cool     platform.Timer
	cooldown time.Duration

	rx       []byte
	tx       []byte
	leftover int

	stopped atomic.Bool
}

// New wires an orchestrator to a device and a URC dispatcher and
// subscribes for readiness events. Loop must be started by the caller.
func New(io platform.DeviceIO, urc wire.URCDispatcher, cfg Config) *Orchestrator {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = DefaultQueueDepth
	}
	if cfg.Observer == nil {
		cfg.Observer = NoOpObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	o := &Orchestrator{
		io:       io,
		urc:      urc,
		obs:      cfg.Observer,
		log:      cfg.Logger.WithName("orchestrator"),
		events:   platform.NewQueue[event](cfg.QueueDepth),
		cooldown: cfg.Cooldown,
		rx:       make([]byte, cfg.BufferSize),
		tx:       make([]byte, cfg.BufferSize),
	}
	o.idle = sync.NewCond(&o.mu)
	o.cool.SetHandler(func() { o.events.Put(evTxReady) })
	io.Subscribe(o)
	return o
}

// Notify implements platform.Subscriber; the device poller calls it when
// bytes become available.
func (o *Orchestrator) Notify(ev platform.Event) {
	if o.stopped.Load() {
		return
	}
	if ev == platform.RxReady {
		// drop on overflow rather than block the poller thread; the
		// device re-notifies while bytes stay pending
		o.events.TryPut(evRxReady)
	}
}

// ShutDown posts the shutdown event ahead of anything already queued.
func (o *Orchestrator) ShutDown() {
	o.events.PutFront(evShutDown)
}

// Loop runs the worker until shutdown. It consumes the event queue and
// drives the state machine; all transport state is owned here.
func (o *Orchestrator) Loop() {
	for {
		ev := o.events.Get()
		if ev == evShutDown {
			o.terminate()
			return
		}
		o.handle(ev)
	}
}

func (o *Orchestrator) terminate() {
	o.stopped.Store(true)
	o.cool.Stop()
	o.mu.Lock()
	o.down = true
	if o.st.kind != stIdle {
		o.completeLocked(o.st.req, ErrShutDown)
		o.st = state{kind: stIdle}
	}
	o.idle.Broadcast()
	o.mu.Unlock()
	o.log.Info("shutting down")
}

func (o *Orchestrator) handle(ev event) {
	o.mu.Lock()
	wasIdle := o.st.kind == stIdle

	switch o.st.kind {
	case stIdle:
		if ev == evRxReady {
			o.drainURCsLocked()
		}

	case stSending:
		switch ev {
		case evRxReady:
			o.drainURCsLocked()
		case evTxReady:
			req := o.st.req
			o.log.Debug("cooldown expired, sending command")
			if ec := o.sendLocked(req.cmd); ec == NoError {
				o.st = state{kind: stWaiting, req: req}
			} else {
				o.completeLocked(req, ec)
				o.st = state{kind: stIdle}
			}
		}

	case stWaiting:
		if ev == evRxReady {
			req := o.st.req
			if o.receiveLocked(req) {
				o.cool.Start(o.cooldown)
				o.completeLocked(req, NoError)
				o.st = state{kind: stIdle}
			}
		}
	}

	if !wasIdle && o.st.kind == stIdle {
		o.idle.Broadcast()
	}
	o.mu.Unlock()
}

// SendCommand submits one exchange and blocks until it terminates. The
// result pack is always required; resp may be nil for commands that only
// produce a final result code.
func (o *Orchestrator) SendCommand(result *wire.Pack, cmd wire.Command, resp wire.Response) ErrorCode {
	o.mu.Lock()
	for !o.down && o.st.kind != stIdle {
		o.idle.Wait()
	}
	if o.down {
		o.mu.Unlock()
		return ErrShutDown
	}
	if o.st.kind != stIdle {
		o.mu.Unlock()
		o.log.Error("not idle after gating, aborting")
		return ErrInternal
	}

	ec := NoError
	req := &exchange{
		result: result,
		cmd:    cmd,
		resp:   resp,
		sem:    platform.NewSemaphore(0),
		ec:     &ec,
	}

	if o.canSendLocked() {
		if sendEc := o.sendLocked(cmd); sendEc == NoError {
			o.st = state{kind: stWaiting, req: req}
		} else {
			ec = sendEc
			o.obs.ObserveExchange(false)
		}
	} else {
		o.log.Debug("cooldown active, send deferred")
		o.obs.ObserveCooldownStall()
		o.st = state{kind: stSending, req: req}
	}
	o.mu.Unlock()

	if ec != NoError {
		return ec
	}
	req.sem.Acquire()
	return ec
}

func (o *Orchestrator) canSendLocked() bool {
	return !o.cool.IsRunning()
}

// completeLocked records the disposition and releases the waiting caller.
func (o *Orchestrator) completeLocked(req *exchange, ec ErrorCode) {
	*req.ec = ec
	o.obs.ObserveExchange(ec == NoError)
	req.sem.Release()
}

func (o *Orchestrator) sendLocked(cmd wire.Command) ErrorCode {
	s := wire.NewSerializer(o.tx)
	if !cmd.Accept(s) {
		o.log.Error("tx serialization failed")
		o.obs.ObserveSend(0, false)
		return ErrSerialize
	}
	out := s.Bytes()
	n := o.io.Write(out)
	o.log.Debugf("tx: %s", logging.Escape(out))
	if n != len(out) {
		o.log.Errorf("tx write failed (%d/%d bytes)", n, len(out))
		o.obs.ObserveSend(n, false)
		return ErrWrite
	}
	o.obs.ObserveSend(n, true)
	return NoError
}

// receiveLocked reads what the device has, then runs the fixed-point
// loop: response (if requested), final result, one URC — until an
// iteration makes no progress. The unconsumed tail is compacted to the
// front of the RX buffer.
func (o *Orchestrator) receiveLocked(req *exchange) bool {
	n := o.io.Read(o.rx[o.leftover:])
	if n > 0 {
		o.obs.ObserveRx(n)
		o.log.Tracef("rx: %s", logging.Escape(o.rx[o.leftover:o.leftover+n]))
	}
	view := o.rx[:o.leftover+n]

	if req.resp == nil {
		req.gotResp = true
	}

	for {
		before := len(view)

		if !req.gotResp {
			d := wire.NewDeserializer(view)
			if req.resp.Accept(d) {
				view = view[d.Consumed():]
				req.gotResp = true
				continue
			}
		}

		if !req.gotResult {
			d := wire.NewDeserializer(view)
			if req.result.Accept(d) {
				view = view[d.Consumed():]
				req.gotResult = true
				continue
			}
		}

		if c := o.urc.Dispatch(view); c > 0 {
			o.obs.ObserveURC()
			view = view[c:]
			continue
		}

		if len(view) == before {
			break
		}
	}

	o.leftover = copy(o.rx, view)

	if !req.gotResp || !req.gotResult {
		o.log.Tracef("rx incomplete, %d bytes buffered", o.leftover)
		return false
	}
	return true
}

// drainURCsLocked opportunistically consumes URC frames while no
// exchange needs the input.
func (o *Orchestrator) drainURCsLocked() {
	n := o.io.Read(o.rx[o.leftover:])
	if n > 0 {
		o.obs.ObserveRx(n)
		o.log.Tracef("rx: %s", logging.Escape(o.rx[o.leftover:o.leftover+n]))
	}
	view := o.rx[:o.leftover+n]

	for {
		c := o.urc.Dispatch(view)
		if c == 0 {
			break
		}
		o.obs.ObserveURC()
		view = view[c:]
	}

	if len(view) > 0 {
		o.log.Debugf("urc: %d trailing bytes buffered", len(view))
	}
	o.leftover = copy(o.rx, view)
}
