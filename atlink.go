// Package atlink is a host-side driver for text-framed modem-style
// command protocols. A Device multiplexes one-at-a-time command/response
// exchanges over a full-duplex byte stream while surfacing unsolicited
// result codes to the application.
//
// Typical wiring:
//
//	port, err := serial.Open(serial.PathFromEnv())
//	urcs := wire.NewURCPack()
//	dev := atlink.NewDevice("modem", port, urcs, nil)
//	go dev.Loop()
//
//	result := std.FinalResult()
//	err = dev.SendCommand(result, &std.CpinRead{}, resp)
package atlink

import (
	"time"

	"github.com/zmolnar/go-atlink/internal/fsm"
	"github.com/zmolnar/go-atlink/internal/logging"
	"github.com/zmolnar/go-atlink/platform"
	"github.com/zmolnar/go-atlink/wire"
)

// Options tunes a Device. The zero value of any field selects the
// default.
type Options struct {
	// Cooldown is the quiet window between consecutive command
	// transmissions (default 20ms).
	Cooldown time.Duration

	// BufferSize fixes the RX and TX buffer capacity (default 512).
	// Frames larger than this cannot be sent or received.
	BufferSize int

	// QueueDepth bounds the FSM event queue (default 16).
	QueueDepth int

	// Observer receives transport telemetry (default: the device's own
	// Metrics).
	Observer Observer
}

// DefaultOptions returns the default device options.
func DefaultOptions() Options {
	return Options{
		Cooldown:   fsm.DefaultCooldown,
		BufferSize: fsm.DefaultBufferSize,
		QueueDepth: fsm.DefaultQueueDepth,
	}
}

// Device is the public façade over the transport engine.
type Device struct {
	orch    *fsm.Orchestrator
	log     *logging.Logger
	metrics *Metrics
}

// NewDevice wires a device to a byte stream and a URC dispatcher. Loop
// must be run (usually on its own goroutine) before SendCommand is used.
func NewDevice(name string, io platform.DeviceIO, urcs wire.URCDispatcher, options *Options) *Device {
	opts := DefaultOptions()
	if options != nil {
		opts = *options
	}

	metrics := NewMetrics()
	observer := opts.Observer
	if observer == nil {
		observer = NewMetricsObserver(metrics)
	}

	log := logging.Default().WithName(name)
	orch := fsm.New(io, urcs, fsm.Config{
		Cooldown:   opts.Cooldown,
		BufferSize: opts.BufferSize,
		QueueDepth: opts.QueueDepth,
		Observer:   observer,
		Logger:     log,
	})

	return &Device{orch: orch, log: log, metrics: metrics}
}

// Loop runs the FSM worker to completion; it returns only after ShutDown.
func (d *Device) Loop() {
	d.orch.Loop()
}

// SendCommand issues one command and blocks until the exchange
// terminates. A nil error means a final result code was bound into
// result; the caller distinguishes logical success from a device error
// by inspecting the bound alternative. resp may be nil for commands
// without a payload response.
func (d *Device) SendCommand(result *wire.Pack, cmd wire.Command, resp wire.Response) error {
	ec := d.orch.SendCommand(result, cmd, resp)
	return errorFromCode("SEND_COMMAND", ec)
}

// ShutDown stops the FSM worker. The shutdown event jumps the queue, and
// any caller blocked in SendCommand is released with ErrCodeShutDown.
func (d *Device) ShutDown() {
	d.orch.ShutDown()
}

// Metrics returns the device's transport counters.
func (d *Device) Metrics() *Metrics {
	return d.metrics
}
