package atlink

import (
	"sync/atomic"
	"time"
)

// Metrics tracks transport statistics for a device
type Metrics struct {
	// Exchange counters
	CommandsSent      atomic.Uint64 // Frames accepted by the device
	SendFailures      atomic.Uint64 // Serialization or short-write failures
	ExchangesOK       atomic.Uint64 // Exchanges that bound a final result
	ExchangesFailed   atomic.Uint64 // Exchanges released with an error
	CooldownDeferrals atomic.Uint64 // Sends parked behind the cooldown

	// Traffic counters
	TxBytes atomic.Uint64
	RxBytes atomic.Uint64

	// URC counters
	Urcs atomic.Uint64 // Frames consumed by the URC dispatcher

	// Device lifecycle
	StartTime atomic.Int64 // Creation timestamp (UnixNano)
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// MetricsSnapshot is a point-in-time copy of the counters
type MetricsSnapshot struct {
	CommandsSent      uint64 `json:"commands_sent"`
	SendFailures      uint64 `json:"send_failures"`
	ExchangesOK       uint64 `json:"exchanges_ok"`
	ExchangesFailed   uint64 `json:"exchanges_failed"`
	CooldownDeferrals uint64 `json:"cooldown_deferrals"`
	TxBytes           uint64 `json:"tx_bytes"`
	RxBytes           uint64 `json:"rx_bytes"`
	Urcs              uint64 `json:"urcs"`
	Uptime            int64  `json:"uptime_ns"`
}

// Snapshot returns a point-in-time copy of the counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		CommandsSent:      m.CommandsSent.Load(),
		SendFailures:      m.SendFailures.Load(),
		ExchangesOK:       m.ExchangesOK.Load(),
		ExchangesFailed:   m.ExchangesFailed.Load(),
		CooldownDeferrals: m.CooldownDeferrals.Load(),
		TxBytes:           m.TxBytes.Load(),
		RxBytes:           m.RxBytes.Load(),
		Urcs:              m.Urcs.Load(),
		Uptime:            time.Now().UnixNano() - m.StartTime.Load(),
	}
}

// Observer receives transport telemetry. Implementations must be
// thread-safe as methods are called from the FSM worker.
type Observer interface {
	ObserveSend(bytes int, ok bool)
	ObserveRx(bytes int)
	ObserveURC()
	ObserveExchange(ok bool)
	ObserveCooldownStall()
}

// MetricsObserver feeds a Metrics instance
type MetricsObserver struct {
	metrics *Metrics
}

// NewMetricsObserver creates an observer backed by m
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) ObserveSend(bytes int, ok bool) {
	if ok {
		o.metrics.CommandsSent.Add(1)
		o.metrics.TxBytes.Add(uint64(bytes))
	} else {
		o.metrics.SendFailures.Add(1)
	}
}

func (o *MetricsObserver) ObserveRx(bytes int) {
	o.metrics.RxBytes.Add(uint64(bytes))
}

func (o *MetricsObserver) ObserveURC() {
	o.metrics.Urcs.Add(1)
}

func (o *MetricsObserver) ObserveExchange(ok bool) {
	if ok {
		o.metrics.ExchangesOK.Add(1)
	} else {
		o.metrics.ExchangesFailed.Add(1)
	}
}

func (o *MetricsObserver) ObserveCooldownStall() {
	o.metrics.CooldownDeferrals.Add(1)
}
