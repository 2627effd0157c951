// Package loopback provides an in-memory platform.DeviceIO for tests
// and examples: written frames are matched against a script of canned
// exchanges, and the scripted reply (plus any unsolicited traffic queued
// by the test) is surfaced through the normal RxReady path.
package loopback

import (
	"sync"

	"github.com/zmolnar/go-atlink/platform"
)

// Exchange pairs an expected TX frame with the bytes the fake device
// replies with.
type Exchange struct {
	Expect string // exact frame the device expects; empty matches anything
	Reply  string // bytes queued for reading after the match
}

type subscriberBox struct {
	s platform.Subscriber
}

// Device is a scripted DeviceIO.
type Device struct {
	mu     sync.Mutex
	script []Exchange
	rx     []byte
	writes [][]byte
	short  int // when positive, Write accepts at most this many bytes
	sub    *subscriberBox
}

// New returns a device that will serve the given script in order.
func New(script ...Exchange) *Device {
	return &Device{script: script}
}

// SetShortWrite makes subsequent writes accept at most n bytes,
// simulating a partial write.
func (d *Device) SetShortWrite(n int) {
	d.mu.Lock()
	d.short = n
	d.mu.Unlock()
}

// Push queues unsolicited bytes for reading and signals RxReady, as a
// device emitting a URC would.
func (d *Device) Push(data string) {
	d.mu.Lock()
	d.rx = append(d.rx, data...)
	sub := d.sub
	d.mu.Unlock()
	if sub != nil {
		sub.s.Notify(platform.RxReady)
	}
}

// Writes returns every frame written so far.
func (d *Device) Writes() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.writes))
	copy(out, d.writes)
	return out
}

// Subscribe implements platform.DeviceIO.
func (d *Device) Subscribe(s platform.Subscriber) {
	d.mu.Lock()
	d.sub = &subscriberBox{s: s}
	d.mu.Unlock()
}

// Write implements platform.DeviceIO. A frame matching the head of the
// script queues that exchange's reply.
func (d *Device) Write(p []byte) int {
	d.mu.Lock()
	n := len(p)
	if d.short > 0 && n > d.short {
		n = d.short
	}
	frame := append([]byte(nil), p[:n]...)
	d.writes = append(d.writes, frame)

	var sub *subscriberBox
	if n == len(p) && len(d.script) > 0 {
		head := d.script[0]
		if head.Expect == "" || head.Expect == string(frame) {
			d.script = d.script[1:]
			d.rx = append(d.rx, head.Reply...)
			sub = d.sub
		}
	}
	d.mu.Unlock()

	if sub != nil {
		sub.s.Notify(platform.RxReady)
	}
	return n
}

// Read implements platform.DeviceIO.
func (d *Device) Read(p []byte) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := copy(p, d.rx)
	d.rx = d.rx[:copy(d.rx, d.rx[n:])]
	return n
}
