package platform

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a restartable one-shot timer. Start while running cancels the
// pending fire: the generation token is bumped so the in-flight waiter
// observes it is stale and exits without firing. The handler runs
// outside the timer's lock.
type Timer struct {
	mu      sync.Mutex
	handler func()
	gen     uint64
	cancel  chan struct{}
	running atomic.Bool
}

// SetHandler installs the function invoked on expiry.
func (t *Timer) SetHandler(fn func()) {
	t.mu.Lock()
	t.handler = fn
	t.mu.Unlock()
}

// Start arms the timer. A running timer is restarted.
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	if t.cancel != nil {
		close(t.cancel)
	}
	t.cancel = make(chan struct{})
	cancel := t.cancel
	t.running.Store(true)
	t.mu.Unlock()

	go func() {
		tm := time.NewTimer(d)
		defer tm.Stop()
		select {
		case <-cancel:
			return
		case <-tm.C:
		}
		t.mu.Lock()
		if gen != t.gen {
			// restarted or stopped while the expiry was in flight
			t.mu.Unlock()
			return
		}
		fn := t.handler
		t.running.Store(false)
		t.mu.Unlock()
		if fn != nil {
			fn()
		}
	}()
}

// Stop cancels a pending fire. Stopping an idle timer is a no-op.
func (t *Timer) Stop() {
	t.mu.Lock()
	t.gen++
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
	t.running.Store(false)
	t.mu.Unlock()
}

// IsRunning reports whether a fire is pending.
func (t *Timer) IsRunning() bool {
	return t.running.Load()
}
