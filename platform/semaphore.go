package platform

import "sync"

// Semaphore is a counting semaphore. It is shared by exactly two parties
// per command exchange: the FSM worker releases, the caller acquires.
// Semaphores must not be copied after first use.
type Semaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

// NewSemaphore returns a semaphore with the given initial count.
func NewSemaphore(initial int) *Semaphore {
	s := &Semaphore{count: initial}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Acquire blocks until the count is positive, then decrements it.
func (s *Semaphore) Acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.count == 0 {
		s.cond.Wait()
	}
	s.count--
}

// TryAcquire decrements the count if it is positive.
func (s *Semaphore) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}

// Release increments the count and wakes one waiter.
func (s *Semaphore) Release() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	s.cond.Signal()
}
