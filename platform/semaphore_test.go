package platform

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSemaphoreAcquireBlocksUntilRelease(t *testing.T) {
	sem := NewSemaphore(0)
	done := make(chan struct{})
	go func() {
		sem.Acquire()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Acquire returned on a zero semaphore")
	case <-time.After(20 * time.Millisecond):
	}

	sem.Release()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Acquire did not observe Release")
	}
}

func TestSemaphoreInitialCount(t *testing.T) {
	sem := NewSemaphore(2)
	sem.Acquire()
	sem.Acquire()
	assert.False(t, sem.TryAcquire())
	sem.Release()
	assert.True(t, sem.TryAcquire())
}

func TestSemaphoreCounts(t *testing.T) {
	sem := NewSemaphore(0)
	const n = 10

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Acquire()
		}()
	}
	for i := 0; i < n; i++ {
		sem.Release()
	}
	wg.Wait()
	assert.False(t, sem.TryAcquire())
}
