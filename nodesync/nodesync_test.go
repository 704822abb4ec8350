package nodesync

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConcurrentReaders(t *testing.T) {
	s := New("t", nil)
	var active int32
	var maxActive int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RLock()
			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxActive)
				if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
			s.RUnlock()
		}()
	}
	wg.Wait()
	assert.Greater(t, maxActive, int32(1), "readers should overlap")
}

func TestWriterExclusion(t *testing.T) {
	s := New("t", nil)
	var active int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Lock()
			n := atomic.AddInt32(&active, 1)
			assert.Equal(t, int32(1), n, "writer must be exclusive")
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
			s.Unlock()
		}()
	}
	wg.Wait()
}

func TestWriterExcludesReaders(t *testing.T) {
	s := New("t", nil)
	var readers int32
	var writers int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.RLock()
			assert.Equal(t, int32(0), atomic.LoadInt32(&writers))
			atomic.AddInt32(&readers, 1)
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&readers, -1)
			s.RUnlock()
		}()
		go func() {
			defer wg.Done()
			s.Lock()
			assert.Equal(t, int32(0), atomic.LoadInt32(&readers))
			atomic.AddInt32(&writers, 1)
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&writers, -1)
			s.Unlock()
		}()
	}
	wg.Wait()
}

// TestQuiesceWaitAfterWriters exercises the protocol QuiesceWait
// relies on: once all readers/writers have drained, a quiescence
// waiter that arrived before they did must be woken.
func TestQuiesceWaitAfterWriters(t *testing.T) {
	s := New("t", nil)
	s.Lock()

	done := make(chan struct{})
	go func() {
		s.QuiesceWait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("QuiesceWait returned before the writer released")
	case <-time.After(20 * time.Millisecond):
	}

	s.Unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("QuiesceWait never woke after the writer released")
	}
}

// TestNoStarvationBatching checks the bounded-waiting property: a
// steady stream of new readers arriving while a writer waits must not
// prevent that writer from eventually being admitted.
func TestNoStarvationBatching(t *testing.T) {
	s := New("t", nil)
	s.RLock() // hold a reader open so the writer has to queue

	writerDone := make(chan struct{})
	go func() {
		s.Lock()
		close(writerDone)
		s.Unlock()
	}()

	// Give the writer a chance to register as waiting.
	time.Sleep(10 * time.Millisecond)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if !tryRLockNonBlocking(s) {
					continue
				}
				time.Sleep(time.Microsecond)
				s.RUnlock()
			}
		}()
	}

	// Release the initial reader so the queued writer can be handed
	// admission while the reader stream keeps arriving.
	s.RUnlock()

	select {
	case <-writerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("writer starved by continuous reader arrivals")
	}
	close(stop)
	wg.Wait()
}

// tryRLockNonBlocking is a best-effort, test-only probe: it acquires
// the reader role if doing so would not block, and reports false
// otherwise, so the starvation test can keep issuing fresh readers
// without itself queuing behind the writer under test.
func tryRLockNonBlocking(s *Synchronizer) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.change <= 0 && (s.wcount > 0 || s.wwait > 0) {
		return false
	}
	s.rcount++
	if s.change > 0 {
		s.change--
	}
	return true
}
