package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventLocks_SerializesSameEvent(t *testing.T) {
	l := newEventLocks()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock(7)
			defer unlock()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, l.size())
}

func TestEventLocks_IndependentEvents(t *testing.T) {
	l := newEventLocks()

	unlockA := l.lock(1)
	done := make(chan struct{})
	go func() {
		unlockB := l.lock(2)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on another event blocked")
	}

	assert.Equal(t, 1, l.size())
	unlockA()
	assert.Zero(t, l.size())
}

func TestSystemClock(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)

	assert.Equal(t, loc, SystemClock(loc)().Location())
	assert.Equal(t, time.UTC, SystemClock(nil)().Location())
}
