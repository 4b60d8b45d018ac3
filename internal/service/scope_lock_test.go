package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScopeLockSerializesSameScope(t *testing.T) {
	sl := newScopeLock()
	unlock := sl.Lock("u1")

	acquired := make(chan struct{})
	go func() {
		release := sl.Lock("u1")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder entered while scope was locked")
	case <-time.After(50 * time.Millisecond):
	}

	// other scopes are independent
	other := sl.Lock("u2")
	other()

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the lock")
	}
}

func TestScopeLockForgetsIdleScopes(t *testing.T) {
	sl := newScopeLock()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scope := "u1"
			if i%2 == 0 {
				scope = "u2"
			}
			unlock := sl.Lock(scope)
			unlock()
		}()
	}
	wg.Wait()
	assert.Zero(t, sl.size())
}
