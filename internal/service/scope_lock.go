package service

import "sync"

// scopeLock serializes ledger and completion writes per user scope inside one
// process. Entries are dropped once no goroutine holds or waits on them.
type scopeLock struct {
	mu    sync.Mutex
	locks map[string]*scopeEntry
}

type scopeEntry struct {
	mu   sync.Mutex
	refs int
}

func newScopeLock() *scopeLock {
	return &scopeLock{locks: make(map[string]*scopeEntry)}
}

// Lock blocks until scope is free and returns its unlock func.
func (sl *scopeLock) Lock(scope string) func() {
	sl.mu.Lock()
	e, ok := sl.locks[scope]
	if !ok {
		e = &scopeEntry{}
		sl.locks[scope] = e
	}
	e.refs++
	sl.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		sl.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(sl.locks, scope)
		}
		sl.mu.Unlock()
	}
}

func (sl *scopeLock) size() int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return len(sl.locks)
}
