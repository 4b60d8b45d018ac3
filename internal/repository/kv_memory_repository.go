package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	updatedAt time.Time
}

// MemoryKVRepository keeps everything in process memory. Used by tests and the
// "memory" store driver.
type MemoryKVRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryKVRepo() *MemoryKVRepository {
	return &MemoryKVRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (kv *MemoryKVRepository) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	e, ok := kv.entries[key]
	return e.value, ok, nil
}

func (kv *MemoryKVRepository) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.entries[key] = memoryEntry{value: value, updatedAt: kv.now()}
	return nil
}

func (kv *MemoryKVRepository) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.entries, key)
	return nil
}

func (kv *MemoryKVRepository) PurgeBefore(_ context.Context, cutoff time.Time) (int64, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	var n int64
	for k, e := range kv.entries {
		if e.updatedAt.Before(cutoff) {
			delete(kv.entries, k)
			n++
		}
	}
	return n, nil
}

// Len is the number of stored keys.
func (kv *MemoryKVRepository) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return len(kv.entries)
}
