package answercache

import (
	"context"
	"sync"
)

type memoryCache struct {
	mu      sync.RWMutex
	answers map[Key]int
}

var _ Cache = (*memoryCache)(nil)

func NewMemoryCache() Cache {
	return &memoryCache{
		answers: make(map[Key]int),
	}
}

func (m *memoryCache) Get(_ context.Context, key Key) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	answer, found := m.answers[key]
	if !found {
		return 0, ErrNotCached
	}
	return answer, nil
}

func (m *memoryCache) Put(_ context.Context, key Key, answer int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers[key] = answer
	return nil
}

func (m *memoryCache) Close() error {
	return nil
}
