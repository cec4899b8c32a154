package repo

import (
	"context"
	"sync"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
)

// MemoryKeyValueStore is a process-local store used in tests and when the
// application starts without Redis. State is lost on restart.
type MemoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: make(map[string]string)}
}

func (m *MemoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKeyValueStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryKeyValueStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

var _ model.KeyValueStore = (*MemoryKeyValueStore)(nil)
