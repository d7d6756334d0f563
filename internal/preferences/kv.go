package preferences

import (
	"context"
	"errors"
	"sync"
)

// ErrKeyNotFound signals an absent key. Callers fall back to their
// documented defaults instead of surfacing it.
var ErrKeyNotFound = errors.New("key not found")

// KeyValue is the durable string-keyed capability backing the preference
// store and the onboarding flag. Implementations must treat Set as
// persisted once it returns.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is an in-process KeyValue, used in tests and as the fallback
// when no Redis address is configured. Values do not survive a restart.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty MemoryKV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
