package repository

import (
	"context"
	"sync"
)

// memKV is an in-memory KVRepo for tests.
type memKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newMemKV(seed map[string]string) *memKV {
	m := &memKV{data: map[string]string{}}
	for k, v := range seed {
		m.data[k] = v
	}
	return m
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
