// Package memory provides a process-local Medium.
package memory

import (
	"context"
	"sync"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.Medium = (*Medium)(nil)

// Medium keeps values in a map. Contents are lost when the process exits.
type Medium struct {
	mu     sync.RWMutex
	values map[string]string
}

func New() *Medium {
	return &Medium{values: make(map[string]string)}
}

func (m *Medium) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", model.ErrNotFound
	}
	return v, nil
}

func (m *Medium) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *Medium) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
