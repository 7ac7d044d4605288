// Package file persists medium keys as files in a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.Medium = (*Medium)(nil)

// Medium stores each key in <dir>/<namespace>/<key>.json. Writes go through a
// temporary file and a rename so readers never see a partial value.
type Medium struct {
	mu  sync.Mutex
	dir string
}

// New creates the namespace directory if needed.
func New(dir, namespace string) (*Medium, error) {
	full := filepath.Join(dir, url.PathEscape(namespace))
	if err := os.MkdirAll(full, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Medium{dir: full}, nil
}

func (m *Medium) path(key string) string {
	return filepath.Join(m.dir, url.PathEscape(key)+".json")
}

func (m *Medium) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), nil
}

func (m *Medium) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tmp, err := os.CreateTemp(m.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmpName, m.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (m *Medium) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
