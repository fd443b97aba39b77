package blob

import (
	"context"
	"io"
	"sync"
)

// Memory keeps uploaded bytes in a map. Used when no bucket is
// configured and in tests; locators use the mock-storage prefix.
type Memory struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

func (m *Memory) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.files[key] = data
	m.mu.Unlock()

	return "mock-storage/" + key, nil
}

// Get returns stored bytes for tests.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	return data, ok
}

// Len reports how many objects were stored.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}
