package storage

import "sync"

// Memory is an in-memory key-value store with the same surface as Store.
// It backs tests and the degraded mode where the settings database cannot
// be opened; nothing written to it survives the process.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// GetItem retrieves the string stored under key.
func (m *Memory) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem stores a string under key.
func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

// RemoveItem deletes the value stored under key, if any.
func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

// ItemsWithPrefix retrieves all key-value pairs whose key starts with the
// given prefix.
func (m *Memory) ItemsWithPrefix(prefix string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make(map[string]string)
	for k, v := range m.items {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			items[k] = v
		}
	}
	return items, nil
}
