package store

import "sync"

// Memory is an in-process Persistence used by tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

// NewMemory returns a Memory seeded with the given key/value pairs.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{values: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[normalizeKey(key)]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[normalizeKey(key)] = value
	m.writes++
	return nil
}

// Writes reports how many Set calls have been made.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
