package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process clipboard history. Index 0 is the most recent copy.
type Memory struct {
	mu       sync.Mutex
	history  []string
	selected string
	pasted   []string
}

// NewMemory returns a Memory clipboard holding history, most recent first.
func NewMemory(history ...string) *Memory {
	return &Memory{history: append([]string(nil), history...)}
}

func (m *Memory) Read(_ context.Context, offset int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset < 0 || offset >= len(m.history) {
		return "", ErrNoEntry
	}
	return m.history[offset], nil
}

func (m *Memory) Copy(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append([]string{text}, m.history...)
	return nil
}

func (m *Memory) Paste(ctx context.Context, text string) error {
	if err := m.Copy(ctx, text); err != nil {
		return err
	}
	m.mu.Lock()
	m.pasted = append(m.pasted, text)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Selection(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected, nil
}

// SetSelection sets the text reported by Selection.
func (m *Memory) SetSelection(text string) {
	m.mu.Lock()
	m.selected = text
	m.mu.Unlock()
}

// Pasted returns every text handed to Paste, in order.
func (m *Memory) Pasted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.pasted...)
}
