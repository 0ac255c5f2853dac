package app

// Selection is the ordered set of texts marked for a bulk operation.
// Insertion order is kept so bulk moves file items in the order they were picked.
// It is never persisted.
type Selection struct {
	order []string
	set   map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[string]struct{})}
}

// Toggle adds text when absent and removes it when present. It reports
// whether text is selected afterwards.
func (s *Selection) Toggle(text string) bool {
	if s.Has(text) {
		s.Remove(text)
		return false
	}
	s.order = append(s.order, text)
	s.set[text] = struct{}{}
	return true
}

// Has reports whether text is selected.
func (s *Selection) Has(text string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[text]
	return ok
}

// Remove unselects text.
func (s *Selection) Remove(text string) {
	if !s.Has(text) {
		return
	}
	delete(s.set, text)
	for i, v := range s.order {
		if v == text {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Items returns the selected texts in selection order.
func (s *Selection) Items() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Len returns how many texts are selected.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	s.order = nil
	s.set = make(map[string]struct{})
}

func (s *Service) sel() *Selection {
	if s.selection == nil {
		s.selection = NewSelection()
	}
	return s.selection
}

// EnterSelection starts selection mode seeded with text.
func (s *Service) EnterSelection(text string) {
	sel := s.sel()
	sel.Clear()
	sel.Toggle(text)
}

// ToggleSelection flips whether text is part of the selection.
func (s *Service) ToggleSelection(text string) bool {
	return s.sel().Toggle(text)
}

// ExitSelection leaves selection mode, dropping the selection.
func (s *Service) ExitSelection() {
	s.sel().Clear()
}

// SelectionMode reports whether anything is selected.
func (s *Service) SelectionMode() bool {
	return s.selection.Len() > 0
}

// Selected returns the selected texts in selection order.
func (s *Service) Selected() []string {
	return s.selection.Items()
}

// IsSelected reports whether text is selected.
func (s *Service) IsSelected(text string) bool {
	return s.selection.Has(text)
}
