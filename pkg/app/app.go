package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/history"
	"tableflip.dev/clipbucket/pkg/store"
)

// Service owns the in-memory buckets, uncategorized history and selection of
// one screen session. Each mutation updates memory and then writes through.
// It is not safe for concurrent use; one action runs at a time.
type Service struct {
	Persistence store.Persistence
	Clipboard   clipboard.Clipboard
	Depth       int

	buckets   []bucket.Bucket
	history   []string
	selection *Selection
	loaded    bool
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNoClipboard   = errors.New("app: no clipboard configured")
	ErrInvalidBucket = errors.New("app: invalid bucket id")
	ErrNameRequired  = errors.New("app: bucket name required")
)

// New builds a Service over the given persistence and clipboard.
func New(p store.Persistence, cb clipboard.Clipboard, depth int) *Service {
	return &Service{Persistence: p, Clipboard: cb, Depth: depth}
}

func (s *Service) bucketStore() *bucket.Store {
	return &bucket.Store{Persistence: s.Persistence}
}

func (s *Service) historyStore() *history.Store {
	return &history.Store{Persistence: s.Persistence}
}

// Activate loads buckets, reconciles clipboard history and resets the selection.
func (s *Service) Activate(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	buckets, err := s.bucketStore().Load()
	if err != nil {
		return err
	}
	r := &history.Reconciler{Clipboard: s.Clipboard, Store: s.historyStore(), Depth: s.Depth}
	list, err := r.Reconcile(ctx, buckets)
	if err != nil {
		return err
	}
	s.buckets = buckets
	s.history = list
	s.selection = NewSelection()
	s.loaded = true
	return nil
}

// Loaded reports whether Activate has completed.
func (s *Service) Loaded() bool { return s.loaded }

// Buckets returns a copy of all bucket slots.
func (s *Service) Buckets() []bucket.Bucket {
	if !s.loaded {
		return bucket.Empties()
	}
	return bucket.Clone(s.buckets)
}

// Bucket returns a copy of the bucket in slot id.
func (s *Service) Bucket(id int) (bucket.Bucket, error) {
	if err := s.checkID(id); err != nil {
		return bucket.Bucket{}, err
	}
	return s.buckets[id].Clone(), nil
}

// History returns the uncategorized history, most recent first.
func (s *Service) History() []string {
	return append([]string(nil), s.history...)
}

// View returns the uncategorized history split into latest and older.
func (s *Service) View() history.View {
	return history.Split(s.history)
}

// FirstEmptySlot returns the first unnamed bucket slot.
func (s *Service) FirstEmptySlot() (int, bool) {
	return bucket.FirstEmpty(s.buckets)
}

// MoveToBucket files text at the front of bucket id and drops it from history.
func (s *Service) MoveToBucket(ctx context.Context, text string, id int) error {
	return s.move(ctx, []string{text}, id, nil)
}

// MoveToNewBucket names the unused slot id and files text into it. It reports
// false without changing anything when the slot is already named. A blank
// name is ErrNameRequired.
func (s *Service) MoveToNewBucket(ctx context.Context, text string, id int, name string) (bool, error) {
	name, ok, err := s.claimSlot(id, name)
	if !ok || err != nil {
		return false, err
	}
	return true, s.move(ctx, []string{text}, id, &name)
}

// MoveSelection files every selected text into bucket id and leaves selection mode.
func (s *Service) MoveSelection(ctx context.Context, id int) error {
	texts := s.selection.Items()
	if err := s.move(ctx, texts, id, nil); err != nil {
		return err
	}
	s.selection.Clear()
	return nil
}

// MoveSelectionToNewBucket is MoveSelection into an unused slot that gets name.
func (s *Service) MoveSelectionToNewBucket(ctx context.Context, id int, name string) (bool, error) {
	name, ok, err := s.claimSlot(id, name)
	if !ok || err != nil {
		return false, err
	}
	texts := s.selection.Items()
	if err := s.move(ctx, texts, id, &name); err != nil {
		return false, err
	}
	s.selection.Clear()
	return true, nil
}

// claimSlot checks that slot id is unused and name is not blank.
func (s *Service) claimSlot(id int, name string) (string, bool, error) {
	if err := s.checkID(id); err != nil {
		return "", false, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, ErrNameRequired
	}
	return name, s.buckets[id].Empty(), nil
}

func (s *Service) move(ctx context.Context, texts []string, id int, name *string) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	if len(texts) == 0 {
		return nil
	}
	b := &s.buckets[id]
	if name != nil {
		b.Name = strings.TrimSpace(*name)
	}
	b.Items = append(append([]string(nil), texts...), history.Remove(b.Items, texts...)...)
	// A text lives in one bucket at a time.
	for i := range s.buckets {
		if i != id {
			s.buckets[i].Items = history.Remove(s.buckets[i].Items, texts...)
		}
	}
	s.history = history.Remove(s.history, texts...)
	if err := s.saveBuckets(); err != nil {
		return err
	}
	return s.pruneStoredHistory(texts...)
}

// RenameBucket overwrites the name of bucket id; items are untouched.
// Clearing a slot is DeleteBucket, so a blank name is ErrNameRequired.
func (s *Service) RenameBucket(_ context.Context, id int, name string) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	s.buckets[id].Name = name
	return s.saveBuckets()
}

// RemoveFromBucket takes text out of bucket id and puts it back at the front
// of the uncategorized history.
func (s *Service) RemoveFromBucket(_ context.Context, text string, id int) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	if !s.buckets[id].Contains(text) {
		return nil
	}
	s.buckets[id].Items = history.Remove(s.buckets[id].Items, text)
	s.history = history.Prepend(s.history, text)
	if err := s.saveBuckets(); err != nil {
		return err
	}
	stored, err := s.historyStore().Load()
	if err != nil {
		return err
	}
	return s.historyStore().Save(history.Prepend(stored, text))
}

// DeleteEntry removes text from the uncategorized history. Buckets are not touched.
// Callers confirm with the user before invoking it.
func (s *Service) DeleteEntry(_ context.Context, text string) error {
	s.history = history.Remove(s.history, text)
	s.selection.Remove(text)
	return s.pruneStoredHistory(text)
}

// DeleteBucketEntry removes text from bucket id and from the persisted history.
func (s *Service) DeleteBucketEntry(_ context.Context, text string, id int) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	s.buckets[id].Items = history.Remove(s.buckets[id].Items, text)
	s.history = history.Remove(s.history, text)
	if err := s.saveBuckets(); err != nil {
		return err
	}
	return s.pruneStoredHistory(text)
}

// DeleteBucket clears the name and items of slot id. The slot itself remains.
func (s *Service) DeleteBucket(_ context.Context, id int) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	s.buckets[id] = bucket.Bucket{ID: id, Items: []string{}}
	return s.saveBuckets()
}

// Capture adds text (for example the current selection) to the front of the
// uncategorized history. Blank text and text already filed are ignored.
func (s *Service) Capture(_ context.Context, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	if _, filed := bucket.Items(s.buckets)[text]; filed {
		return false, nil
	}
	s.history = history.Prepend(s.history, text)
	stored, err := s.historyStore().Load()
	if err != nil {
		return false, err
	}
	return true, s.historyStore().Save(history.Prepend(stored, text))
}

// Copy puts text on the clipboard.
func (s *Service) Copy(ctx context.Context, text string) error {
	if s.Clipboard == nil {
		return ErrNoClipboard
	}
	return s.Clipboard.Copy(ctx, text)
}

// Paste hands text to the foreground application through the clipboard.
func (s *Service) Paste(ctx context.Context, text string) error {
	if s.Clipboard == nil {
		return ErrNoClipboard
	}
	return s.Clipboard.Paste(ctx, text)
}

// PasteSelected pastes every selected text joined by newlines and clears the selection.
func (s *Service) PasteSelected(ctx context.Context) error {
	text := s.SelectedText()
	if text == "" {
		return nil
	}
	if err := s.Paste(ctx, text); err != nil {
		return err
	}
	s.selection.Clear()
	return nil
}

// SelectedText joins the selected texts with newlines in selection order.
func (s *Service) SelectedText() string {
	return strings.Join(s.selection.Items(), "\n")
}

// Known reports whether text is in the uncategorized history or any bucket.
func (s *Service) Known(text string) bool {
	if s.Locate(text) >= 0 {
		return true
	}
	for _, t := range s.history {
		if t == text {
			return true
		}
	}
	return false
}

// Locate returns the bucket holding text, or -1 when it is uncategorized or unknown.
func (s *Service) Locate(text string) int {
	for _, b := range s.buckets {
		if b.Contains(text) {
			return b.ID
		}
	}
	return -1
}

func (s *Service) checkID(id int) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if !s.loaded {
		return errors.New("app: not activated")
	}
	if id < 0 || id >= len(s.buckets) {
		return fmt.Errorf("%w: %d", ErrInvalidBucket, id)
	}
	return nil
}

func (s *Service) saveBuckets() error {
	return s.bucketStore().Save(s.buckets)
}

// pruneStoredHistory removes texts from the persisted copy of the history.
func (s *Service) pruneStoredHistory(texts ...string) error {
	stored, err := s.historyStore().Load()
	if err != nil {
		return err
	}
	return s.historyStore().Save(history.Remove(stored, texts...))
}
