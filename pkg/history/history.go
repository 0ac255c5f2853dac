// Package history merges freshly observed clipboard entries with the
// persisted uncategorized history.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/store"
)

// Scan reads up to depth entries from the clipboard, most recent first.
// The first failed read ends the scan. Entries are trimmed and blanks dropped.
func Scan(ctx context.Context, cb clipboard.Clipboard, depth int) []string {
	fresh := make([]string, 0, depth)
	if cb == nil {
		return fresh
	}
	for offset := 0; offset < depth; offset++ {
		text, err := cb.Read(ctx, offset)
		if err != nil {
			break
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fresh = append(fresh, text)
	}
	return fresh
}

// Merge puts fresh entries first, in read order, followed by the persisted
// entries not already present. No value appears twice.
func Merge(fresh, persisted []string) []string {
	seen := make(map[string]struct{}, len(fresh)+len(persisted))
	out := make([]string, 0, len(fresh)+len(persisted))
	for _, list := range [][]string{fresh, persisted} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Prune drops every entry that is filed in one of buckets.
func Prune(list []string, buckets []bucket.Bucket) []string {
	filed := bucket.Items(buckets)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := filed[v]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Prepend moves text to the front of list, removing any earlier copy.
func Prepend(list []string, text string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, text)
	for _, v := range list {
		if v != text {
			out = append(out, v)
		}
	}
	return out
}

// Remove returns list without any copy of the given texts.
func Remove(list []string, texts ...string) []string {
	drop := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		drop[t] = struct{}{}
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// View splits the uncategorized history for display.
type View struct {
	Latest string
	Older  []string
}

// HasLatest reports whether there is anything to show.
func (v View) HasLatest() bool {
	return v.Latest != ""
}

// Split returns the display view of list: its first element and the rest.
func Split(list []string) View {
	if len(list) == 0 {
		return View{Older: []string{}}
	}
	older := make([]string, len(list)-1)
	copy(older, list[1:])
	return View{Latest: list[0], Older: older}
}

// Store loads and saves the uncategorized history list.
type Store struct {
	Persistence store.Persistence
}

// Load returns the persisted history, or nothing when none was saved.
func (s *Store) Load() ([]string, error) {
	if s.Persistence == nil {
		return nil, errors.New("history: no persistence configured")
	}
	raw, err := s.Persistence.Get(store.KeyHistory)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Save writes the full history list.
func (s *Store) Save(list []string) error {
	if s.Persistence == nil {
		return errors.New("history: no persistence configured")
	}
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.Persistence.Set(store.KeyHistory, string(data))
}

// Reconciler produces the uncategorized history on activation.
type Reconciler struct {
	Clipboard clipboard.Clipboard
	Store     *Store
	Depth     int
}

// Reconcile scans the clipboard, merges with the persisted history, drops
// anything already filed in buckets and saves the result. Every call writes.
func (r *Reconciler) Reconcile(ctx context.Context, buckets []bucket.Bucket) ([]string, error) {
	if r.Store == nil {
		return nil, errors.New("history: no store configured")
	}
	depth := r.Depth
	if depth <= 0 {
		depth = store.DefaultHistoryDepth
	}
	fresh := Scan(ctx, r.Clipboard, depth)
	persisted, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	merged := Prune(Merge(fresh, persisted), buckets)
	if err := r.Store.Save(merged); err != nil {
		return nil, err
	}
	return merged, nil
}
