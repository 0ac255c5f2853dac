// Package bucket persists the fixed set of named buckets clipboard text is filed into.
package bucket

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/clipbucket/pkg/store"
)

// Slots is the number of buckets that always exist.
const Slots = 5

// Bucket is a fixed slot holding filed clipboard items, most recent first.
// An empty Name marks an unused slot.
type Bucket struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Empty reports whether the slot is unused.
func (b Bucket) Empty() bool {
	return strings.TrimSpace(b.Name) == ""
}

// Contains reports whether text is filed in the bucket.
func (b Bucket) Contains(text string) bool {
	for _, it := range b.Items {
		if it == text {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of b.
func (b Bucket) Clone() Bucket {
	cp := Bucket{ID: b.ID, Name: b.Name, Items: make([]string, len(b.Items))}
	copy(cp.Items, b.Items)
	return cp
}

// Title returns the name, or a placeholder for unused slots.
func (b Bucket) Title() string {
	if b.Empty() {
		return fmt.Sprintf("(empty slot %d)", b.ID+1)
	}
	return b.Name
}

// Normalize returns exactly Slots buckets: missing slots are padded with
// unnamed, empty buckets and extra ones are dropped. Ids follow slot order.
func Normalize(in []Bucket) []Bucket {
	out := make([]Bucket, Slots)
	for i := 0; i < Slots; i++ {
		if i < len(in) {
			out[i] = in[i].Clone()
		}
		out[i].ID = i
		if out[i].Items == nil {
			out[i].Items = []string{}
		}
	}
	return out
}

// Empties returns Slots unused buckets.
func Empties() []Bucket {
	return Normalize(nil)
}

// FirstEmpty returns the id of the first unused slot.
func FirstEmpty(buckets []Bucket) (int, bool) {
	for _, b := range buckets {
		if b.Empty() {
			return b.ID, true
		}
	}
	return 0, false
}

// Items returns the union of all items filed in buckets.
func Items(buckets []Bucket) map[string]struct{} {
	set := make(map[string]struct{})
	for _, b := range buckets {
		for _, it := range b.Items {
			set[it] = struct{}{}
		}
	}
	return set
}

// Clone deep-copies a bucket slice.
func Clone(buckets []Bucket) []Bucket {
	out := make([]Bucket, len(buckets))
	for i, b := range buckets {
		out[i] = b.Clone()
	}
	return out
}

// Store loads and saves buckets through a key-value Persistence.
type Store struct {
	Persistence store.Persistence
}

// Load returns exactly Slots buckets. Nothing stored yet yields Slots empty buckets.
func (s *Store) Load() ([]Bucket, error) {
	if s.Persistence == nil {
		return nil, errors.New("bucket: no persistence configured")
	}
	raw, err := s.Persistence.Get(store.KeyBuckets)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Empties(), nil
		}
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return Empties(), nil
	}
	var list []Bucket
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("bucket: decode: %w", err)
	}
	return Normalize(list), nil
}

// Save writes the full bucket array.
func (s *Store) Save(buckets []Bucket) error {
	if s.Persistence == nil {
		return errors.New("bucket: no persistence configured")
	}
	data, err := json.Marshal(Normalize(buckets))
	if err != nil {
		return err
	}
	return s.Persistence.Set(store.KeyBuckets, string(data))
}
