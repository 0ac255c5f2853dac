package app

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is a search hit. BucketID is -1 for uncategorized history.
type Match struct {
	Text     string `json:"text"`
	BucketID int    `json:"bucketId"`
	Bucket   string `json:"bucket,omitempty"`
	Score    int    `json:"score"`
}

type candidate struct {
	text     string
	bucketID int
	bucket   string
}

type candidates []candidate

func (c candidates) String(i int) string { return c[i].text }
func (c candidates) Len() int            { return len(c) }

// Search fuzzy-matches query against the history and every bucket item.
// An empty query returns everything in display order.
func (s *Service) Search(query string) []Match {
	var all candidates
	for _, text := range s.history {
		all = append(all, candidate{text: text, bucketID: -1})
	}
	for _, b := range s.buckets {
		for _, text := range b.Items {
			all = append(all, candidate{text: text, bucketID: b.ID, bucket: b.Name})
		}
	}

	if strings.TrimSpace(query) == "" {
		out := make([]Match, 0, len(all))
		for _, c := range all {
			out = append(out, Match{Text: c.text, BucketID: c.bucketID, Bucket: c.bucket})
		}
		return out
	}

	found := fuzzy.FindFrom(query, all)
	out := make([]Match, 0, len(found))
	for _, f := range found {
		c := all[f.Index]
		out = append(out, Match{Text: c.text, BucketID: c.bucketID, Bucket: c.bucket, Score: f.Score})
	}
	return out
}
