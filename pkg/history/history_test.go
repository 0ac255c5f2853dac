package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/store"
)

type flakyClipboard struct {
	*clipboard.Memory
	failAt int
	reads  int
}

func (f *flakyClipboard) Read(ctx context.Context, offset int) (string, error) {
	f.reads++
	if offset == f.failAt {
		return "", errors.New("boom")
	}
	return f.Memory.Read(ctx, offset)
}

func TestScanTrimsAndStopsAtFirstFailure(t *testing.T) {
	cb := &flakyClipboard{Memory: clipboard.NewMemory("  a  ", "   ", "b", "c"), failAt: 3}
	got := Scan(context.Background(), cb, 10)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 4, cb.reads)
}

func TestScanHonoursDepth(t *testing.T) {
	cb := clipboard.NewMemory("1", "2", "3", "4", "5", "6")
	got := Scan(context.Background(), cb, 5)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)
}

func TestMergeFreshFirstWithoutDuplicates(t *testing.T) {
	got := Merge([]string{"A", "B"}, []string{"B", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, got)

	got = Merge([]string{"X", "Y", "X"}, []string{"Z", "Y", "Z"})
	assert.Equal(t, []string{"X", "Y", "Z"}, got)
}

func TestMergeKeepsFreshAheadOfPersisted(t *testing.T) {
	fresh := []string{"n1", "p2", "n2"}
	persisted := []string{"p1", "p2", "p3"}
	got := Merge(fresh, persisted)

	pos := make(map[string]int, len(got))
	for i, v := range got {
		_, dup := pos[v]
		require.False(t, dup, "duplicate %q", v)
		pos[v] = i
	}
	for _, f := range fresh {
		for _, p := range []string{"p1", "p3"} {
			assert.Less(t, pos[f], pos[p])
		}
	}
	assert.Less(t, pos["p1"], pos["p3"])
}

func TestPrependAndRemove(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Prepend([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"z", "a"}, Prepend([]string{"a"}, "z"))
	assert.Equal(t, []string{"b"}, Remove([]string{"a", "b", "c"}, "a", "c"))
}

func TestSplit(t *testing.T) {
	v := Split([]string{"A", "C"})
	assert.True(t, v.HasLatest())
	assert.Equal(t, "A", v.Latest)
	assert.Equal(t, []string{"C"}, v.Older)

	empty := Split(nil)
	assert.False(t, empty.HasLatest())
	assert.Empty(t, empty.Older)
}

func TestReconcileExcludesBucketedItems(t *testing.T) {
	mem := store.NewMemory(map[string]string{store.KeyHistory: `["B","C"]`})
	buckets := bucket.Empties()
	buckets[2].Name = "Keep"
	buckets[2].Items = []string{"B"}

	r := &Reconciler{
		Clipboard: clipboard.NewMemory("A", "B"),
		Store:     &Store{Persistence: mem},
		Depth:     10,
	}
	got, err := r.Reconcile(context.Background(), buckets)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, got)

	v := Split(got)
	assert.Equal(t, "A", v.Latest)
	assert.Equal(t, []string{"C"}, v.Older)

	saved, err := (&Store{Persistence: mem}).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, saved)
}

func TestReconcileAlwaysWrites(t *testing.T) {
	mem := store.NewMemory(nil)
	r := &Reconciler{Clipboard: clipboard.NewMemory(), Store: &Store{Persistence: mem}}
	got, err := r.Reconcile(context.Background(), bucket.Empties())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, mem.Writes())

	raw, err := mem.Get(store.KeyHistory)
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}
