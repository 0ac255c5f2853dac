package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/history"
	"tableflip.dev/clipbucket/pkg/store"
)

func seedBuckets(t *testing.T, buckets []bucket.Bucket) string {
	t.Helper()
	b, err := json.Marshal(buckets)
	require.NoError(t, err)
	return string(b)
}

func newActivated(t *testing.T, clip []string, persisted string, buckets []bucket.Bucket) (*Service, *store.Memory, *clipboard.Memory) {
	t.Helper()
	seed := map[string]string{}
	if persisted != "" {
		seed[store.KeyHistory] = persisted
	}
	if buckets != nil {
		seed[store.KeyBuckets] = seedBuckets(t, buckets)
	}
	mem := store.NewMemory(seed)
	cb := clipboard.NewMemory(clip...)
	svc := New(mem, cb, 10)
	require.NoError(t, svc.Activate(context.Background()))
	return svc, mem, cb
}

func storedHistory(t *testing.T, mem *store.Memory) []string {
	t.Helper()
	list, err := (&history.Store{Persistence: mem}).Load()
	require.NoError(t, err)
	return list
}

func storedBuckets(t *testing.T, mem *store.Memory) []bucket.Bucket {
	t.Helper()
	list, err := (&bucket.Store{Persistence: mem}).Load()
	require.NoError(t, err)
	return list
}

func assertNoOverlap(t *testing.T, svc *Service, mem *store.Memory) {
	t.Helper()
	filed := bucket.Items(svc.Buckets())
	for _, h := range svc.History() {
		_, ok := filed[h]
		assert.False(t, ok, "%q is both filed and uncategorized", h)
	}
	filed = bucket.Items(storedBuckets(t, mem))
	for _, h := range storedHistory(t, mem) {
		_, ok := filed[h]
		assert.False(t, ok, "%q is both filed and in persisted history", h)
	}
}

func TestActivateMergesAndExcludesBucketed(t *testing.T) {
	buckets := bucket.Empties()
	buckets[2].Name = "Keep"
	buckets[2].Items = []string{"B"}

	svc, mem, _ := newActivated(t, []string{"A", "B"}, `["B","C"]`, buckets)

	v := svc.View()
	assert.Equal(t, "A", v.Latest)
	assert.Equal(t, []string{"C"}, v.Older)
	assert.Equal(t, []string{"A", "C"}, storedHistory(t, mem))
	assertNoOverlap(t, svc, mem)
}

func TestActivatePadsBuckets(t *testing.T) {
	svc, _, _ := newActivated(t, nil, "", []bucket.Bucket{{ID: 0, Name: "a"}, {ID: 1}, {ID: 2, Name: "c"}})
	got := svc.Buckets()
	require.Len(t, got, bucket.Slots)
	assert.Equal(t, 3, got[3].ID)
	assert.Equal(t, 4, got[4].ID)
	assert.True(t, got[3].Empty())
	assert.Empty(t, got[4].Items)
}

func TestMoveToBucketPrependsAndDedupes(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "Work"
	buckets[0].Items = []string{"x", "y"}

	svc, mem, _ := newActivated(t, []string{"A", "x"}, "", buckets)
	ctx := context.Background()

	require.NoError(t, svc.MoveToBucket(ctx, "A", 0))
	b, err := svc.Bucket(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "x", "y"}, b.Items)
	assert.NotContains(t, svc.History(), "A")
	assert.NotContains(t, storedHistory(t, mem), "A")

	// Re-filing an existing item moves it to the front rather than duplicating it.
	require.NoError(t, svc.MoveToBucket(ctx, "y", 0))
	b, _ = svc.Bucket(0)
	assert.Equal(t, []string{"y", "A", "x"}, b.Items)
	assert.Equal(t, []string{"y", "A", "x"}, storedBuckets(t, mem)[0].Items)
	assertNoOverlap(t, svc, mem)
}

func TestMoveThenRemovePreservesBucketOrder(t *testing.T) {
	buckets := bucket.Empties()
	buckets[1].Name = "Links"
	buckets[1].Items = []string{"p", "q", "r"}

	svc, mem, _ := newActivated(t, []string{"X"}, "", buckets)
	ctx := context.Background()

	require.NoError(t, svc.MoveToBucket(ctx, "X", 1))
	require.NoError(t, svc.RemoveFromBucket(ctx, "X", 1))

	b, _ := svc.Bucket(1)
	assert.Equal(t, []string{"p", "q", "r"}, b.Items)
	assert.Equal(t, "X", svc.View().Latest)
	assert.Equal(t, []string{"X"}, storedHistory(t, mem))
	assertNoOverlap(t, svc, mem)
}

func TestMoveToNewBucket(t *testing.T) {
	svc, mem, _ := newActivated(t, []string{"A", "B"}, "", nil)
	ctx := context.Background()

	id, ok := svc.FirstEmptySlot()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	moved, err := svc.MoveToNewBucket(ctx, "B", id, " Work ")
	require.NoError(t, err)
	assert.True(t, moved)
	b, _ := svc.Bucket(0)
	assert.Equal(t, "Work", b.Name)
	assert.Equal(t, []string{"B"}, b.Items)

	// Slot 0 is taken now; asking again changes nothing.
	moved, err = svc.MoveToNewBucket(ctx, "A", 0, "Other")
	require.NoError(t, err)
	assert.False(t, moved)
	b, _ = svc.Bucket(0)
	assert.Equal(t, "Work", b.Name)
	assert.Contains(t, svc.History(), "A")
	assertNoOverlap(t, svc, mem)
}

func TestBulkMoveToNewBucketKeepsSelectionOrder(t *testing.T) {
	svc, mem, _ := newActivated(t, []string{"A", "B", "C"}, "", nil)
	ctx := context.Background()

	svc.EnterSelection("A")
	svc.ToggleSelection("C")
	assert.Equal(t, []string{"A", "C"}, svc.Selected())

	id, ok := svc.FirstEmptySlot()
	require.True(t, ok)
	moved, err := svc.MoveSelectionToNewBucket(ctx, id, "Work")
	require.NoError(t, err)
	require.True(t, moved)

	b, _ := svc.Bucket(id)
	assert.Equal(t, "Work", b.Name)
	assert.Equal(t, []string{"A", "C"}, b.Items)
	assert.Equal(t, []string{"B"}, svc.History())
	assert.Equal(t, []string{"B"}, storedHistory(t, mem))
	assert.Empty(t, svc.Selected())
	assert.False(t, svc.SelectionMode())
}

func TestBulkMoveToExistingBucket(t *testing.T) {
	buckets := bucket.Empties()
	buckets[3].Name = "Misc"
	buckets[3].Items = []string{"old", "C"}
	svc, mem, _ := newActivated(t, []string{"A", "B"}, "", buckets)

	svc.EnterSelection("B")
	svc.ToggleSelection("A")
	require.NoError(t, svc.MoveSelection(context.Background(), 3))

	b, _ := svc.Bucket(3)
	assert.Equal(t, []string{"B", "A", "old", "C"}, b.Items)
	assert.Empty(t, svc.History())
	assert.Empty(t, svc.Selected())
	assertNoOverlap(t, svc, mem)
}

func TestMoveBetweenBucketsKeepsSingleOwner(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "One"
	buckets[0].Items = []string{"shared"}
	buckets[1].Name = "Two"
	svc, _, _ := newActivated(t, nil, "", buckets)

	require.NoError(t, svc.MoveToBucket(context.Background(), "shared", 1))
	assert.Equal(t, 1, svc.Locate("shared"))
	b, _ := svc.Bucket(0)
	assert.Empty(t, b.Items)
}

func TestRenameBucketKeepsItems(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "Old"
	buckets[0].Items = []string{"a"}
	svc, mem, _ := newActivated(t, nil, "", buckets)

	require.NoError(t, svc.RenameBucket(context.Background(), 0, "New"))
	got := storedBuckets(t, mem)[0]
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestBlankNameLeavesStateAlone(t *testing.T) {
	buckets := bucket.Empties()
	buckets[1].Name = "Work"
	buckets[1].Items = []string{"filed"}
	svc, mem, _ := newActivated(t, []string{"A", "B"}, "", buckets)
	ctx := context.Background()

	moved, err := svc.MoveToNewBucket(ctx, "A", 0, "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.False(t, moved)

	svc.EnterSelection("B")
	moved, err = svc.MoveSelectionToNewBucket(ctx, 0, "")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.False(t, moved)
	assert.Equal(t, []string{"B"}, svc.Selected())

	assert.ErrorIs(t, svc.RenameBucket(ctx, 1, " \t"), ErrNameRequired)

	b, _ := svc.Bucket(0)
	assert.True(t, b.Empty())
	assert.Empty(t, b.Items)
	assert.Equal(t, "Work", storedBuckets(t, mem)[1].Name)
	assert.Equal(t, []string{"A", "B"}, svc.History())
	assert.Equal(t, []string{"A", "B"}, storedHistory(t, mem))
}

func TestDeleteEntryLeavesBuckets(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "Work"
	buckets[0].Items = []string{"filed"}
	svc, mem, _ := newActivated(t, []string{"A", "B"}, "", buckets)

	require.NoError(t, svc.DeleteEntry(context.Background(), "A"))
	assert.Equal(t, []string{"B"}, svc.History())
	assert.Equal(t, []string{"B"}, storedHistory(t, mem))
	assert.Equal(t, []string{"filed"}, storedBuckets(t, mem)[0].Items)
}

func TestDeleteBucketEntry(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "Work"
	buckets[0].Items = []string{"a", "b"}
	svc, mem, _ := newActivated(t, nil, `["c"]`, buckets)

	require.NoError(t, svc.DeleteBucketEntry(context.Background(), "a", 0))
	assert.Equal(t, []string{"b"}, storedBuckets(t, mem)[0].Items)
	assert.Equal(t, []string{"c"}, storedHistory(t, mem))
	assert.NotContains(t, svc.History(), "a")
}

func TestDeleteBucketKeepsSlot(t *testing.T) {
	buckets := bucket.Empties()
	buckets[2].Name = "Gone"
	buckets[2].Items = []string{"a", "b"}
	svc, mem, _ := newActivated(t, nil, "", buckets)

	require.NoError(t, svc.DeleteBucket(context.Background(), 2))
	got := storedBuckets(t, mem)
	require.Len(t, got, bucket.Slots)
	assert.Equal(t, 2, got[2].ID)
	assert.Equal(t, "", got[2].Name)
	assert.Equal(t, []string{}, got[2].Items)
	assert.Len(t, svc.Buckets(), bucket.Slots)

	id, ok := svc.FirstEmptySlot()
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestInvalidBucketID(t *testing.T) {
	svc, _, _ := newActivated(t, []string{"A"}, "", nil)
	err := svc.MoveToBucket(context.Background(), "A", bucket.Slots)
	assert.True(t, errors.Is(err, ErrInvalidBucket))
	err = svc.DeleteBucket(context.Background(), -1)
	assert.True(t, errors.Is(err, ErrInvalidBucket))
}

func TestSelectionToggleAndExit(t *testing.T) {
	svc, _, _ := newActivated(t, []string{"A", "B"}, "", nil)

	svc.EnterSelection("A")
	assert.True(t, svc.SelectionMode())
	assert.True(t, svc.ToggleSelection("B"))
	assert.False(t, svc.ToggleSelection("A"))
	assert.Equal(t, []string{"B"}, svc.Selected())
	assert.True(t, svc.IsSelected("B"))

	svc.ExitSelection()
	assert.False(t, svc.SelectionMode())
	assert.Empty(t, svc.Selected())
}

func TestPasteSelectedJoinsAndClears(t *testing.T) {
	svc, _, cb := newActivated(t, []string{"A", "B", "C"}, "", nil)

	svc.EnterSelection("C")
	svc.ToggleSelection("A")
	require.NoError(t, svc.PasteSelected(context.Background()))

	assert.Equal(t, []string{"C\nA"}, cb.Pasted())
	assert.Empty(t, svc.Selected())
}

func TestCaptureIgnoresBlankAndFiled(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "Work"
	buckets[0].Items = []string{"filed"}
	svc, mem, _ := newActivated(t, []string{"A"}, "", buckets)
	ctx := context.Background()

	ok, err := svc.Capture(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Capture(ctx, "filed")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Capture(ctx, " picked ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"picked", "A"}, svc.History())
	assert.Equal(t, []string{"picked", "A"}, storedHistory(t, mem))
}

func TestSearchFindsAcrossHistoryAndBuckets(t *testing.T) {
	buckets := bucket.Empties()
	buckets[1].Name = "Links"
	buckets[1].Items = []string{"https://golang.org"}
	svc, _, _ := newActivated(t, []string{"go test ./...", "make build"}, "", buckets)

	all := svc.Search("")
	assert.Len(t, all, 3)

	hits := svc.Search("golang")
	require.NotEmpty(t, hits)
	assert.Equal(t, "https://golang.org", hits[0].Text)
	assert.Equal(t, 1, hits[0].BucketID)
	assert.Equal(t, "Links", hits[0].Bucket)
}

func TestKnown(t *testing.T) {
	buckets := bucket.Empties()
	buckets[0].Name = "Work"
	buckets[0].Items = []string{"filed"}
	svc, _, _ := newActivated(t, []string{"A"}, "", buckets)

	assert.True(t, svc.Known("A"))
	assert.True(t, svc.Known("filed"))
	assert.False(t, svc.Known("nope"))
}

func TestOperationsRequireActivation(t *testing.T) {
	svc := New(store.NewMemory(nil), clipboard.NewMemory(), 5)
	assert.Error(t, svc.MoveToBucket(context.Background(), "A", 0))
	assert.Len(t, svc.Buckets(), bucket.Slots)

	none := New(nil, nil, 5)
	assert.ErrorIs(t, none.Activate(context.Background()), ErrNoPersistence)
	assert.ErrorIs(t, none.Copy(context.Background(), "x"), ErrNoClipboard)
}
