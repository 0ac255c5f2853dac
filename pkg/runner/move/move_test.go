package move

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/store"
)

func init() {
	color.NoColor = true
}

func newService(seed map[string]string, clip ...string) *app.Service {
	return app.New(store.NewMemory(seed), clipboard.NewMemory(clip...), 10)
}

func TestMoveCreatesBucket(t *testing.T) {
	svc := newService(nil, "A", "B")
	var buf bytes.Buffer

	m := Move{Service: svc, Text: "B", Slot: 2, Name: "Work", Out: &buf}
	require.NoError(t, m.Do(context.Background()))

	b, err := svc.Bucket(1)
	require.NoError(t, err)
	assert.Equal(t, "Work", b.Name)
	assert.Equal(t, []string{"B"}, b.Items)
	assert.Equal(t, []string{"A"}, svc.History())
	assert.Contains(t, buf.String(), "2 Work - 1 item")
}

func TestMoveIntoNamedBucket(t *testing.T) {
	seed := map[string]string{store.KeyBuckets: `[{"id":0,"name":"Work","items":["x"]}]`}
	svc := newService(seed, "A")

	m := Move{Service: svc, Text: "A", Slot: 1, Out: &bytes.Buffer{}}
	require.NoError(t, m.Do(context.Background()))

	b, _ := svc.Bucket(0)
	assert.Equal(t, []string{"A", "x"}, b.Items)
}

func TestMoveErrors(t *testing.T) {
	seed := map[string]string{store.KeyBuckets: `[{"id":0,"name":"Work","items":[]}]`}
	ctx := context.Background()

	tests := map[string]struct {
		move Move
		is   error
	}{
		"unknown text":    {move: Move{Text: "nope", Slot: 1}},
		"unused slot":     {move: Move{Text: "A", Slot: 3}},
		"renaming a slot": {move: Move{Text: "A", Slot: 1, Name: "Other"}},
		"bad slot":        {move: Move{Text: "A", Slot: 9}, is: app.ErrInvalidBucket},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := tc.move
			m.Service = newService(seed, "A")
			m.Out = &bytes.Buffer{}
			err := m.Do(ctx)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}
