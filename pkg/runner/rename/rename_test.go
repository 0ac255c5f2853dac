package rename

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/store"
)

func TestRename(t *testing.T) {
	seed := map[string]string{store.KeyBuckets: `[{"id":0,"name":"Work","items":["x"]}]`}
	svc := app.New(store.NewMemory(seed), clipboard.NewMemory(), 10)

	r := Rename{Service: svc, Slot: 1, Name: " Home ", Out: &bytes.Buffer{}}
	require.NoError(t, r.Do(context.Background()))

	b, _ := svc.Bucket(0)
	assert.Equal(t, "Home", b.Name)
	assert.Equal(t, []string{"x"}, b.Items)
}

func TestRenameRequiresName(t *testing.T) {
	svc := app.New(store.NewMemory(nil), clipboard.NewMemory(), 10)
	r := Rename{Service: svc, Slot: 1, Name: "  "}
	assert.Error(t, r.Do(context.Background()))
}
