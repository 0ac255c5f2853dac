package info

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/clipbucket/pkg/store"
)

type testConfig struct{ path string }

func (c testConfig) BasePath() string     { return c.path }
func (c testConfig) HistoryDepth() int    { return 7 }
func (c testConfig) ReadCommand() string  { return "copyq read" }
func (c testConfig) PasteCommand() string { return "" }

func TestInfo(t *testing.T) {
	t.Setenv("CLIPBUCKET_CONFIG_PATH", "")
	p := store.NewMemory(map[string]string{
		store.KeyBuckets: `[{"id":0,"name":"Work","items":["x","y"]}]`,
		store.KeyHistory: `["A","B","C"]`,
	})

	var buf bytes.Buffer
	i := Info{Config: testConfig{path: "/tmp/cb"}, Persistence: p, Out: &buf}
	require.NoError(t, i.Do(context.Background()))

	got := buf.String()
	assert.Contains(t, got, "CLIPBUCKET_CONFIG_PATH env var not set")
	assert.Contains(t, got, "Config.path:  /tmp/cb")
	assert.Contains(t, got, "Config.history.depth:  7")
	assert.Contains(t, got, "Config.clipboard.read-command:  copyq read")
	assert.Contains(t, got, "Config.clipboard.paste-command:  none")
	assert.Contains(t, got, "  1 Work (2)")
	assert.Contains(t, got, "  5 (empty slot 5) (0)")
	assert.Contains(t, got, "History: 3 stored")
}

func TestInfoNoPersistence(t *testing.T) {
	i := Info{Config: testConfig{}, Out: &bytes.Buffer{}}
	assert.Error(t, i.Do(context.Background()))
}
