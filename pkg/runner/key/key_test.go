package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestKeyListsBindings(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	k := Key{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"Browsing", "Selecting", "move to bucket", "paste selected"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}
