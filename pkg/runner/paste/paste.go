// Package paste hands a text to the foreground application.
package paste

import (
	"context"
	"errors"

	"tableflip.dev/clipbucket/pkg/app"
)

// Paste puts Text on the clipboard and runs the configured paste helper.
type Paste struct {
	Service *app.Service
	Text    string
}

func (n *Paste) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not paste, no service")
	}
	if n.Text == "" {
		return errors.New("nothing to paste")
	}
	return n.Service.Paste(ctx, n.Text)
}
