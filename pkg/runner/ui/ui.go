// Package ui opens the interactive clipboard screen.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/clipbucket/pkg/app"
	teaui "tableflip.dev/clipbucket/pkg/runner/tea"
)

type UI struct {
	Service *app.Service
}

func (d *UI) Do(_ context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no service")
	}
	return teaui.Run(d.Service)
}
