package commands

import (
	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/clipboard"
	"tableflip.dev/clipbucket/pkg/store"
)

// loadService wires config, diskv persistence and the system clipboard.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	cb := clipboard.NewSystem(cfg.ReadCommand(), cfg.PasteCommand())
	return app.New(p, cb, cfg.HistoryDepth()), nil
}
