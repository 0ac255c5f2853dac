package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Keys used by the clipboard organizer.
const (
	KeyBuckets = "buckets"
	KeyHistory = "history"
)

// ErrNotFound is returned by Get when nothing has been stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Persistence is an opaque string key-value store. Values are written whole.
type Persistence interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) (string, error) {
	key = normalizeKey(key)
	if !p.d.Has(key) {
		return "", ErrNotFound
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), nil
}

func (p *persistence) Set(key, value string) error {
	key = normalizeKey(key)
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// flatTransform keeps every key as a file directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

func normalizeKey(key string) string {
	return strings.TrimSpace(key)
}
