package store

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultHistoryDepth is how many clipboard offsets are scanned per activation.
	DefaultHistoryDepth = 10

	defaultPath = "~/.clipbucket"
)

// Config describes where data lives and how the clipboard is reached.
type Config interface {
	BasePath() string
	HistoryDepth() int
	ReadCommand() string
	PasteCommand() string
}

// LoadConfig resolves configuration from .clipbucket.yaml, CLIPBUCKET_* env vars and defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("history.depth", DefaultHistoryDepth)
	v.SetDefault("clipboard.read-command", "")
	v.SetDefault("clipboard.paste-command", "")
	v.SetConfigName(".clipbucket") // .yaml is implicit
	v.SetEnvPrefix("CLIPBUCKET")
	// history.depth reads CLIPBUCKET_HISTORY_DEPTH.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("CLIPBUCKET_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	depth := v.GetInt("history.depth")
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}

	return &fileConfig{
		Path:     path,
		Depth:    depth,
		ReadCmd:  v.GetString("clipboard.read-command"),
		PasteCmd: v.GetString("clipboard.paste-command"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Depth    int    `json:"depth"`
	ReadCmd  string `json:"readCommand,omitempty"`
	PasteCmd string `json:"pasteCommand,omitempty"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) HistoryDepth() int    { return f.Depth }
func (f *fileConfig) ReadCommand() string  { return f.ReadCmd }
func (f *fileConfig) PasteCommand() string { return f.PasteCmd }
