package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional jot.yaml file.
//
//	backend: bolt
//	dir: .jot
//	slot: notes
//	log_level: debug
//	read_only: false
type FileConfig struct {
	Backend  string `yaml:"backend,omitempty"`
	Dir      string `yaml:"dir,omitempty"`
	Slot     string `yaml:"slot,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	ReadOnly bool   `yaml:"read_only,omitempty"`

	// path is where the file was read from; relative dirs resolve against it.
	path string
}

// LoadConfig reads a YAML config file. A missing file yields a zero config.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// ResolveDir returns the store directory, resolving a relative Dir against
// the directory of the config file. Empty when Dir is unset.
func (c FileConfig) ResolveDir() string {
	if c.Dir == "" {
		return ""
	}
	if filepath.IsAbs(c.Dir) || c.path == "" {
		return c.Dir
	}
	return filepath.Join(filepath.Dir(c.path), c.Dir)
}

// Level maps log_level to a slog level. Unknown values fall back to INFO.
func (c FileConfig) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options converts the file into functional options. Options passed after
// these override them.
func (c FileConfig) Options() []Option {
	var opts []Option
	if c.Backend != "" {
		opts = append(opts, WithBackend(c.Backend))
	}
	if c.Slot != "" {
		opts = append(opts, WithSlot(c.Slot))
	}
	if c.ReadOnly {
		opts = append(opts, WithReadOnly(true))
	}
	return opts
}
