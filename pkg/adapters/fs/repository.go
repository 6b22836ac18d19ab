package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// Repository implements core.Store as a single JSON file on disk.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
	lastEvent     *time.Time
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string // Directory holding the slot file
	Slot      string // Slot name; the file is <Slot>.json
	AutoInit  bool   // Create Path on Initialize if it is missing
	MustExist bool   // Fail Initialize if Path is missing
	ReadOnly  bool
	Logger    *slog.Logger

	// WatchPattern is a doublestar pattern matched against file names in
	// Path. Defaults to the slot file itself.
	WatchPattern string
	// Debounce coalesces bursts of filesystem events. Defaults to 50ms.
	Debounce     time.Duration
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed store.
func NewRepository(config Config) *Repository {
	if config.Slot == "" {
		config.Slot = core.DefaultSlot
	}
	if config.WatchPattern == "" {
		config.WatchPattern = config.Slot + ".json"
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// File returns the absolute location of the slot file.
func (r *Repository) File() string {
	return filepath.Join(r.Path, r.config.Slot+".json")
}

// Initialize makes sure the directory holding the slot is usable.
func (r *Repository) Initialize(ctx context.Context) error {
	info, err := os.Stat(r.Path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", r.Path)
		}
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat store path: %w", err)
	}

	if r.config.MustExist || r.config.ReadOnly {
		return fmt.Errorf("store path does not exist: %s", r.Path)
	}
	if !r.config.AutoInit {
		// Created lazily by the first Save.
		return nil
	}
	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if r.config.Logger != nil {
		r.config.Logger.Debug("created store directory", "path", r.Path)
	}
	return nil
}

// Load reads the slot file. A missing or malformed file yields an empty collection.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(r.File())
	if os.IsNotExist(err) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStorageRead, err)
	}

	notes, err := core.Decode(data)
	if err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Warn("ignoring malformed notes file", "path", r.File(), "error", err)
		}
		return []core.Note{}, nil
	}
	return notes, nil
}

// Save overwrites the slot file atomically.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := core.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(r.File(), data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.recordSave()
	if r.config.Logger != nil {
		r.config.Logger.Debug("notes saved", "path", r.File(), "count", len(notes))
	}
	return nil
}

var _ core.Store = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
