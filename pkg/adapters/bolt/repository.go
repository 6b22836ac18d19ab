// Package bolt stores the notes slot as a single key in a bbolt database.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/aretw0/jot/pkg/core"
)

var bucketSlots = []byte("jot")

// Config holds the configuration for the bbolt store.
type Config struct {
	Path     string // Database file
	Slot     string
	ReadOnly bool
	Logger   *slog.Logger
}

// Repository implements core.Store on top of bbolt.
type Repository struct {
	db     *bolt.DB
	config Config
}

// Open opens (or creates) the database at config.Path.
func Open(config Config) (*Repository, error) {
	path := strings.TrimSpace(config.Path)
	if path == "" {
		return nil, errors.New("bolt store path is required")
	}
	if config.Slot == "" {
		config.Slot = core.DefaultSlot
	}
	if !config.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second, ReadOnly: config.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}
	if !config.ReadOnly {
		err = db.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(bucketSlots)
			return err
		})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return &Repository{db: db, config: config}, nil
}

// Load reads the slot. A missing bucket, key or malformed value yields an empty collection.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlots)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(r.config.Slot)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStorageRead, err)
	}

	notes, err := core.Decode(raw)
	if err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Warn("ignoring malformed notes slot", "slot", r.config.Slot, "error", err)
		}
		return []core.Note{}, nil
	}
	return notes, nil
}

// Save overwrites the slot in a single write transaction.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	data, err := core.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSlots)
		if err != nil {
			return err
		}
		return b.Put([]byte(r.config.Slot), data)
	})
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "bolt"
}

// Close releases the database file lock.
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

var _ core.Store = (*Repository)(nil)
