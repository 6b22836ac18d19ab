// Package sqlite stores the notes slot as a row of a key/value table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/aretw0/jot/pkg/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Config holds the configuration for the SQLite store.
type Config struct {
	Path     string // Database file
	Slot     string
	ReadOnly bool
	Logger   *slog.Logger
}

// Repository implements core.Store on top of SQLite.
type Repository struct {
	db     *sql.DB
	config Config
}

// Open opens (or creates) the database at config.Path.
func Open(config Config) (*Repository, error) {
	if config.Path == "" {
		return nil, errors.New("sqlite store path is required")
	}
	if config.Slot == "" {
		config.Slot = core.DefaultSlot
	}

	dsn := config.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if config.ReadOnly {
		dsn = config.Path + "?mode=ro"
	} else if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if !config.ReadOnly {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}
	return &Repository{db: db, config: config}, nil
}

// Load reads the slot row. A missing row or malformed value yields an empty collection.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, r.config.Slot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStorageRead, err)
	}

	notes, err := core.Decode([]byte(raw))
	if err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Warn("ignoring malformed notes slot", "slot", r.config.Slot, "error", err)
		}
		return []core.Note{}, nil
	}
	return notes, nil
}

// Save upserts the slot row.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	data, err := core.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		r.config.Slot, string(data))
	return err
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "sqlite"
}

// Close closes the database connection.
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

var _ core.Store = (*Repository)(nil)
