package jot

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Collection is a public alias for the notes collection.
type Collection = core.Collection

// EditSession is a public alias for the collection's edit session.
type EditSession = core.EditSession

// Store is a public alias for the durable storage contract.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// Backend names accepted by WithBackend.
const (
	BackendFS     = platform.BackendFS
	BackendBolt   = platform.BackendBolt
	BackendSQLite = platform.BackendSQLite
)

// WithBackend selects the storage backend ("fs", "bolt" or "sqlite").
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithSlot sets the name of the durable slot holding the collection.
func WithSlot(name string) Option {
	return platform.WithSlot(name)
}

// WithAutoInit creates the store directory if it does not exist.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the store directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly rejects every write with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithLogger sets the logger for the store and the collection.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithClock overrides the clock used to mint note ids.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithDebounce sets how long the fs watcher coalesces bursts of events.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open creates a Collection over the store in dir and loads it.
func Open(ctx context.Context, dir string, opts ...Option) (*core.Collection, error) {
	return platform.New(ctx, dir, opts...)
}

// Init builds the store for dir without loading it.
func Init(dir string, opts ...Option) (core.Store, error) {
	return platform.Init(dir, opts...)
}

// --- Utils ---

// FindRoot recursively looks upwards for a jot.yaml file or a .jot directory.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
