package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// options holds the internal configuration for a jot collection.
type options struct {
	store   core.Store
	logger  *slog.Logger
	backend string
	clock   core.Clock
	config  map[string]interface{}
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend: BackendFS,
		config:  make(map[string]interface{}),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithBackend selects the storage backend by name: "fs" (default), "bolt" or "sqlite".
func WithBackend(name string) Option {
	return func(o *options) {
		if name != "" {
			o.backend = name
		}
	}
}

// WithSlot sets the name of the durable slot. Defaults to "notes".
func WithSlot(name string) Option {
	return func(o *options) {
		o.config["slot"] = name
	}
}

// WithAutoInit creates the store directory when it does not exist yet.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist ensures the store directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithReadOnly enables read-only mode: every write returns core.ErrReadOnly
// and nothing is created on disk.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithLogger sets the logger for the store and the collection.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store (e.g. memory, mock).
// If provided, the backend selection is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithClock overrides the clock used to mint note ids.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithDebounce sets how long the fs watcher coalesces bursts of events.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.config["debounce"] = d
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching the store, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
