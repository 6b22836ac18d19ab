package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/jot/pkg/adapters/bolt"
	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/adapters/sqlite"
	"github.com/aretw0/jot/pkg/core"
)

// Backend names.
const (
	BackendFS     = "fs"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Database file names used inside the store directory.
const (
	BoltFile   = "jot.db"
	SQLiteFile = "jot.sqlite"
)

// Init builds the store selected by the options. The 'dir' argument is the
// directory holding the durable data for every backend.
func Init(dir string, opts ...Option) (core.Store, error) {
	return initStore(dir, applyOptions(opts))
}

func initStore(dir string, o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	slot, _ := o.config["slot"].(string)
	readOnly, _ := o.config["read_only"].(bool)

	switch o.backend {
	case BackendFS:
		return initFS(dir, slot, readOnly, o)
	case BackendBolt:
		repo, err := bolt.Open(bolt.Config{
			Path:     filepath.Join(dir, BoltFile),
			Slot:     slot,
			ReadOnly: readOnly,
			Logger:   o.logger,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	case BackendSQLite:
		repo, err := sqlite.Open(sqlite.Config{
			Path:     filepath.Join(dir, SQLiteFile),
			Slot:     slot,
			ReadOnly: readOnly,
			Logger:   o.logger,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, o.backend)
	}
}

// initFS handles the initialization logic for the filesystem backend.
func initFS(dir, slot string, readOnly bool, o *options) (core.Store, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	debounce, _ := o.config["debounce"].(time.Duration)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	repo := fs.NewRepository(fs.Config{
		Path:         dir,
		Slot:         slot,
		AutoInit:     autoInit,
		MustExist:    mustExist,
		ReadOnly:     readOnly,
		Logger:       o.logger,
		Debounce:     debounce,
		ErrorHandler: errorHandler,
	})
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	if o.logger != nil {
		o.logger.Debug("fs store ready", "file", repo.File(), "read_only", readOnly)
	}
	return repo, nil
}
