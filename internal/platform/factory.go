package platform

import (
	"context"
	"errors"

	"github.com/aretw0/jot/pkg/core"
)

// ErrUnknownBackend is returned when the configured backend name is not supported.
var ErrUnknownBackend = errors.New("unknown backend")

// New builds the store for dir, wraps it in a Collection and performs the
// initial load, so the returned collection is ready for writes.
func New(ctx context.Context, dir string, opts ...Option) (*core.Collection, error) {
	o := applyOptions(opts)

	store, err := initStore(dir, o)
	if err != nil {
		return nil, err
	}

	var collOpts []core.CollectionOption
	if o.logger != nil {
		collOpts = append(collOpts, core.WithCollectionLogger(o.logger))
	}
	if o.clock != nil {
		collOpts = append(collOpts, core.WithClock(o.clock))
	}

	coll := core.NewCollection(store, collOpts...)
	if err := coll.Load(ctx); err != nil {
		_ = coll.Close()
		return nil, err
	}
	return coll, nil
}
