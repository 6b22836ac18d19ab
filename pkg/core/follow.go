package core

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"
)

// Follow resyncs the collection every time the store reports a change to the
// slot, until ctx is cancelled. It is how a session picks up writes made by
// other sessions sharing the same store.
func (c *Collection) Follow(ctx context.Context) error {
	w, ok := c.store.(Watchable)
	if !ok {
		return ErrNotWatchable
	}
	events, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch store: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				if c.logger != nil {
					c.logger.Debug("store changed", "event", e.String())
				}
				if err := c.Resync(ctx); err != nil {
					return err
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if c.logger != nil {
			c.logger.Error("follow stopped", "error", err)
		}
	}))
	return nil
}
