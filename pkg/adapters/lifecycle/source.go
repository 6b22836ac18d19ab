// Package lifecycle exposes store change feeds as lifecycle sources.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("source already started")

type storeSource struct {
	store core.Watchable
	out   chan lifecycle.Event

	started   sync.Once
	closeOnce sync.Once
}

// NewSource creates a lifecycle.Source that emits a core.Event every time
// the store's slot changes. The feed starts on Start and ends with ctx.
func NewSource(store core.Watchable) lifecycle.Source {
	return &storeSource{
		store: store,
		out:   make(chan lifecycle.Event),
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start opens the watch and begins forwarding events. A source runs once:
// later calls return ErrAlreadyStarted, including after a failed Start.
func (s *storeSource) Start(ctx context.Context) error {
	first := false
	s.started.Do(func() { first = true })
	if !first {
		return ErrAlreadyStarted
	}

	events, err := s.store.Watch(ctx)
	if err != nil {
		s.close()
		return fmt.Errorf("failed to watch store: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer s.close()
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				// core.Event satisfies lifecycle.Event through String.
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (s *storeSource) close() {
	s.closeOnce.Do(func() { close(s.out) })
}
