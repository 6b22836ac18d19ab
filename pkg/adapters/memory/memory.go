// Package memory provides an in-process notes slot. Several collections can
// share one Store to behave like sessions over the same durable storage.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// Store implements core.Store and core.Watchable in memory.
type Store struct {
	mu       sync.Mutex
	data     []byte
	watchers []chan core.Event
}

// New returns a Store whose slot holds raw, which may be nil or malformed.
func New(raw []byte) *Store {
	return &Store{data: append([]byte(nil), raw...)}
}

// Load decodes the slot. Malformed content yields an empty collection.
func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes, err := core.Decode(s.data)
	if err != nil {
		return []core.Note{}, nil
	}
	return notes, nil
}

// Save overwrites the slot and notifies watchers without blocking.
func (s *Store) Save(ctx context.Context, notes []core.Note) error {
	data, err := core.Encode(notes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data

	e := core.Event{Type: core.EventModify, Slot: core.DefaultSlot, Timestamp: time.Now().Unix()}
	for _, ch := range s.watchers {
		select {
		case ch <- e:
		default:
		}
	}
	return nil
}

// Bytes returns a copy of the raw slot.
func (s *Store) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

// Watch implements core.Watchable.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	ch := make(chan core.Event, 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
