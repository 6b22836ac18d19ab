package core

import (
	"sync"
	"time"
)

// Clock returns the current time. It is swapped in tests.
type Clock func() time.Time

// idSource hands out millisecond-based ids that are strictly increasing, even
// when several notes are created within the same millisecond.
type idSource struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

func newIDSource(clock Clock) *idSource {
	if clock == nil {
		clock = time.Now
	}
	return &idSource{clock: clock}
}

// next returns an id greater than both the last issued id and every id in existing.
func (s *idSource) next(existing []Note) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.clock().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	for _, n := range existing {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	s.last = id
	return id
}
