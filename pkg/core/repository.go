package core

import "context"

// DefaultSlot is the name of the durable slot that holds the collection.
const DefaultSlot = "notes"

// Store defines the contract for persisting the whole notes collection as a
// single serialized blob. It is the only I/O boundary of the domain.
type Store interface {
	// Load reads the collection. An absent or malformed slot yields an empty
	// collection and a nil error; only genuine I/O faults are returned.
	Load(ctx context.Context) ([]Note, error)

	// Save overwrites the slot unconditionally. There is no locking between
	// sessions: the last write wins.
	Save(ctx context.Context, notes []Note) error
}

// Watchable defines stores that can report changes made to the slot by any session.
type Watchable interface {
	// Watch emits an event whenever the slot changes. The channel is closed
	// when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
