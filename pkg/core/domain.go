package core

import (
	"fmt"
	"time"
)

// EventType represents the type of change observed in a store.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the durable slot, made by this session or any other.
type Event struct {
	Type      EventType
	Slot      string
	Timestamp int64 // Unix timestamp
}

// String makes Event printable in logs and lifecycle sinks.
func (e Event) String() string {
	return fmt.Sprintf("%s %s @ %s", e.Type, e.Slot, time.Unix(e.Timestamp, 0).Format(time.RFC3339))
}

// Phase is the lifecycle phase of a Collection.
// Writes to the store are only permitted once PhaseLoaded is reached.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	default:
		return "uninitialized"
	}
}
