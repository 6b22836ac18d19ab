package core

import "errors"

// Common errors.
var (
	// ErrValidation is returned when a title/content pair cannot be stored.
	ErrValidation = errors.New("invalid note")

	// ErrConflict is returned by Update when the target note no longer exists
	// in durable storage (for example it was deleted by another session).
	ErrConflict = errors.New("note was changed by another session")

	// ErrStorageRead wraps I/O faults while reading the durable slot.
	ErrStorageRead = errors.New("failed to read notes from storage")

	// ErrNotLoaded guards writes issued before the initial load completed.
	ErrNotLoaded = errors.New("collection has not been loaded yet")

	ErrReadOnly    = errors.New("store is in read-only mode")
	ErrUnconfirmed = errors.New("delete requires a confirmation step")
	ErrNotEditing  = errors.New("no edit in progress")

	// ErrNotWatchable is returned by Follow when the store cannot report changes.
	ErrNotWatchable = errors.New("store does not support watching")
)
