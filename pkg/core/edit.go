package core

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// EditState is the state of an EditSession.
type EditState int

const (
	EditIdle EditState = iota
	Editing
)

func (s EditState) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// EditSession holds the draft of the note currently being edited.
// Drafts may be invalid while typing; they are only validated on Save.
type EditSession struct {
	coll *Collection

	mu           sync.Mutex
	state        EditState
	target       int64
	draftTitle   string
	draftContent string
}

// Start begins editing note, seeding the drafts from its current values.
// An edit already in progress is discarded.
func (e *EditSession) Start(note Note) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Editing && e.coll.logger != nil {
		e.coll.logger.Debug("discarding previous edit", "id", e.target)
	}
	e.state = Editing
	e.target = note.ID
	e.draftTitle = note.Title
	e.draftContent = note.Content
}

// SetTitle replaces the draft title, dropping leading whitespace only.
func (e *EditSession) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Editing {
		e.draftTitle = strings.TrimLeftFunc(title, isTrimmable)
	}
}

// SetContent replaces the draft content, dropping leading whitespace only.
func (e *EditSession) SetContent(content string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Editing {
		e.draftContent = strings.TrimLeftFunc(content, isTrimmable)
	}
}

// Cancel discards the drafts without touching the collection.
func (e *EditSession) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// Save commits the drafts through Collection.Update.
//
// On ErrValidation, or a failed write, the session keeps editing so the
// drafts can be fixed. On ErrConflict the drafts are dropped; the collection
// has already been resynced from the store.
func (e *EditSession) Save(ctx context.Context) (Note, error) {
	e.mu.Lock()
	if e.state != Editing {
		e.mu.Unlock()
		return Note{}, ErrNotEditing
	}
	target, title, content := e.target, e.draftTitle, e.draftContent
	e.mu.Unlock()

	// The lock is released so subscribers notified by Update may read the session.
	note, err := e.coll.Update(ctx, target, title, content)
	if err != nil && !errors.Is(err, ErrConflict) {
		return Note{}, err
	}

	e.mu.Lock()
	if e.state == Editing && e.target == target {
		e.reset()
	}
	e.mu.Unlock()
	return note, err
}

// State reports whether an edit is in progress.
func (e *EditSession) State() EditState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Target returns the id of the note being edited.
func (e *EditSession) Target() (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target, e.state == Editing
}

// Drafts returns the current draft title and content.
func (e *EditSession) Drafts() (title, content string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draftTitle, e.draftContent
}

func (e *EditSession) reset() {
	e.state = EditIdle
	e.target = 0
	e.draftTitle = ""
	e.draftContent = ""
}
