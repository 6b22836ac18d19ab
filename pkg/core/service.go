package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// ConfirmFunc is the caller-owned confirmation gate for destructive actions.
// It returns true only when the user affirmatively confirmed.
type ConfirmFunc func(ctx context.Context, note Note) bool

// CollectionOption configures a Collection.
type CollectionOption func(*Collection)

// WithCollectionLogger sets the logger used by the collection.
func WithCollectionLogger(logger *slog.Logger) CollectionOption {
	return func(c *Collection) {
		c.logger = logger
	}
}

// WithClock overrides the clock used to mint note ids.
func WithClock(clock Clock) CollectionOption {
	return func(c *Collection) {
		c.ids = newIDSource(clock)
	}
}

// Collection owns the in-memory, newest-first list of notes and keeps it
// reconciled with a Store after every successful mutation.
type Collection struct {
	store  Store
	logger *slog.Logger
	ids    *idSource

	mu    sync.RWMutex
	notes []Note
	phase Phase

	subMu       sync.Mutex
	subscribers map[int]func([]Note)
	nextSub     int

	editor *EditSession
}

// NewCollection creates a Collection backed by store.
// It starts uninitialized: call Load before mutating it.
func NewCollection(store Store, opts ...CollectionOption) *Collection {
	c := &Collection{
		store:       store,
		ids:         newIDSource(nil),
		notes:       []Note{},
		subscribers: make(map[int]func([]Note)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.editor = &EditSession{coll: c}
	return c
}

// Load reads the durable slot and moves the collection to PhaseLoaded.
// Read faults are logged and replaced by an empty view, but the collection
// then stays out of PhaseLoaded: writes return ErrNotLoaded until a later
// Load or Resync reads the slot successfully, so the empty view can never
// overwrite durable notes.
func (c *Collection) Load(ctx context.Context) error {
	c.mu.Lock()
	c.reload(ctx)
	c.mu.Unlock()

	c.notify()
	return nil
}

// Resync discards in-memory state and reloads it from the store.
func (c *Collection) Resync(ctx context.Context) error {
	if c.logger != nil {
		c.logger.Debug("resyncing collection from store")
	}
	return c.Load(ctx)
}

// reload must be called with c.mu held.
func (c *Collection) reload(ctx context.Context) {
	notes, err := c.store.Load(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("falling back to an empty read-only view", "error", err)
		}
		c.notes = []Note{}
		c.phase = PhaseUninitialized
		return
	}
	if notes == nil {
		notes = []Note{}
	}
	c.notes = notes
	c.phase = PhaseLoaded
}

// Add creates a note from trimmed title and content and prepends it.
func (c *Collection) Add(ctx context.Context, title, content string) (Note, error) {
	title, content = normalize(title, content)
	if title == "" {
		return Note{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	c.mu.Lock()
	if c.phase != PhaseLoaded {
		c.mu.Unlock()
		return Note{}, ErrNotLoaded
	}

	note := Note{ID: c.ids.next(c.notes), Title: title, Content: content}
	next := make([]Note, 0, len(c.notes)+1)
	next = append(next, note)
	next = append(next, c.notes...)

	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return Note{}, err
	}
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("note added", "id", note.ID)
	}
	c.notify()
	return note, nil
}

// Delete removes the note with id once confirm approves it.
// It reports whether a note was removed. A missing id is a no-op.
func (c *Collection) Delete(ctx context.Context, id int64, confirm ConfirmFunc) (bool, error) {
	if confirm == nil {
		return false, ErrUnconfirmed
	}

	note, ok := c.Get(id)
	if !ok {
		return false, nil
	}
	if !confirm(ctx, note) {
		return false, nil
	}

	c.mu.Lock()
	if c.phase != PhaseLoaded {
		c.mu.Unlock()
		return false, ErrNotLoaded
	}
	idx := indexOf(c.notes, id)
	if idx < 0 {
		c.mu.Unlock()
		return false, nil
	}

	next := make([]Note, 0, len(c.notes)-1)
	next = append(next, c.notes[:idx]...)
	next = append(next, c.notes[idx+1:]...)

	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return false, err
	}
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("note deleted", "id", id)
	}
	c.notify()
	return true, nil
}

// Update replaces the title and content of note id in place.
//
// Before committing, the store is re-read: if the note no longer exists there
// the collection is resynced from the store and ErrConflict is returned.
func (c *Collection) Update(ctx context.Context, id int64, title, content string) (Note, error) {
	title, content = normalize(title, content)
	if title == "" && content == "" {
		return Note{}, fmt.Errorf("%w: title and content cannot both be empty", ErrValidation)
	}
	if title == "" {
		return Note{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	c.mu.Lock()
	if c.phase != PhaseLoaded {
		c.mu.Unlock()
		return Note{}, ErrNotLoaded
	}

	durable, err := c.store.Load(ctx)
	if err != nil {
		c.mu.Unlock()
		return Note{}, fmt.Errorf("checking note %d: %w", id, err)
	}

	idx := indexOf(c.notes, id)
	if indexOf(durable, id) < 0 || idx < 0 {
		if c.logger != nil {
			c.logger.Warn("edit target missing from store, resyncing", "id", id)
		}
		c.reload(ctx)
		c.mu.Unlock()
		c.notify()
		return Note{}, fmt.Errorf("%w: note %d no longer exists", ErrConflict, id)
	}

	next := cloneNotes(c.notes)
	next[idx].Title = title
	next[idx].Content = content
	updated := next[idx]

	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return Note{}, err
	}
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("note updated", "id", id)
	}
	c.notify()
	return updated, nil
}

// commit persists next and, only on success, makes it the in-memory state.
// It must be called with c.mu held.
func (c *Collection) commit(ctx context.Context, next []Note) error {
	if c.phase != PhaseLoaded {
		return ErrNotLoaded
	}
	if err := c.store.Save(ctx, next); err != nil {
		if c.logger != nil {
			c.logger.Error("failed to save notes", "error", err)
		}
		return fmt.Errorf("failed to save notes: %w", err)
	}
	c.notes = next
	return nil
}

// Query returns the notes whose title matches search.
func (c *Collection) Query(search string) []Note {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Filter(c.notes, search)
}

// Snapshot returns a copy of the current notes, newest first.
func (c *Collection) Snapshot() []Note {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneNotes(c.notes)
}

// Get returns the note with id from memory.
func (c *Collection) Get(id int64) (Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx := indexOf(c.notes, id); idx >= 0 {
		return c.notes[idx], true
	}
	return Note{}, false
}

// Len returns the number of notes in memory.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.notes)
}

// Phase reports whether the initial load has happened.
func (c *Collection) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Editor returns the collection's single edit session.
func (c *Collection) Editor() *EditSession {
	return c.editor
}

// Subscribe registers fn to receive a snapshot after every successful
// mutation or reload. The returned function unregisters it.
func (c *Collection) Subscribe(fn func([]Note)) (unsubscribe func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subscribers, id)
	}
}

func (c *Collection) notify() {
	c.subMu.Lock()
	fns := make([]func([]Note), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(c.Snapshot())
	}
}

// Close releases the underlying store when it holds resources (database files).
func (c *Collection) Close() error {
	if closer, ok := c.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// IsConflict reports whether err means the caller must drop its edit because
// the note was removed elsewhere.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
