package core

import (
	"github.com/aretw0/introspection"
)

// CollectionState exposes internal state for observability.
type CollectionState struct {
	Phase       string `json:"phase"`
	Notes       int    `json:"notes"`
	Editing     bool   `json:"editing"`
	EditTarget  int64  `json:"edit_target,omitempty"`
	Subscribers int    `json:"subscribers"`
	StoreType   string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (c *Collection) State() any {
	c.mu.RLock()
	phase, count := c.phase, len(c.notes)
	c.mu.RUnlock()

	c.subMu.Lock()
	subs := len(c.subscribers)
	c.subMu.Unlock()

	storeType := "store"
	if comp, ok := c.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	target, editing := c.editor.Target()
	return CollectionState{
		Phase:       phase.String(),
		Notes:       count,
		Editing:     editing,
		EditTarget:  target,
		Subscribers: subs,
		StoreType:   storeType,
	}
}

// ComponentType implements introspection.Component.
func (c *Collection) ComponentType() string {
	return "collection"
}

var _ introspection.Introspectable = (*Collection)(nil)
var _ introspection.Component = (*Collection)(nil)
