// Package jot is the Composition Root of a small personal notes store.
//
// It connects the notes domain (pkg/core) with the storage adapters
// (pkg/adapters/...) using the Hexagonal Architecture pattern.
//
// A collection is a newest-first list of short titled notes kept in a single
// durable slot: a JSON file by default, or one key of a bbolt or SQLite
// database. Every successful mutation is written through to the slot. Several
// sessions may share the slot without coordination; edits detect notes that
// were deleted elsewhere and resync instead of resurrecting them.
//
// Usage:
//
//	coll, err := jot.Open(ctx, "./.jot", jot.WithAutoInit(true))
//	if err != nil {
//		return err
//	}
//	defer coll.Close()
//
//	note, err := coll.Add(ctx, "Milk", "2%")
//	found := coll.Query("mil")
package jot
