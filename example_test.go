package jot_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

// Example_basic opens a collection in a temporary directory, adds two notes
// and searches them.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "jot-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()
	coll, err := jot.Open(ctx, tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer coll.Close()

	if _, err := coll.Add(ctx, "Milk", "2%"); err != nil {
		log.Fatal(err)
	}
	if _, err := coll.Add(ctx, "Eggs", ""); err != nil {
		log.Fatal(err)
	}

	for _, n := range coll.Snapshot() {
		fmt.Printf("%s: %q\n", n.Title, n.Content)
	}
	for _, n := range coll.Query("mil") {
		fmt.Println("found:", n.Title)
	}

	// Output:
	// Eggs: ""
	// Milk: "2%"
	// found: Milk
}

// Example_conflict shows an edit losing to a delete made by another session
// sharing the same store.
func Example_conflict() {
	ctx := context.Background()
	shared := memory.New(nil)

	tab1, _ := jot.Open(ctx, "", jot.WithStore(shared))
	note, _ := tab1.Add(ctx, "Draft", "")

	tab2, _ := jot.Open(ctx, "", jot.WithStore(shared))
	_, _ = tab2.Delete(ctx, note.ID, func(context.Context, core.Note) bool { return true })

	edit := tab1.Editor()
	edit.Start(note)
	edit.SetTitle("Final")
	_, err := edit.Save(ctx)

	fmt.Println(errors.Is(err, core.ErrConflict))
	fmt.Println(edit.State(), tab1.Len())

	// Output:
	// true
	// idle 0
}
