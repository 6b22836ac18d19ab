package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/jot"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to add per backend")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	verbose := flag.Bool("verbose", false, "Log store activity")
	flag.Parse()

	if *count <= 0 {
		fmt.Fprintln(os.Stderr, "-count must be greater than zero")
		os.Exit(2)
	}

	benchDir, err := os.MkdirTemp("", "jot_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	var out io.Writer = io.Discard
	if *verbose {
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()
	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	for _, backend := range []string{jot.BackendFS, jot.BackendBolt, jot.BackendSQLite} {
		add, load, err := run(ctx, benchDir, backend, *count, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", backend, err)
			os.Exit(1)
		}
		fmt.Printf("  %-7s add: %-14v (%v/note)  load: %v\n",
			backend, add, perNote(add, *count), load)
	}
	fmt.Printf("--------------------------------------------------\n")
}

// perNote averages d over count operations; zero when nothing ran.
func perNote(d time.Duration, count int) time.Duration {
	if count <= 0 {
		return 0
	}
	return d / time.Duration(count)
}

// run adds count notes one by one (every add rewrites the whole slot), then
// times a cold load from a fresh collection.
func run(ctx context.Context, dir, backend string, count int, logger *slog.Logger) (time.Duration, time.Duration, error) {
	opts := []jot.Option{
		jot.WithBackend(backend),
		jot.WithSlot("bench_" + backend),
		jot.WithAutoInit(true),
		jot.WithLogger(logger),
	}

	coll, err := jot.Open(ctx, dir, opts...)
	if err != nil {
		return 0, 0, err
	}

	start := time.Now()
	for i := 0; i < count; i++ {
		if _, err := coll.Add(ctx, fmt.Sprintf("Note %d", i), "This is a benchmark note."); err != nil {
			coll.Close()
			return 0, 0, err
		}
	}
	addDuration := time.Since(start)
	if err := coll.Close(); err != nil {
		return 0, 0, err
	}

	start = time.Now()
	cold, err := jot.Open(ctx, dir, opts...)
	if err != nil {
		return 0, 0, err
	}
	defer cold.Close()
	loadDuration := time.Since(start)

	if cold.Len() != count {
		return 0, 0, fmt.Errorf("loaded %d notes, want %d", cold.Len(), count)
	}
	return addDuration, loadDuration, nil
}
