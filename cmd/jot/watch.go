package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the notes again whenever they change",
	Long:  `Watch follows the store and reprints the list after every change made by any session, until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		coll, err := openCollection(ctx)
		if err != nil {
			return err
		}
		defer coll.Close()

		out := cmd.OutOrStdout()
		if err := printNotes(out, coll.Snapshot()); err != nil {
			return err
		}

		unsubscribe := coll.Subscribe(func(notes []core.Note) {
			fmt.Fprintf(out, "\n--- %d notes ---\n", len(notes))
			_ = printNotes(out, notes)
		})
		defer unsubscribe()

		if err := coll.Follow(ctx); err != nil {
			if errors.Is(err, core.ErrNotWatchable) {
				return fmt.Errorf("the %q backend cannot be watched", backendName())
			}
			return err
		}

		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func backendName() string {
	if backend != "" {
		return backend
	}
	if _, cfg, err := resolve(); err == nil && cfg.Backend != "" {
		return cfg.Backend
	}
	return "fs"
}
