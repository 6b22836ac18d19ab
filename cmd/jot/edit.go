package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's title or content",
	Long: `Edit opens an edit session on the note, applies --title and --content, and saves.
If the note was deleted by another session meanwhile, the edit is discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		coll, err := openCollection(cmd.Context())
		if err != nil {
			return err
		}
		defer coll.Close()

		note, ok := coll.Get(id)
		if !ok {
			return fmt.Errorf("note %d not found", id)
		}

		session := coll.Editor()
		session.Start(note)
		if cmd.Flags().Changed("title") {
			session.SetTitle(editTitle)
		}
		if cmd.Flags().Changed("content") {
			session.SetContent(editContent)
		}

		saved, err := session.Save(cmd.Context())
		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", saved.ID)
			return nil
		case errors.Is(err, core.ErrValidation):
			session.Cancel()
			return fmt.Errorf("empty note: %w", err)
		case errors.Is(err, core.ErrConflict):
			return fmt.Errorf("note %d was deleted in another session; notes reloaded", id)
		default:
			return fmt.Errorf("failed to save note: %w", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
}
