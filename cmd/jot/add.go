package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var (
	addTitle   string
	addContent string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long:  `Add creates a note at the top of the list. Title and content are trimmed; the title is required.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coll, err := openCollection(cmd.Context())
		if err != nil {
			return err
		}
		defer coll.Close()

		note, err := coll.Add(cmd.Context(), addTitle, addContent)
		if errors.Is(err, core.ErrValidation) {
			return fmt.Errorf("title cannot be empty")
		}
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note added: %d\n", note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content")
}
