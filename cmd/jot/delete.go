package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note after asking for confirmation (skip it with --yes).`,
	Args:  cobra.ExactArgs(1),
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

		if _, ok := coll.Get(id); !ok {
			return fmt.Errorf("note %d not found", id)
		}

		confirm := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
		if deleteYes {
			confirm = func(context.Context, core.Note) bool { return true }
		}

		deleted, err := coll.Delete(cmd.Context(), id, confirm)
		if err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		if !deleted {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
}

// promptConfirm asks on out and accepts only an explicit yes from in.
func promptConfirm(in io.Reader, out io.Writer) core.ConfirmFunc {
	return func(ctx context.Context, note core.Note) bool {
		fmt.Fprintf(out, "Delete note %d (%q)? This cannot be undone. [y/N]: ", note.ID, note.Title)
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}
