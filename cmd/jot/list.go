package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/jot/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Long:  `List prints every note, or only those whose title contains --search (case-insensitive).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coll, err := openCollection(cmd.Context())
		if err != nil {
			return err
		}
		defer coll.Close()

		notes := coll.Query(listSearch)
		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(notes)
		}
		return printNotes(cmd.OutOrStdout(), notes)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show notes whose title contains this text")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func printNotes(out io.Writer, notes []core.Note) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(out, "No notes.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCONTENT")
	for _, n := range notes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", n.ID, n.Title, firstLine(n.Content))
	}
	return tw.Flush()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
