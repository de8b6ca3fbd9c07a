package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches the bio, research topics and publications",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := openStore().Search(cmd.Context(), strings.Join(args, " "))
		printSearch(cmd.OutOrStdout(), res)
		return nil
	},
}

func printSearch(w io.Writer, res model.SearchResult) {
	if res.Empty() {
		fmt.Fprintf(w, "no matches for %q\n", res.Query)
		return
	}
	if res.Bio {
		fmt.Fprintln(w, "bio: matched")
	}
	for _, r := range res.Research {
		fmt.Fprintf(w, "research: %s\n", r.Title)
	}
	for _, p := range res.Publications {
		line := p.Title
		if p.Venue != "" {
			line += " (" + p.Venue
			if p.Year != "" {
				line += ", " + p.Year
			}
			line += ")"
		}
		fmt.Fprintf(w, "publication: %s\n", line)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
