package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

var errInvalidContent = errors.New("content check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the content files",
	Long: `The check command parses every markdown file in the content directory,
reports which section files are missing, and lists the data issues found while
normalizing each section. It exits non-zero when a file cannot be parsed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		return runCheck(cmd.OutOrStdout(), store, store.LoadAll(cmd.Context()))
	},
}

func runCheck(w io.Writer, store *content.Store, portfolio model.Portfolio) error {
	st := store.Stats()
	fmt.Fprintf(w, "%d files, %d valid, %d invalid\n", st.Total, st.Valid, len(st.Invalid))
	fmt.Fprintf(w, "records: %d research, %d publications, %d projects, %d courses, %d seminars, %d experience\n",
		len(portfolio.Research.Items),
		len(portfolio.Publications.Publications),
		len(portfolio.Projects.Projects),
		len(portfolio.Teaching.Courses),
		len(portfolio.Seminars.All()),
		len(portfolio.Experience.Education)+len(portfolio.Experience.Work))

	for _, d := range content.Domains {
		if !store.Exists(d.File()) {
			fmt.Fprintf(w, "missing  %s (defaults used)\n", d.File())
		}
	}
	for _, name := range st.Invalid {
		fmt.Fprintf(w, "invalid  %s: %v\n", name, store.Validate(name))
	}
	for _, is := range portfolio.Issues() {
		if is.Index >= 0 {
			fmt.Fprintf(w, "issue    %s[%d].%s: %s\n", is.Domain, is.Index, is.Field, is.Message)
		} else {
			fmt.Fprintf(w, "issue    %s.%s: %s\n", is.Domain, is.Field, is.Message)
		}
	}

	if len(st.Invalid) > 0 {
		return fmt.Errorf("%w: %d invalid file(s)", errInvalidContent, len(st.Invalid))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
