package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump [section]",
	Short: "Prints the normalized content",
	Long: `The dump command prints the normalized form of one section (bio, research,
publications, projects, teaching, seminars, experience) or, without an
argument, of the whole portfolio. Missing fields appear with their defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		var v interface{}
		if len(args) == 0 {
			v = store.LoadAll(cmd.Context())
		} else {
			d, err := content.ParseDomain(args[0])
			if err != nil {
				return err
			}
			if v, err = store.Section(cmd.Context(), d); err != nil {
				return err
			}
		}
		return encode(cmd.OutOrStdout(), dumpFormat, v)
	},
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml", "yml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(dumpCmd)
}
