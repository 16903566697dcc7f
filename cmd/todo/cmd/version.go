package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/version"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for todo.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Current(Version, Commit, Date)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			cmd.Println(info.FullString())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
