package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/todo"
)

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write both lists to stdout as JSON, YAML or TOML",
		Long: `Write the whole document to stdout.

The JSON form has the same layout as the todo file itself.

Examples:
  todo export > backup.json
  todo export --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := todo.ParseExportFormat(format)
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			doc, err := store.Snapshot()
			if err != nil {
				return err
			}
			return todo.Export(cmd.OutOrStdout(), doc, f)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(todo.ExportJSON), "output format: json, yaml or toml")
	return cmd
}
