package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/tui"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse and edit the lists interactively",
		Long: `Open a full-screen view of both lists.

Keys: j/k move, d or enter marks done, x removes, a adds,
c clears the done list, ? shows all keys, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			return tui.Run(store, a.displayOptions())
		},
	}
}
