package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the todo and done lists",
		Long: `Show both lists with the number of each item and when it was added.

This is also what 'todo' does with no command.`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	return a.printLists(cmd)
}
