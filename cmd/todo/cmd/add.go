package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/errors"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add an item to the todo list",
		Long: `Add an item to the end of the todo list.

All arguments are joined with spaces, so quoting is optional.

Examples:
  todo add buy milk
  todo add "call mom"`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runAdd,
	}
}

func (a *app) runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.MissingArgument("add", "text")
	}
	text := strings.Join(args, " ")

	store, err := a.openStore()
	if err != nil {
		return err
	}
	if err := store.Add(text); err != nil {
		return err
	}
	return a.printLists(cmd)
}
