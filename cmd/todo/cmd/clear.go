package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/todo"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "clear <todo|done>",
		Short:     "Empty one of the lists",
		Long:      "Remove every item from the todo list or the done list. The other list is left alone.",
		Args:      cobra.ArbitraryArgs,
		ValidArgs: todo.ListNames(),
		RunE:      a.runClear,
	}
}

func (a *app) runClear(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.MissingArgument("clear", "list")
	}
	name, err := todo.ParseListName(args[0])
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	if err := store.Clear(name); err != nil {
		return err
	}
	return a.printLists(cmd)
}
