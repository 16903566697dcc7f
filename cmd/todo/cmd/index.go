package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/errors"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Delete a todo item",
		Long: `Delete the todo item with the given number.

Items after it move up one position.

Example:
  todo rm 2`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runRemove,
	}
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Move a todo item to the done list",
		Long: `Move the todo item with the given number to the end of the done list.
The item keeps its original creation time.

Example:
  todo done 0`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runDone,
	}
}

func (a *app) runRemove(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(cmd, args)
	if err != nil {
		return err
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	if err := store.Remove(index); err != nil {
		return err
	}
	return a.printLists(cmd)
}

func (a *app) runDone(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(cmd, args)
	if err != nil {
		return err
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	if err := store.MarkDone(index); err != nil {
		return err
	}
	return a.printLists(cmd)
}

// parseIndex reads the item number from the first argument.
func parseIndex(cmd *cobra.Command, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.MissingArgument(cmd.Name(), "index")
	}
	index, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, errors.InvalidIndexArgument(args[0])
	}
	return index, nil
}
