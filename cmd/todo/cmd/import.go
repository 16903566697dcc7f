package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/todo"
)

type importOptions struct {
	format         string
	includeChecked bool
}

func newImportCmd(a *app) *cobra.Command {
	opts := &importOptions{}
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Add items from a markdown checklist or a plain list",
		Long: `Add every item found in a file to the todo list, in order.

Markdown checklists ("- [ ] item") and plain lists, one item per line,
optionally numbered or bulleted, are understood. Checked items ("- [x]")
are skipped unless --include-checked is set. Use - to read stdin.

Examples:
  todo import TODO.md
  pbpaste | todo import -`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "auto", "input format: auto, markdown or plaintext")
	cmd.Flags().BoolVar(&opts.includeChecked, "include-checked", false, "also import checked markdown items")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, args []string, opts *importOptions) error {
	if len(args) == 0 {
		return errors.MissingArgument("import", "file")
	}

	var format todo.ImportFormat
	switch opts.format {
	case "auto", "":
	case string(todo.FormatMarkdown), string(todo.FormatPlainText):
		format = todo.ImportFormat(opts.format)
	default:
		return errors.UnsupportedFormat(opts.format, []string{"auto", string(todo.FormatMarkdown), string(todo.FormatPlainText)})
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, errors.ErrValidation, "cannot open import file").
				WithDetails("path", args[0])
		}
		defer f.Close()
		r = f
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}

	importer := todo.NewImporter()
	importer.IncludeChecked = opts.includeChecked

	var result *todo.ImportResult
	if format == "" {
		result, err = importer.ImportToStore(store, r)
	} else {
		result, err = importFormat(importer, store, r, format)
	}
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	logging.Info("items imported", "count", len(result.Texts), "source", args[0])

	return a.printLists(cmd)
}

func importFormat(importer *todo.Importer, store *todo.Store, r io.Reader, format todo.ImportFormat) (*todo.ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	result, err := importer.ImportFromString(string(data), format)
	if err != nil {
		return result, err
	}
	if _, err := store.AddAll(result.Texts); err != nil {
		return result, err
	}
	return result, nil
}
