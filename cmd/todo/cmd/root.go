// Package cmd provides the CLI commands for todo.
package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/config"
	"github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/render"
	"github.com/wexinc/todo/internal/todo"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app carries the state of one invocation: flags, the loaded configuration
// and the store, which is opened on first use.
type app struct {
	configPath string
	storePath  string
	verbose    bool

	cfg   *config.Config
	store *todo.Store
}

// NewRootCmd builds the command tree for one invocation.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A personal todo list in a JSON file",
		Long: `todo keeps two lists, todo and done, in a single JSON file
(~/.todo.json unless TODO_JSON_DB_PATH or --file says otherwise).

Items are addressed by the number shown next to them by 'todo ls'.
Numbers shift when earlier items are removed or completed, so always
use the numbers from the latest listing.`,
		Example: `  todo add buy milk
  todo ls
  todo done 0
  todo clear done`,
		// Unknown words print usage instead of failing.
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Usage()
			}
			return a.runList(cmd, args)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/todo/config.yaml)")
	root.PersistentFlags().StringVarP(&a.storePath, "file", "f", "", "todo file (default ~/.todo.json)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, "invalid flag")
	})

	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("todo {{.Version}}\n")

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newDoneCmd(a),
		newClearCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newUICmd(a),
		newVersionCmd(),
		newConfigCmd(a),
	)

	return root
}

// setup loads configuration and starts logging. It runs before every command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return configError(err)
	}
	a.cfg = cfg

	lc, err := cfg.LoggingConfig(a.verbose)
	if err != nil {
		return errors.ConfigValidationError("log.level", err.Error(), nil)
	}
	if lc.LogDir != "" {
		if lc.LogDir, err = homedir.Expand(lc.LogDir); err != nil {
			return errors.Wrap(err, errors.ErrConfig, "invalid log.dir")
		}
	}
	lc.ConsoleWriter = cmd.ErrOrStderr()
	if err := logging.InitGlobal(lc); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to start logging")
	}

	logging.Debug("command started", "command", cmd.Name(), "args", args)
	return nil
}

// configError maps a config.Load failure to a TodoError with a suggestion.
func configError(err error) error {
	var ves config.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return errors.ConfigValidationError(ves[0].Field, ves.Error(), nil)
	}

	var le *config.LoadError
	if !errors.As(err, &le) {
		return errors.Wrap(err, errors.ErrConfig, "failed to load configuration")
	}
	if errors.Is(le.Err, fs.ErrNotExist) {
		return errors.Wrap(le.Err, errors.ErrConfig, le.Message).
			WithDetails("path", le.Path)
	}
	return errors.ConfigParseError(le.Path, le.Err)
}

// openStore opens the store for this invocation, once.
func (a *app) openStore() (*todo.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	path, err := a.cfg.StorePath(a.storePath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "cannot resolve the todo file path")
	}

	opts := []todo.Option{todo.WithLogger(logging.Global().With("store", path))}
	if a.cfg.Store.Lock {
		opts = append(opts, todo.WithLock(a.cfg.Store.LockTimeout))
	}

	store, err := todo.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

// close releases the store lock and the log file.
func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Warn("failed to release store", "error", err)
		}
		a.store = nil
	}
	_ = logging.CloseGlobal()
}

func (a *app) displayOptions() render.Options {
	if a.cfg == nil {
		return render.Options{}
	}
	return render.Options{
		DateFormat: a.cfg.Display.DateFormat,
		Relative:   a.cfg.Display.Relative,
	}
}

// printLists writes both lists to the command's output.
func (a *app) printLists(cmd *cobra.Command) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	todoEntries, err := store.Todo()
	if err != nil {
		return err
	}
	doneEntries, err := store.Done()
	if err != nil {
		return err
	}
	return render.NewPrinter(cmd.OutOrStdout(), a.displayOptions()).Lists(todoEntries, doneEntries)
}

// Execute runs the CLI with os.Args and returns the process exit code.
// This is called by main.main().
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	logging.Debug("command failed", "error", err)
	fmt.Fprint(stderr, errors.FormatError(err))
	if errors.Is(err, errors.ErrUsage) && cmd != nil {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}
