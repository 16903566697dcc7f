package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wexinc/todo/internal/config"
	"github.com/wexinc/todo/internal/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default configuration to --config, or to
~/.config/todo/config.yaml when no path is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithSuggestion(errors.ErrConfig,
					fmt.Sprintf("config file already exists: %s", path),
					"Use --force to overwrite it")
			}
			if err := config.Save(config.NewConfig(), path); err != nil {
				return errors.Wrap(err, errors.ErrConfig, "failed to write config file")
			}
			cmd.Printf("Wrote %s\n", path)
			return nil
		},
	}
	// init must work while the config file is missing or broken.
	initCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.cfg.StorePath(a.storePath)
			if err != nil {
				return errors.Wrap(err, errors.ErrConfig, "cannot resolve the todo file path")
			}
			cfg := *a.cfg
			cfg.Store.Path = path

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(&cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
