package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kmj8843/mdrowser/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate, update, and inspect configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigUpdateCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var path string
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config.toml with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(config.RenderDefaultTOML()), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "destination (default: standard config location)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigUpdateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Merge new defaults into an existing config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			updated, changed := config.UpdateTOML(string(raw))
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "config already up to date")
				return nil
			}
			if err := os.WriteFile(path, []byte(updated), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "config file to update (default: standard config location)")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			fmt.Fprint(cmd.OutOrStdout(), config.Describe(app.V))
			return nil
		},
	}
}
