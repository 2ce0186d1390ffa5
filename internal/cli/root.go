package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kmj8843/mdrowser/internal/config"
	"github.com/kmj8843/mdrowser/internal/present/tui"
	"github.com/kmj8843/mdrowser/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
// Invoked bare (optionally with a URL) it opens the interactive viewer.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	var noHistory bool

	cmd := &cobra.Command{
		Use:           "mdrowser [url]",
		Short:         "mdrowser — read web pages as markdown in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			if noHistory {
				v.Set("history.enabled", false)
			}
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if v := cmd.Context().Value(appKey); v != nil {
				return v.(*wire.App).Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			url := ""
			if len(args) > 0 {
				url = args[0]
			}
			return tui.Run(cmd.Context(), tui.Options{
				Runner:       app.Runner,
				RunnerErr:    app.RunnerErr,
				History:      app.History,
				HistoryLimit: app.V.GetInt("history.limit"),
				Style:        app.V.GetString("render.style"),
				Wrap:         app.V.GetInt("render.wrap"),
				InitialURL:   url,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml)")
	cmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not persist visited pages")

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
