package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmj8843/mdrowser/internal/present"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage visited pages",
	}
	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistorySearchCmd())
	cmd.AddCommand(newHistoryClearCmd())
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var output string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if limit == 0 {
				limit = app.V.GetInt("history.limit")
			}
			visits, err := app.History.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			mode, ok := present.ParseMode(output)
			if !ok || (mode != present.ModePlain && mode != present.ModeJSON) {
				return fmt.Errorf("unknown output mode %q (plain|json)", output)
			}
			return present.RenderVisits(cmd.OutOrStdout(), visits, present.Options{Mode: mode})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output mode: plain|json")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of visits (0 = configured limit)")
	return cmd
}

func newHistorySearchCmd() *cobra.Command {
	var output string
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search visits by URL or title substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if limit == 0 {
				limit = app.V.GetInt("history.limit")
			}
			visits, err := app.History.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			mode, ok := present.ParseMode(output)
			if !ok || (mode != present.ModePlain && mode != present.ModeJSON) {
				return fmt.Errorf("unknown output mode %q (plain|json)", output)
			}
			return present.RenderVisits(cmd.OutOrStdout(), visits, present.Options{Mode: mode})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output mode: plain|json")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of visits (0 = configured limit)")
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded visits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear history without --yes")
			}
			app := getApp(cmd)
			n, err := app.History.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d visits\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")
	return cmd
}
