package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmj8843/mdrowser/internal/fetch"
	"github.com/kmj8843/mdrowser/internal/present"
	"github.com/kmj8843/mdrowser/pkg/api"
)

func newGetCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Fetch a URL once and print the converted markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			runner, err := app.Fetcher()
			if err != nil {
				return err
			}
			mode, ok := present.ParseMode(output)
			if !ok || mode == present.ModeTUI {
				return fmt.Errorf("unknown output mode %q (plain|pretty|json)", output)
			}

			page, err := runner.Fetch(cmd.Context(), args[0])
			if err != nil {
				// An empty URL is a no-op, not a failure.
				if errors.Is(err, fetch.ErrEmptyURL) {
					return nil
				}
				return err
			}
			if app.History != nil {
				if herr := app.History.Record(cmd.Context(), api.Visit{
					URL:       page.URL,
					Domain:    page.Domain,
					Title:     page.Title(),
					Lines:     len(page.Lines),
					Hash:      api.HashLines(page.Lines),
					FetchedAt: page.FetchedAt,
				}); herr != nil {
					app.Log.Printf("record visit: %v", herr)
				}
			}

			opts := present.Options{
				Mode:  mode,
				Style: app.V.GetString("render.style"),
				Wrap:  app.V.GetInt("render.wrap"),
			}
			return renderPage(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), page, opts)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "pretty", "output mode: plain|pretty|json")
	return cmd
}
