package wire

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/kmj8843/mdrowser/internal/config"
	"github.com/kmj8843/mdrowser/internal/fetch"
	"github.com/kmj8843/mdrowser/internal/history"
)

// App aggregates the major services for easy injection.
type App struct {
	V   *viper.Viper
	Log *log.Logger

	// Runner is nil when the external pipeline could not be resolved;
	// RunnerErr then holds the configuration error. Commands that do not
	// fetch keep working.
	Runner    *fetch.Runner
	RunnerErr error

	// History is nil when disabled.
	History history.Store
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	app := &App{
		V:   v,
		Log: log.New(os.Stderr, "mdrowser ", log.LstdFlags),
	}

	runner, err := fetch.NewRunner(
		v.GetString("fetcher.command"),
		v.GetString("fetcher.quiet_flags"),
		v.GetString("converter.command"),
		v.GetString("converter.domain_flag"),
	)
	if err != nil {
		app.RunnerErr = err
	} else {
		app.Runner = runner
	}

	if v.GetBool("history.enabled") {
		st, err := history.OpenSQLite(ctx, config.ResolveHistoryPath(v))
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		app.History = st
	} else {
		// Session-only: the picker still works, nothing persists.
		app.History = history.OpenMem()
	}
	return app, nil
}

// Fetcher returns the pipeline runner or the configuration error that
// prevented its setup.
func (a *App) Fetcher() (*fetch.Runner, error) {
	if a.Runner == nil {
		if a.RunnerErr != nil {
			return nil, a.RunnerErr
		}
		return nil, errors.New("fetch pipeline unavailable")
	}
	return a.Runner, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.History != nil {
		return a.History.Close()
	}
	return nil
}
