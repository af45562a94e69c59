package commands

import (
	"context"
	"log/slog"

	"github.com/nonibytes/searchbox/internal/cliopt"
	"github.com/nonibytes/searchbox/internal/cliutil"
	"github.com/nonibytes/searchbox/searchbox"
	"github.com/nonibytes/searchbox/searchbox/schema"
)

// App carries what the root command resolved before a subcommand runs.
type App struct {
	Globals cliopt.GlobalOptions
	Logger  *slog.Logger
}

func (a *App) engineOptions() searchbox.Options {
	opts := searchbox.DefaultOptions()
	opts.UserCacheTTL = a.Globals.UserCacheTTL
	opts.Logger = a.Logger
	return opts
}

// OpenEngine opens the configured store.
func (a *App) OpenEngine(ctx context.Context) (*searchbox.Engine, error) {
	adapter, err := cliutil.NewAdapter(a.Globals)
	if err != nil {
		return nil, err
	}
	return searchbox.Open(ctx, adapter, a.engineOptions())
}

// CreateEngine initializes the configured store.
func (a *App) CreateEngine(ctx context.Context) (*searchbox.Engine, error) {
	adapter, err := cliutil.NewAdapter(a.Globals)
	if err != nil {
		return nil, err
	}
	return searchbox.Create(ctx, adapter, a.engineOptions())
}

// contentType loads id from the store; an empty id selects no content type.
func (a *App) contentType(ctx context.Context, e *searchbox.Engine, id string) (*schema.ContentType, error) {
	if id == "" {
		return nil, nil
	}
	return e.ContentType(ctx, a.Globals.Space, id)
}
