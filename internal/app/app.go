package app

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/placeholder"
	"github.com/taskdeck/taskdeck/internal/prefs"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/todo"
	"github.com/taskdeck/taskdeck/internal/ui"
)

// Options configure the taskdeck application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/taskdeck/prefs.toml
	ServerURL    string // overrides the configured base URL when set
	RefreshEvery int    // seconds between automatic imports; zero disables
}

// Run boots the taskdeck TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	baseURL := cfg.BaseURL
	if opts.ServerURL != "" {
		baseURL = opts.ServerURL
	}

	client, err := placeholder.NewClient(baseURL, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("init todos client: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	s := store.New()
	if opt, ok := todo.ParseSortOption(userPrefs.Sort); ok {
		s.SetSort(opt)
	}

	if opts.RefreshEvery > 0 {
		StartAutoImport(ctx, s, client, time.Duration(opts.RefreshEvery)*time.Second)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     s,
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
