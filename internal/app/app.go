package app

import (
	"context"
	"fmt"

	"github.com/five82/flow/internal/config"
	"github.com/five82/flow/internal/logtail"
	"github.com/five82/flow/internal/prefs"
	"github.com/five82/flow/internal/state"
	"github.com/five82/flow/internal/ui"
)

// Options configure the flow application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flow/prefs.toml
	Source     string // log file to view; empty uses log_path from config
	MaxLines   int    // zero uses max_lines from config
	LogFile    string // diagnostics destination; empty discards them
	LogLevel   string
}

// Run boots the flow TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithLogPath(opts.Source)
	if opts.MaxLines > 0 {
		cfg.MaxLines = opts.MaxLines
	}

	logger, closeLog, err := setupLogging(opts.LogFile, opts.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed, using defaults", "error", err)
	}

	backfill, offset, err := logtail.Tail(cfg.LogPath, cfg.MaxLines)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.LogPath, err)
	}
	logger.Info("starting", "source", cfg.LogPath, "backfill", len(backfill), "max_lines", cfg.MaxLines)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := &state.Inbox{Limit: cfg.MaxLines}
	StartFollower(ctx, inbox, logtail.NewFollower(cfg.LogPath, offset), cfg.PollInterval, logger)

	return ui.Run(ui.Options{
		Context:   ctx,
		Inbox:     inbox,
		Config:    cfg,
		Backfill:  backfill,
		ThemeName: userPrefs.Theme,
		TabName:   userPrefs.Tab,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
}
