package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/memopad/internal/config"
	"github.com/five82/memopad/internal/prefs"
	"github.com/five82/memopad/internal/recordstore"
	"github.com/five82/memopad/internal/repository"
	"github.com/five82/memopad/internal/state"
	"github.com/five82/memopad/internal/ui"
)

// Options configure the memopad application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/memopad/prefs.toml
	StorePath  string // overrides the database location from config
}

// Run boots the memopad TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	storePath := cfg.StorePath()
	if strings.TrimSpace(opts.StorePath) != "" {
		storePath = opts.StorePath
	}

	repo, closeStore, startupErr := openRepository(ctx, storePath, logger)
	defer closeStore()

	store := state.New(repo,
		state.WithLogger(logger),
		state.WithDefaultSortKey(userPrefs.Sort()),
	)

	logger.Info("memopad starting", "store", storePath, "sort", userPrefs.Sort().String())

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		StorePath:  storePath,
		Logger:     logger,
		StartupErr: startupErr,
	})
}

// openRepository opens the record store at path. When that fails the error is
// returned alongside an inert repository so the UI can still start and show it.
func openRepository(ctx context.Context, path string, logger *slog.Logger) (repository.Repository, func(), error) {
	rs, err := recordstore.Open(ctx, path, recordstore.SchemaVersion, recordstore.WithLogger(logger))
	if err != nil {
		logger.Error("open record store failed", "path", path, "error", err)
		return repository.New(nil), func() {}, err
	}
	return repository.New(rs), func() {
		if err := rs.Close(); err != nil {
			logger.Warn("close record store failed", "path", path, "error", err)
		}
	}, nil
}

// openLogger returns a text logger appending to path. The terminal belongs to
// the TUI, so nothing is written to stderr.
func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }, nil
}
