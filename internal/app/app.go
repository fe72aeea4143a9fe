package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/passport/internal/config"
	"github.com/five82/passport/internal/countries"
	"github.com/five82/passport/internal/logging"
	"github.com/five82/passport/internal/prefs"
	"github.com/five82/passport/internal/state"
	"github.com/five82/passport/internal/ui"
)

// Options configure the passport application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/passport/prefs.toml
	Endpoint   string
	Timeout    time.Duration
	GroupSize  int
	LogFile    string // "-" disables logging
	LogLevel   string
}

// env holds what every entry point needs.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	client *countries.Client
}

func setup(opts Options) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load passport config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client, err := countries.NewClient(cfg.Endpoint, countries.WithTimeout(cfg.Timeout))
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init countries client: %w", err)
	}

	logger.Debug("passport configured",
		zap.String("endpoint", client.Endpoint()),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("group_size", cfg.GroupSize),
	)
	return &env{cfg: cfg, logger: logger, client: client}, nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.GroupSize > 0 {
		cfg.GroupSize = opts.GroupSize
	}
	if opts.LogFile != "" {
		if opts.LogFile == "-" {
			cfg.LogFile = "-"
		} else if expanded, err := config.ExpandPath(opts.LogFile); err == nil {
			cfg.LogFile = expanded
		}
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg
}

// Run boots the passport TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	loader := NewLoader(e.client, store, e.logger)
	loader.Start(ctx)

	e.logger.Info("starting ui", zap.String("theme", userPrefs.Theme))
	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Logger:    e.logger,
		Endpoint:  e.client.Endpoint(),
		GroupSize: e.cfg.GroupSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		e.logger.Error("ui exited with error", zap.Error(err))
		return err
	}
	e.logger.Info("ui closed")
	return nil
}
