// Package cli wires configuration, logging and storage for the floatpane
// commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/floatpane/internal/application/usecase"
	"github.com/bnema/floatpane/internal/cli/styles"
	"github.com/bnema/floatpane/internal/domain/build"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/domain/repository"
	"github.com/bnema/floatpane/internal/infrastructure/config"
	"github.com/bnema/floatpane/internal/infrastructure/persistence/file"
	"github.com/bnema/floatpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/rs/zerolog"
)

// Options control how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// OwnsTerminal routes logs to a session file so a TUI can own stderr.
	OwnsTerminal bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// WindowState is the configured persistence backend.
	WindowState repository.WindowStateRepository
	StoragePath string
	SessionID   string

	lazyDB *sqlite.LazyDB

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the logger and the window state
// repository. A broken config file is reported and the defaults are used.
func NewApp(opts Options) (*App, error) {
	var loadErr error
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if loadErr = mgr.Load(); loadErr != nil {
		loadErr = fmt.Errorf("load config: %w", loadErr)
	}
	cfg := mgr.Get()

	sessionID := logging.GenerateSessionID(time.Now())
	logger, logCleanup, logErr := newLogger(cfg, sessionID, opts.OwnsTerminal)
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)
	if logErr != nil {
		log.Warn().Err(logErr).Msg("file logging unavailable")
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("file", mgr.GetConfigFile()).Msg("using default configuration")
	}

	app := &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		SessionID:  sessionID,
		ctx:        ctx,
		logCleanup: logCleanup,
	}
	if err := app.openStorage(); err != nil {
		app.Close()
		return nil, err
	}

	log.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("backend", string(cfg.Storage.Backend)).
		Str("storage", app.StoragePath).
		Msg("app initialized")
	return app, nil
}

func newLogger(cfg *config.Config, sessionID string, ownsTerminal bool) (logger zerolog.Logger, cleanup func(), err error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if envLevel := os.Getenv("FLOATPANE_LOG_LEVEL"); envLevel != "" {
		level = logging.ParseLevel(envLevel)
	}

	logDir, err := resolveLogDir(cfg)
	if err != nil {
		return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format), func() {}, err
	}

	return logging.NewWithFile(
		logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog || ownsTerminal,
			LogDir:        logDir,
			SessionID:     sessionID,
			WriteToStderr: !ownsTerminal,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAge:        time.Duration(cfg.Logging.MaxAgeDays) * 24 * time.Hour,
			Compress:      cfg.Logging.Compress,
		},
	)
}

func resolveLogDir(cfg *config.Config) (string, error) {
	if cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir, nil
	}
	return config.GetLogDir()
}

// LogDir returns the directory holding session log files.
func (a *App) LogDir() (string, error) {
	return resolveLogDir(a.Config)
}

func (a *App) openStorage() error {
	path, err := a.Config.StoragePath()
	if err != nil {
		return fmt.Errorf("resolve storage path: %w", err)
	}
	a.StoragePath = path

	switch a.Config.Storage.Backend {
	case config.StorageFile:
		a.WindowState = file.NewWindowStateRepository(path)
	default:
		a.lazyDB = sqlite.NewLazyDB(path)
		a.WindowState = sqlite.NewLazyWindowStateRepository(a.lazyDB)
	}
	return nil
}

// NewStore creates the window state store for screen. The caller closes it.
func (a *App) NewStore(screen entity.Screen) *usecase.WindowStateStore {
	return usecase.NewWindowStateStore(a.ctx, a.WindowState, a.Config.Layout(screen))
}

// Close releases all resources.
func (a *App) Close() {
	if a.lazyDB != nil {
		if err := a.lazyDB.Close(); err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Msg("failed to close database")
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
