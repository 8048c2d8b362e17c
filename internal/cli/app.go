// Package cli holds the dependencies shared by the kiosk's subcommands.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/kiosk/internal/cli/styles"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kiosk/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Configs  *config.Manager
	Config   *config.Config
	Theme    *styles.Theme
	Renderer *styles.Renderer

	db  *sql.DB
	ctx context.Context
}

// NewApp loads the configuration and builds a quiet logger. The database
// is opened on first use.
func NewApp() (*App, error) {
	configs, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := configs.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := configs.Get()

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.TimeFormat = "15:04:05"
	logger, _, _ := logging.New(logCfg.ApplyEnv())

	theme := styles.NewTheme(cfg.Appearance.Theme)
	return &App{
		Configs:  configs,
		Config:   cfg,
		Theme:    theme,
		Renderer: styles.NewRenderer(theme),
		ctx:      logging.WithContext(context.Background(), logger),
	}, nil
}

// DB opens the settings database.
func (a *App) DB() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := sqlite.NewConnection(a.ctx, a.Config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db
	return db, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		err := sqlite.Close(a.db)
		a.db = nil
		return err
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
