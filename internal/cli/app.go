// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/domain/build"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dimmer/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	db        *sql.DB
	ZoomRepo  repository.ZoomRepository

	// Use cases
	ZoomUC    *usecase.ManageZoomUseCase
	ResolveUC *usecase.ResolveDestinationUseCase

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	// Load config
	cfg := loadConfig()

	// Create theme
	theme := styles.NewTheme()

	// Command output is the interface here; keep the logger quiet unless
	// explicitly raised via DIMMER_LOG_LEVEL.
	logLevel := "warn"
	if envLevel := os.Getenv("DIMMER_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.ConsoleTimeFormat,
	})
	ctx := logging.WithContext(context.Background(), logger)

	// Database path comes from config; Load resolves it into the XDG data
	// dir, but a DefaultConfig fallback leaves it empty.
	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		dbFile, err = config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	// Open database connection (creates directories and runs migrations)
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	// Create repositories
	zoomRepo := sqlite.NewZoomRepository(db)

	// Create use cases
	zoomUC := usecase.NewManageZoomUseCase(zoomRepo, cfg.DefaultZoom)
	resolveUC := usecase.NewResolveDestinationUseCase(cfg)

	return &App{
		Config:    cfg,
		Theme:     theme,
		db:        db,
		ZoomRepo:  zoomRepo,
		ZoomUC:    zoomUC,
		ResolveUC: resolveUC,
		ctx:       ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() *config.Config {
	mgr, err := config.NewManager()
	if err != nil {
		// Return default config if manager fails
		return config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		// Return default config if loading fails
		return config.DefaultConfig()
	}

	return mgr.Get()
}
