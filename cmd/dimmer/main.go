package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/cli/cmd"
	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/domain/build"
	"github.com/bnema/dimmer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dimmer/internal/infrastructure/webkit"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/dimmer/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// initialURL holds the URL or query to open on startup (from browse command).
var initialURL string

func main() {
	enableCrashForensics()

	// Run GUI mode for browse command
	if len(os.Args) > 1 && os.Args[1] == "browse" {
		if len(os.Args) > 2 {
			initialURL = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(runGUI())
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

func runGUI() int {
	runtime.LockOSThread()

	cfg := initConfig()
	logging.InitStartupTrace(cfg.Logging.Level)
	logging.Trace().Mark("config_loaded")

	ctx, logCleanup := initStartupContext(cfg)
	defer logCleanup()
	log := logging.FromContext(ctx)
	logging.Trace().SetLogger(log)
	logging.Trace().Mark("logger_init")

	defer logging.SetupPanicRecovery()
	logging.SetupCrashHandler(log)
	logCoreDumpLimits(ctx)

	// Must run before any GTK/WebKit call.
	debugGLib := cfg.Logging.Level == "debug" || cfg.Logging.Level == "trace"
	logging.InstallGLibLogHandler(ctx, *log, debugGLib)

	capture := logging.NewOutputCapture(*log)
	if err := capture.Start(); err != nil {
		log.Warn().Err(err).Msg("native output capture unavailable")
	} else {
		defer capture.Stop()
	}
	logging.Trace().Mark("capture_init")

	db, err := runParallelInit(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("initialization failed")
		return 1
	}
	defer func() { _ = sqlite.Close(db) }()
	logging.Trace().Mark("db_init")

	zoomRepo := sqlite.NewZoomRepository(db)
	deps := &ui.Dependencies{
		Ctx:        ctx,
		Config:     cfg,
		InitialURL: initialURL,
		TabFactory: webkit.NewFactory(cfg.DefaultZoom),
		ResolveUC:  usecase.NewResolveDestinationUseCase(cfg),
		ZoomUC:     usecase.NewManageZoomUseCase(zoomRepo, cfg.DefaultZoom),
	}

	app, err := ui.New(deps)
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	logging.Trace().Mark("ui_deps")

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

func initConfig() *config.Config {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	return config.Get()
}

// initStartupContext builds the GUI logger. Log lines go to stderr and to a
// rotating file under the data directory; every line carries a short session
// ID so interleaved runs can be told apart.
func initStartupContext(cfg *config.Config) (context.Context, func()) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.ConsoleTimeFormat,
	}

	var (
		logger  zerolog.Logger
		cleanup = func() {}
	)

	dataDir, err := config.GetDataDir()
	if err == nil {
		fileLogger, fileCleanup, fileErr := logging.NewWithFile(logging.FileConfig{
			Config:   logCfg,
			Dir:      filepath.Join(dataDir, "logs"),
			Compress: true,
		})
		if fileErr == nil {
			logger = fileLogger
			cleanup = fileCleanup
		} else {
			logger = logging.New(logCfg)
			logger.Warn().Err(fileErr).Msg("file logging unavailable")
		}
	} else {
		logger = logging.New(logCfg)
		logger.Warn().Err(err).Msg("data directory unavailable, logging to stderr only")
	}

	sessionID := logging.GenerateSessionID()
	logger = logger.With().Str("session", logging.ShortSessionID(sessionID)).Logger()

	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting dimmer")

	return logging.WithContext(context.Background(), logger), cleanup
}

// runParallelInit runs the independent disk-touching startup steps
// concurrently: database open plus migrations, and XDG directory creation.
func runParallelInit(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	var db *sql.DB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dbPath, err := databasePath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		opened, err := sqlite.NewConnection(gctx, dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		db = opened
		return nil
	})
	g.Go(func() error {
		if err := config.EnsureDirectories(); err != nil {
			return fmt.Errorf("ensure xdg directories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if db != nil {
			_ = sqlite.Close(db)
		}
		return nil, err
	}
	return db, nil
}

// databasePath prefers the configured path; config.Init resolves it into the
// XDG data dir, but a bare DefaultConfig leaves it empty.
func databasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return cfg.Database.Path, nil
	}
	return config.GetDatabaseFile()
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
