package ui

import (
	"context"
	"errors"
	"os"

	"github.com/bnema/puregotk/v4/gio"
	"github.com/bnema/puregotk/v4/glib"
	"github.com/bnema/puregotk/v4/gtk"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/dimmer/internal/ui/controller"
	"github.com/bnema/dimmer/internal/ui/input"
	"github.com/bnema/dimmer/internal/ui/theme"
	"github.com/bnema/dimmer/internal/ui/window"
	"github.com/bnema/dimmer/pkg/clipboard"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.dimmer"
)

// App wraps the GTK Application and manages the browser lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	navController *controller.NavigationController
	shortcuts     *input.GlobalShortcutHandler
	themeMgr      *theme.Manager
	configManager *config.Manager

	// Subscriptions on the active Tab (window title, zoom apply).
	// Replaced wholesale when a new Tab attaches.
	tabSubs []port.Subscription

	// lifecycle
	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	_, cancel := context.WithCancelCause(deps.Ctx)

	return &App{
		deps:          deps,
		configManager: config.GetManager(),
		cancel:        cancel,
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	// TODO: Use AppID once puregotk GC bug is fixed (nullable-string-gc-memory-corruption)
	a.gtkApp = gtk.NewApplication(nil, gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		a.onShutdown(ctx)
	}
	a.gtkApp.ConnectShutdown(&shutdownCb)

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(len(args), args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if err := a.createMainWindow(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		return
	}

	a.initNavigationController(ctx)
	a.initShortcuts(ctx)
	a.openInitialPage(ctx)
	a.finalizeActivation(ctx)
}

func (a *App) createMainWindow(ctx context.Context) error {
	mainWindow, err := window.New(ctx, a.gtkApp, a.deps.Config)
	if err != nil {
		return err
	}
	a.mainWindow = mainWindow

	// Apply chrome CSS to the display.
	a.themeMgr = theme.NewManager(ctx)
	if display := a.mainWindow.Window().GetDisplay(); display != nil {
		a.themeMgr.ApplyToDisplay(ctx, display)
	}
	return nil
}

// initNavigationController wires the chrome widgets to the navigation
// controller. The controller owns the address-bar state machine; the app
// only routes widget events to it.
func (a *App) initNavigationController(ctx context.Context) {
	addressBar := a.mainWindow.AddressBar()
	navButtons := a.mainWindow.NavButtons()

	a.navController = controller.NewNavigationController(
		ctx,
		addressBar,
		navButtons,
		a.mainWindow.TabContainer(),
		a.deps.TabFactory,
		a.deps.ResolveUC,
	)
	a.navController.SetOnTabAttached(func(tab port.Tab) {
		a.onTabAttached(ctx, tab)
	})

	addressBar.SetOnFocus(a.navController.HandleFocus)
	addressBar.SetOnBlur(a.navController.HandleBlur)
	addressBar.SetOnSubmit(a.navController.HandleSubmit)
	navButtons.SetOnBack(a.navController.HandleBack)
	navButtons.SetOnForward(a.navController.HandleForward)

	logging.FromContext(ctx).Debug().Msg("navigation controller wired")
}

func (a *App) initShortcuts(ctx context.Context) {
	a.shortcuts = input.NewGlobalShortcutHandler(
		ctx,
		a.mainWindow.Window(),
		a.dispatchAction,
	)
}

// dispatchAction routes a keyboard shortcut to the matching operation.
func (a *App) dispatchAction(ctx context.Context, action input.Action) error {
	if a.navController == nil {
		return nil
	}

	switch action {
	case input.ActionFocusAddressBar:
		a.mainWindow.AddressBar().GrabFocus()
	case input.ActionGoBack:
		a.navController.HandleBack()
	case input.ActionGoForward:
		a.navController.HandleForward()
	case input.ActionReload:
		if tab := a.navController.ActiveTab(); tab != nil {
			return tab.Reload(ctx)
		}
	case input.ActionZoomIn, input.ActionZoomOut, input.ActionZoomReset:
		return a.handleZoom(ctx, action)
	case input.ActionCopyURL:
		return a.copyCurrentURL(ctx)
	case input.ActionQuit:
		a.Quit()
	}
	return nil
}

// copyCurrentURL places the active Tab's URL on the system clipboard.
func (a *App) copyCurrentURL(ctx context.Context) error {
	tab := a.navController.ActiveTab()
	if tab == nil {
		return nil
	}
	uri := tab.URI()
	if uri == "" {
		return nil
	}
	if err := clipboard.Copy(uri); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("url", uri).Msg("copied URL to clipboard")
	return nil
}

// handleZoom adjusts and persists the zoom level for the active Tab's domain.
func (a *App) handleZoom(ctx context.Context, action input.Action) error {
	if a.deps.ZoomUC == nil {
		return nil
	}
	tab := a.navController.ActiveTab()
	if tab == nil {
		return nil
	}

	domain, err := usecase.ExtractDomain(tab.URI())
	if err != nil {
		// Pages without a host (about:blank) have no persisted zoom.
		logging.FromContext(ctx).Debug().Err(err).Msg("skipping zoom for hostless page")
		return nil
	}

	switch action {
	case input.ActionZoomIn:
		zoom, err := a.deps.ZoomUC.ZoomIn(ctx, domain, tab.GetZoomLevel())
		if err != nil {
			return err
		}
		return tab.SetZoomLevel(ctx, zoom.ZoomFactor)
	case input.ActionZoomOut:
		zoom, err := a.deps.ZoomUC.ZoomOut(ctx, domain, tab.GetZoomLevel())
		if err != nil {
			return err
		}
		return tab.SetZoomLevel(ctx, zoom.ZoomFactor)
	case input.ActionZoomReset:
		if err := a.deps.ZoomUC.ResetZoom(ctx, domain); err != nil {
			return err
		}
		return tab.SetZoomLevel(ctx, a.deps.ZoomUC.DefaultZoom())
	}
	return nil
}

// onTabAttached hooks per-tab concerns whenever a Tab becomes active:
// the window title follows the page title, and the saved zoom level for
// the page's domain is applied after each navigation settles.
func (a *App) onTabAttached(ctx context.Context, tab port.Tab) {
	for _, sub := range a.tabSubs {
		sub.Cancel()
	}
	a.tabSubs = nil

	a.mainWindow.SetTitle(tab.Title())

	titleSub := tab.OnTitleChanged(func(title string) {
		a.mainWindow.SetTitle(title)
	})
	loadSub := tab.OnLoadFinished(func() {
		a.applySavedZoom(ctx, tab)
	})
	a.tabSubs = append(a.tabSubs, titleSub, loadSub)
}

func (a *App) applySavedZoom(ctx context.Context, tab port.Tab) {
	if a.deps.ZoomUC == nil {
		return
	}

	domain, err := usecase.ExtractDomain(tab.URI())
	if err != nil {
		return
	}
	if err := a.deps.ZoomUC.ApplyToTab(ctx, tab, domain); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("domain", domain).Msg("failed to apply saved zoom")
	}
}

// openInitialPage loads the startup URL. With no CLI argument and no
// configured homepage the window stays in the empty state until the first
// address-bar submit.
func (a *App) openInitialPage(ctx context.Context) {
	log := logging.FromContext(ctx)

	startURL := a.deps.InitialURL
	if startURL == "" {
		startURL = a.deps.Config.Homepage
	}
	if startURL == "" {
		log.Debug().Msg("no start URL, window opens empty")
		return
	}

	if err := a.navController.OpenURL(ctx, startURL); err != nil {
		log.Error().Err(err).Str("url", startURL).Msg("failed to open start URL")
	}
}

func (a *App) finalizeActivation(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.mainWindow != nil {
		a.mainWindow.Show()
	}
	log.Info().Msg("main window displayed")
	logging.Trace().Mark("window_shown")
	logging.Trace().Finish()

	a.initConfigWatcher(ctx)
}

// initConfigWatcher starts the file watcher and reapplies config changes
// on the GTK main loop.
func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.configManager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	if err := a.configManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	a.configManager.OnConfigChange(func(newCfg *config.Config) {
		cfgCopy := newCfg
		cb := glib.SourceFunc(func(_ uintptr) bool {
			a.applyConfig(ctx, cfgCopy)
			return false
		})
		glib.IdleAdd(&cb, 0)
	})

	log.Debug().Msg("config watcher initialized")
}

func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}

	// The resolver and main window read through this shared pointer, so
	// copying in place is what propagates the new search engine and
	// shortcuts.
	*a.deps.Config = *cfg

	if a.deps.ZoomUC != nil {
		a.deps.ZoomUC.SetDefaultZoom(cfg.DefaultZoom)
	}

	logging.FromContext(ctx).Info().Msg("configuration reloaded")
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	for _, sub := range a.tabSubs {
		sub.Cancel()
	}
	a.tabSubs = nil

	if a.shortcuts != nil {
		a.shortcuts.Detach()
	}

	var activeTab port.Tab
	if a.navController != nil {
		activeTab = a.navController.ActiveTab()
		a.navController.Close()
	}
	if activeTab != nil {
		activeTab.Destroy()
	}

	a.cancel(errors.New("application shutdown"))

	log.Info().Msg("application shutdown complete")
}

// MainWindow returns the main window.
func (a *App) MainWindow() *window.MainWindow {
	return a.mainWindow
}

// Quit requests the application to quit.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// RunWithArgs is a convenience function that creates and runs an App.
func RunWithArgs(ctx context.Context, deps *Dependencies) int {
	app, err := New(deps)
	if err != nil {
		log := logging.FromContext(ctx)
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	return app.Run(ctx, os.Args)
}
