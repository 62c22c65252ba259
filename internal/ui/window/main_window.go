// Package window provides GTK window implementations.
package window

import (
	"context"

	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/dimmer/internal/ui/component"
	"github.com/bnema/puregotk/v4/gtk"
	"github.com/rs/zerolog"
)

const (
	defaultWidth  = 1280
	defaultHeight = 800
	windowTitle   = "Dimmer"
)

// MainWindow is the single browser window: a toolbar with the navigation
// buttons and address bar, and the tab container below it.
type MainWindow struct {
	window  *gtk.ApplicationWindow
	rootBox *gtk.Box // Vertical: toolbar + content
	toolbar *gtk.Box // Horizontal: nav buttons + address bar

	navButtons   *component.NavButtons
	addressBar   *component.AddressBar
	tabContainer *component.TabContainer

	cfg    *config.Config
	logger zerolog.Logger
}

// New creates the main browser window.
func New(ctx context.Context, app *gtk.Application, cfg *config.Config) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		cfg:    cfg,
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}

	title := windowTitle
	mw.window.SetTitle(&title)
	mw.window.SetDefaultSize(mw.windowSize())

	mw.rootBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if mw.rootBox == nil {
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("rootBox")
	}
	mw.rootBox.SetHexpand(true)
	mw.rootBox.SetVexpand(true)
	mw.rootBox.SetVisible(true)

	mw.toolbar = gtk.NewBox(gtk.OrientationHorizontalValue, 0)
	if mw.toolbar == nil {
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("toolbar")
	}
	mw.toolbar.AddCssClass("toolbar")
	mw.toolbar.SetHexpand(true)

	mw.navButtons = component.NewNavButtons(ctx)
	if mw.navButtons == nil {
		mw.toolbar.Unref()
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("navButtons")
	}

	mw.addressBar = component.NewAddressBar(ctx)
	if mw.addressBar == nil {
		mw.toolbar.Unref()
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("addressBar")
	}

	mw.tabContainer = component.NewTabContainer(ctx)
	if mw.tabContainer == nil {
		mw.toolbar.Unref()
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("tabContainer")
	}

	mw.assembleLayout()
	mw.window.SetChild(&mw.rootBox.Widget)

	return mw, nil
}

// windowSize returns the configured window geometry, falling back to the
// defaults for missing or nonsensical values.
func (mw *MainWindow) windowSize() (width, height int) {
	width, height = defaultWidth, defaultHeight
	if mw.cfg == nil {
		return width, height
	}
	if mw.cfg.Window.Width > 0 {
		width = mw.cfg.Window.Width
	}
	if mw.cfg.Window.Height > 0 {
		height = mw.cfg.Window.Height
	}
	return width, height
}

// assembleLayout arranges toolbar and content vertically.
func (mw *MainWindow) assembleLayout() {
	mw.toolbar.Append(mw.navButtons.Widget())
	mw.toolbar.Append(mw.addressBar.Widget())

	mw.rootBox.Append(&mw.toolbar.Widget)
	mw.rootBox.Append(mw.tabContainer.Widget())

	mw.logger.Debug().Msg("window layout assembled")
}

// Show makes the window visible.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// AddressBar returns the address bar component.
func (mw *MainWindow) AddressBar() *component.AddressBar {
	return mw.addressBar
}

// NavButtons returns the navigation buttons component.
func (mw *MainWindow) NavButtons() *component.NavButtons {
	return mw.navButtons
}

// TabContainer returns the tab container component.
func (mw *MainWindow) TabContainer() *component.TabContainer {
	return mw.tabContainer
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// SetTitle updates the window title from a page title. An empty page
// title falls back to the bare application name.
func (mw *MainWindow) SetTitle(pageTitle string) {
	if mw.window == nil {
		return
	}

	title := windowTitle
	if pageTitle != "" {
		title = pageTitle + " - " + windowTitle
	}

	// Truncate title to 255 characters max
	const maxTitleLen = 255
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}
	mw.window.SetTitle(&title)
}

// Destroy cleans up window resources.
func (mw *MainWindow) Destroy() {
	if mw.rootBox != nil {
		mw.rootBox.Unref()
		mw.rootBox = nil
	}
	if mw.window != nil {
		mw.window.Destroy()
		mw.window = nil
	}
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
