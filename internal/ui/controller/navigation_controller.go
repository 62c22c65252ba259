// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/rs/zerolog"
)

// AddressBarView is the address-bar surface the controller drives.
type AddressBarView interface {
	// Text returns the currently displayed text.
	Text() string
	// SetText replaces the displayed text.
	SetText(text string)
	// SelectAll places the selection over the full displayed text.
	SelectAll()
}

// NavButtonsView controls the enabled state of the back/forward buttons.
type NavButtonsView interface {
	SetBackEnabled(enabled bool)
	SetForwardEnabled(enabled bool)
}

// TabContainerView is the display container a Tab's rendering surface is
// mounted into. Mounting the first Tab replaces any empty placeholder.
type TabContainerView interface {
	Mount(widget uintptr)
}

// NavigationController synchronizes the address bar, the back/forward
// buttons, and the active Tab against each other.
//
// The address-bar display has two states: editing (focused, showing the
// canonical URL) and displaying (unfocused, showing the page title). Focus
// enters editing; blur and submit leave it. Title updates only touch the
// bar while displaying, so they never clobber an edit in progress.
//
// All handlers run on the GTK main loop. Capability query results arrive
// asynchronously and may refer to a Tab that has since been replaced; each
// resolution compares the answering Tab's ID against the current one and
// stale results are dropped without touching button state.
type NavigationController struct {
	addressBar AddressBarView
	buttons    NavButtonsView
	container  TabContainerView
	factory    port.TabFactory
	resolver   *usecase.ResolveDestinationUseCase

	// Active Tab state. tab stays nil until the first successful open.
	tab         port.Tab
	pendingText string
	editing     bool
	subs        []port.Subscription

	// Callback when a Tab becomes active (created or adopted)
	onTabAttached func(tab port.Tab)

	ctx    context.Context
	logger *zerolog.Logger
	mu     sync.RWMutex
}

// NewNavigationController creates a controller wired to the given views.
// Event sources (focus, blur, submit, button clicks) are connected by the
// caller; the controller only exposes the handlers.
func NewNavigationController(
	ctx context.Context,
	addressBar AddressBarView,
	buttons NavButtonsView,
	container TabContainerView,
	factory port.TabFactory,
	resolver *usecase.ResolveDestinationUseCase,
) *NavigationController {
	return &NavigationController{
		addressBar: addressBar,
		buttons:    buttons,
		container:  container,
		factory:    factory,
		resolver:   resolver,
		ctx:        ctx,
		logger:     logging.FromContext(ctx),
	}
}

// SetOnTabAttached sets the callback invoked after a Tab becomes active.
// The UI layer uses it to hook per-tab concerns (window title, zoom).
func (nc *NavigationController) SetOnTabAttached(fn func(tab port.Tab)) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	nc.onTabAttached = fn
}

// ActiveTab returns the currently active Tab, or nil if none exists yet.
func (nc *NavigationController) ActiveTab() port.Tab {
	nc.mu.RLock()
	defer nc.mu.RUnlock()
	return nc.tab
}

// PendingText returns the last committed address-bar text.
func (nc *NavigationController) PendingText() string {
	nc.mu.RLock()
	defer nc.mu.RUnlock()
	return nc.pendingText
}

// HandleFocus enters the editing state. With an active Tab the bar swaps
// to the canonical URL with the full text selected, so a single keystroke
// replaces it. Without a Tab the user's text is left alone.
func (nc *NavigationController) HandleFocus() {
	nc.mu.Lock()
	nc.editing = true
	tab := nc.tab
	nc.mu.Unlock()

	if tab == nil {
		return
	}

	nc.addressBar.SetText(tab.URI())
	nc.addressBar.SelectAll()
}

// HandleBlur leaves the editing state. The bar's text is committed to
// pendingText verbatim before the display reverts to the Tab's title, so
// a later submit can still use the interrupted edit.
func (nc *NavigationController) HandleBlur() {
	text := nc.addressBar.Text()

	nc.mu.Lock()
	nc.editing = false
	nc.pendingText = text
	tab := nc.tab
	nc.mu.Unlock()

	if tab == nil {
		return
	}

	nc.addressBar.SetText(tab.Title())
}

// HandleSubmit commits the bar's text and acts on it:
//   - text that trims to empty: complete no-op, nothing changes
//   - no active Tab: resolve the text and open a Tab on the destination
//   - text equal to the Tab's title: the user resubmitted without editing,
//     reload in place (keeps the history position)
//   - anything else: fresh navigation (pushes a new history entry)
func (nc *NavigationController) HandleSubmit() {
	raw := nc.addressBar.Text()
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}

	nc.mu.Lock()
	nc.editing = false
	nc.pendingText = raw
	tab := nc.tab
	nc.mu.Unlock()

	if tab == nil {
		if err := nc.OpenURL(nc.ctx, text); err != nil {
			nc.logger.Error().Err(err).Str("input", text).Msg("failed to open tab")
		}
		return
	}

	if text == tab.Title() {
		nc.logger.Debug().Uint64("tab_id", uint64(tab.ID())).Msg("unchanged resubmit, reloading")
		if err := tab.Reload(nc.ctx); err != nil {
			nc.logger.Error().Err(err).Msg("failed to reload")
		}
		return
	}

	result, err := nc.resolver.Resolve(nc.ctx, text)
	if err != nil {
		nc.logger.Error().Err(err).Str("input", text).Msg("failed to resolve destination")
		return
	}

	if err := tab.Navigate(nc.ctx, result.URL); err != nil {
		nc.logger.Error().Err(err).Str("url", result.URL).Msg("failed to navigate")
	}
}

// HandleBack steps the active Tab back in history. No-op without a Tab;
// navigability itself is the Tab's concern, surfaced via button state.
func (nc *NavigationController) HandleBack() {
	nc.mu.RLock()
	tab := nc.tab
	nc.mu.RUnlock()

	if tab == nil {
		return
	}

	if err := tab.GoBack(nc.ctx); err != nil {
		nc.logger.Error().Err(err).Msg("failed to go back")
	}
}

// HandleForward steps the active Tab forward in history. No-op without a Tab.
func (nc *NavigationController) HandleForward() {
	nc.mu.RLock()
	tab := nc.tab
	nc.mu.RUnlock()

	if tab == nil {
		return
	}

	if err := tab.GoForward(nc.ctx); err != nil {
		nc.logger.Error().Err(err).Msg("failed to go forward")
	}
}

// OpenURL resolves raw user input to a destination and opens a new Tab on
// it. Used by the first submit, the startup homepage, and URL arguments.
func (nc *NavigationController) OpenURL(ctx context.Context, input string) error {
	result, err := nc.resolver.Resolve(ctx, input)
	if err != nil {
		return err
	}

	tab, err := nc.factory.Create(ctx, result.URL)
	if err != nil {
		return err
	}

	nc.AttachTab(ctx, tab)
	return nil
}

// AttachTab mounts the Tab's rendering surface into the container and makes
// it the active Tab. Subscriptions on a previously active Tab are cancelled
// first, so its lifecycle events stop reaching the controller; in-flight
// capability resolutions for it die on the ID guard instead.
func (nc *NavigationController) AttachTab(ctx context.Context, tab port.Tab) {
	nc.container.Mount(tab.Widget())

	nc.mu.Lock()
	for _, sub := range nc.subs {
		sub.Cancel()
	}
	nc.subs = nil
	nc.tab = tab
	callback := nc.onTabAttached
	nc.mu.Unlock()

	nc.subscribeTab(tab)

	nc.logger.Debug().Uint64("tab_id", uint64(tab.ID())).Msg("tab attached")

	if callback != nil {
		callback(tab)
	}
}

// subscribeTab wires the Tab's lifecycle events to the controller. Every
// callback captures the Tab's ID and re-checks it on entry: events from a
// Tab that is no longer active are discarded.
func (nc *NavigationController) subscribeTab(tab port.Tab) {
	id := tab.ID()

	locSub := tab.OnLocationChanged(func(uri string) {
		if !nc.isActive(id) {
			return
		}
		// The canonical URL replaces the committed text but stays
		// invisible until the next focus swaps the display to it.
		nc.mu.Lock()
		nc.pendingText = uri
		nc.mu.Unlock()
	})

	titleSub := tab.OnTitleChanged(func(title string) {
		if !nc.isActive(id) {
			return
		}
		nc.mu.RLock()
		editing := nc.editing
		nc.mu.RUnlock()
		if editing {
			return
		}
		nc.addressBar.SetText(title)
	})

	loadSub := tab.OnLoadFinished(func() {
		if !nc.isActive(id) {
			return
		}
		nc.refreshButtons(tab, id)
	})

	nc.mu.Lock()
	nc.subs = append(nc.subs, locSub, titleSub, loadSub)
	nc.mu.Unlock()
}

// refreshButtons issues the two capability queries for the Tab. The queries
// are independent and may resolve in any order, interleaved with further
// events; each resolution re-checks that the answering Tab is still active
// before touching button state.
func (nc *NavigationController) refreshButtons(tab port.Tab, id port.TabID) {
	tab.CanGoBack(nc.ctx, func(canGoBack bool) {
		if !nc.isActive(id) {
			nc.logger.Debug().Uint64("tab_id", uint64(id)).Msg("dropping stale can-go-back resolution")
			return
		}
		nc.buttons.SetBackEnabled(canGoBack)
	})

	tab.CanGoForward(nc.ctx, func(canGoForward bool) {
		if !nc.isActive(id) {
			nc.logger.Debug().Uint64("tab_id", uint64(id)).Msg("dropping stale can-go-forward resolution")
			return
		}
		nc.buttons.SetForwardEnabled(canGoForward)
	})
}

// isActive reports whether the Tab with the given ID is still the active
// Tab. IDs are monotonic, so this also rejects results from a destroyed
// Tab whose ID was never reused.
func (nc *NavigationController) isActive(id port.TabID) bool {
	nc.mu.RLock()
	defer nc.mu.RUnlock()
	return nc.tab != nil && nc.tab.ID() == id
}

// Close cancels all Tab subscriptions. The controller must not be used
// afterwards.
func (nc *NavigationController) Close() {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	for _, sub := range nc.subs {
		sub.Cancel()
	}
	nc.subs = nil
}
