// Package input wires window-level keyboard shortcuts to browser actions.
package input

import (
	"context"

	"github.com/bnema/puregotk/v4/gdk"
	"github.com/bnema/puregotk/v4/glib"
	"github.com/bnema/puregotk/v4/gtk"

	"github.com/bnema/dimmer/internal/logging"
)

// Action represents what happens when a shortcut is triggered.
type Action string

const (
	// ActionFocusAddressBar moves keyboard focus to the address bar.
	ActionFocusAddressBar Action = "focus_address_bar"
	// ActionGoBack navigates the active tab one step back in history.
	ActionGoBack Action = "go_back"
	// ActionGoForward navigates the active tab one step forward in history.
	ActionGoForward Action = "go_forward"
	// ActionReload reloads the active tab.
	ActionReload Action = "reload"
	// ActionZoomIn increases the active tab's zoom level.
	ActionZoomIn Action = "zoom_in"
	// ActionZoomOut decreases the active tab's zoom level.
	ActionZoomOut Action = "zoom_out"
	// ActionZoomReset restores the active tab's default zoom level.
	ActionZoomReset Action = "zoom_reset"
	// ActionCopyURL copies the active tab's URL to the clipboard.
	ActionCopyURL Action = "copy_url"
	// ActionQuit closes the application.
	ActionQuit Action = "quit"
)

// ActionHandler is called when a registered shortcut fires.
type ActionHandler func(ctx context.Context, action Action) error

// binding pairs a key combination with the action it triggers.
type binding struct {
	keyval    uint
	modifiers gdk.ModifierType
	action    Action
}

// defaultBindings is the fixed shortcut table. Ctrl+= doubles as zoom-in
// so the common layouts don't require Shift for Ctrl++.
var defaultBindings = []binding{
	{uint(gdk.KEY_l), gdk.ControlMaskValue, ActionFocusAddressBar},
	{uint(gdk.KEY_Left), gdk.AltMaskValue, ActionGoBack},
	{uint(gdk.KEY_Right), gdk.AltMaskValue, ActionGoForward},
	{uint(gdk.KEY_r), gdk.ControlMaskValue, ActionReload},
	{uint(gdk.KEY_F5), 0, ActionReload},
	{uint(gdk.KEY_plus), gdk.ControlMaskValue, ActionZoomIn},
	{uint(gdk.KEY_equal), gdk.ControlMaskValue, ActionZoomIn},
	{uint(gdk.KEY_minus), gdk.ControlMaskValue, ActionZoomOut},
	{uint(gdk.KEY_0), gdk.ControlMaskValue, ActionZoomReset},
	{uint(gdk.KEY_c), gdk.ControlMaskValue | gdk.ShiftMaskValue, ActionCopyURL},
	{uint(gdk.KEY_q), gdk.ControlMaskValue, ActionQuit},
}

// GlobalShortcutHandler manages keyboard shortcuts that must work globally,
// even when the WebView has focus. It uses GtkShortcutController with
// GTK_SHORTCUT_SCOPE_GLOBAL to intercept shortcuts before they reach the
// WebView.
type GlobalShortcutHandler struct {
	controller *gtk.ShortcutController
	onAction   ActionHandler
	ctx        context.Context

	// Keep references to callbacks to prevent GC from collecting them
	callbacks []gtk.ShortcutFunc
}

// NewGlobalShortcutHandler creates a handler with the default binding table
// and attaches it to the window.
func NewGlobalShortcutHandler(
	ctx context.Context,
	window *gtk.ApplicationWindow,
	onAction ActionHandler,
) *GlobalShortcutHandler {
	log := logging.FromContext(ctx)

	h := &GlobalShortcutHandler{
		controller: gtk.NewShortcutController(),
		onAction:   onAction,
		ctx:        ctx,
		callbacks:  make([]gtk.ShortcutFunc, 0),
	}

	if h.controller == nil {
		log.Error().Msg("failed to create shortcut controller")
		return nil
	}

	// Global scope is what makes shortcuts fire while the WebView holds
	// keyboard focus.
	h.controller.SetScope(gtk.ShortcutScopeGlobalValue)

	for _, b := range defaultBindings {
		h.registerShortcut(b.keyval, b.modifiers, b.action)
	}

	window.AddController(&h.controller.EventController)

	log.Debug().
		Int("shortcuts", len(h.callbacks)).
		Msg("global shortcut handler created and attached")

	return h
}

// registerShortcut creates and registers a single shortcut with the controller.
func (h *GlobalShortcutHandler) registerShortcut(keyval uint, modifiers gdk.ModifierType, action Action) {
	trigger := gtk.NewKeyvalTrigger(keyval, modifiers)
	if trigger == nil {
		logging.FromContext(h.ctx).Error().
			Uint("keyval", keyval).
			Msg("failed to create keyval trigger")
		return
	}

	actionToDispatch := action
	callback := gtk.ShortcutFunc(func(_ uintptr, _ *glib.Variant, _ uintptr) bool {
		log := logging.FromContext(h.ctx)
		log.Debug().
			Str("action", string(actionToDispatch)).
			Msg("global shortcut triggered")

		if h.onAction != nil {
			if err := h.onAction(h.ctx, actionToDispatch); err != nil {
				log.Error().
					Err(err).
					Str("action", string(actionToDispatch)).
					Msg("global shortcut action failed")
			}
		}
		return true // Event consumed
	})

	// Store callback reference to prevent GC
	h.callbacks = append(h.callbacks, callback)

	shortcutAction := gtk.NewCallbackAction(&callback, 0, nil)
	if shortcutAction == nil {
		logging.FromContext(h.ctx).Error().
			Uint("keyval", keyval).
			Msg("failed to create callback action")
		return
	}

	shortcut := gtk.NewShortcut(&trigger.ShortcutTrigger, &shortcutAction.ShortcutAction)
	if shortcut == nil {
		logging.FromContext(h.ctx).Error().
			Uint("keyval", keyval).
			Msg("failed to create shortcut")
		return
	}

	h.controller.AddShortcut(shortcut)
}

// Detach removes the global shortcut handler from the window.
// GTK frees the controller with the widget; we only clear our references.
func (h *GlobalShortcutHandler) Detach() {
	h.controller = nil
	h.callbacks = nil
}
