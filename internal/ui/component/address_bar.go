// Package component provides UI components for the browser.
package component

import (
	"context"
	"sync"

	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/puregotk/v4/gtk"
)

// AddressBar is the URL/search entry at the top of the window.
// It raises focus, blur, and submit events; what those mean for the
// displayed text is decided by the navigation controller, not here.
type AddressBar struct {
	box   *gtk.Box
	entry *gtk.SearchEntry

	onFocus  func()
	onBlur   func()
	onSubmit func()

	mu  sync.RWMutex
	ctx context.Context

	retainedCallbacks []interface{}
}

// NewAddressBar creates a new AddressBar component.
func NewAddressBar(ctx context.Context) *AddressBar {
	log := logging.FromContext(ctx)

	ab := &AddressBar{ctx: ctx}

	if err := ab.createWidgets(); err != nil {
		log.Error().Err(err).Msg("failed to create address bar widgets")
		return nil
	}

	ab.setupHandlers()

	log.Debug().Msg("address bar created")
	return ab
}

func (ab *AddressBar) createWidgets() error {
	ab.box = gtk.NewBox(gtk.OrientationHorizontalValue, 0)
	if ab.box == nil {
		return errNilWidget("addressBarBox")
	}
	ab.box.AddCssClass("address-bar")
	ab.box.SetHexpand(true)

	ab.entry = gtk.NewSearchEntry()
	if ab.entry == nil {
		return errNilWidget("addressBarEntry")
	}
	ab.entry.AddCssClass("address-bar-entry")
	ab.entry.SetHexpand(true)
	placeholder := "Search or enter address"
	ab.entry.SetPlaceholderText(&placeholder)

	ab.box.Append(&ab.entry.Widget)
	return nil
}

func (ab *AddressBar) setupHandlers() {
	activateCb := func(_ gtk.SearchEntry) {
		ab.mu.RLock()
		submit := ab.onSubmit
		ab.mu.RUnlock()
		if submit != nil {
			submit()
		}
	}
	ab.entry.ConnectActivate(&activateCb)

	// Focus tracking covers the entry and its internal text widget.
	focusCtrl := gtk.NewEventControllerFocus()
	if focusCtrl == nil {
		return
	}

	enterCb := func(_ gtk.EventControllerFocus) {
		ab.mu.RLock()
		focus := ab.onFocus
		ab.mu.RUnlock()
		if focus != nil {
			focus()
		}
	}
	leaveCb := func(_ gtk.EventControllerFocus) {
		ab.mu.RLock()
		blur := ab.onBlur
		ab.mu.RUnlock()
		if blur != nil {
			blur()
		}
	}
	focusCtrl.ConnectEnter(&enterCb)
	focusCtrl.ConnectLeave(&leaveCb)
	ab.entry.AddController(&focusCtrl.EventController)

	ab.retainedCallbacks = append(ab.retainedCallbacks, activateCb, enterCb, leaveCb)
}

// SetOnFocus sets the callback invoked when the entry gains focus.
func (ab *AddressBar) SetOnFocus(fn func()) {
	ab.mu.Lock()
	defer ab.mu.Unlock()
	ab.onFocus = fn
}

// SetOnBlur sets the callback invoked when the entry loses focus.
func (ab *AddressBar) SetOnBlur(fn func()) {
	ab.mu.Lock()
	defer ab.mu.Unlock()
	ab.onBlur = fn
}

// SetOnSubmit sets the callback invoked when the entry is activated.
func (ab *AddressBar) SetOnSubmit(fn func()) {
	ab.mu.Lock()
	defer ab.mu.Unlock()
	ab.onSubmit = fn
}

// Text returns the currently displayed text.
func (ab *AddressBar) Text() string {
	return ab.entry.GetText()
}

// SetText replaces the displayed text.
func (ab *AddressBar) SetText(text string) {
	ab.entry.SetText(text)
}

// SelectAll places the selection over the full displayed text.
// -1 selects to the end regardless of character count.
func (ab *AddressBar) SelectAll() {
	ab.entry.SelectRegion(0, -1)
}

// GrabFocus moves keyboard focus into the entry. The resulting focus
// event drives the URL swap and selection.
func (ab *AddressBar) GrabFocus() {
	ab.entry.GrabFocus()
}

// Widget returns the root widget for embedding.
func (ab *AddressBar) Widget() *gtk.Widget {
	return &ab.box.Widget
}
