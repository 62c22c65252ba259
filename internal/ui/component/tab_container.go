package component

import (
	"context"
	"sync"

	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/puregotk/v4/gtk"
)

// TabContainer is the display area a Tab's rendering surface is mounted
// into. Until the first mount it shows an empty-state placeholder, marked
// with the "content-empty" CSS class.
type TabContainer struct {
	box         *gtk.Box
	placeholder *gtk.Label
	current     *gtk.Widget

	mu  sync.Mutex
	ctx context.Context
}

// NewTabContainer creates a new TabContainer showing the empty placeholder.
func NewTabContainer(ctx context.Context) *TabContainer {
	log := logging.FromContext(ctx)

	tc := &TabContainer{ctx: ctx}

	if err := tc.createWidgets(); err != nil {
		log.Error().Err(err).Msg("failed to create tab container")
		return nil
	}

	log.Debug().Msg("tab container created")
	return tc
}

func (tc *TabContainer) createWidgets() error {
	tc.box = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if tc.box == nil {
		return errNilWidget("tabContainerBox")
	}
	tc.box.AddCssClass("tab-container")
	tc.box.AddCssClass("content-empty")
	tc.box.SetHexpand(true)
	tc.box.SetVexpand(true)

	tc.placeholder = gtk.NewLabel(nil)
	if tc.placeholder == nil {
		return errNilWidget("tabContainerPlaceholder")
	}
	tc.placeholder.SetText("Enter an address to start browsing")
	tc.placeholder.AddCssClass("empty-placeholder")
	tc.placeholder.SetHexpand(true)
	tc.placeholder.SetVexpand(true)

	tc.box.Append(&tc.placeholder.Widget)
	return nil
}

// Mount embeds the Tab's rendering surface, replacing the empty
// placeholder on first mount or the previous surface on later mounts.
func (tc *TabContainer) Mount(widget uintptr) {
	if widget == 0 {
		return
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	w := gtk.WidgetNewFromInternalPtr(widget)

	if tc.current != nil {
		tc.box.Remove(tc.current)
	} else if tc.placeholder != nil {
		tc.box.Remove(&tc.placeholder.Widget)
		tc.box.RemoveCssClass("content-empty")
	}

	tc.box.Append(w)
	w.SetVisible(true)
	tc.current = w

	logging.FromContext(tc.ctx).Debug().Msg("tab surface mounted")
}

// IsEmpty returns true if no Tab has been mounted yet.
func (tc *TabContainer) IsEmpty() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.current == nil
}

// Widget returns the root widget for embedding.
func (tc *TabContainer) Widget() *gtk.Widget {
	return &tc.box.Widget
}
