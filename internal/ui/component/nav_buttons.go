package component

import (
	"context"
	"sync"

	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/puregotk/v4/gtk"
)

// NavButtons holds the back/forward history buttons.
// Both start disabled; the navigation controller enables them as
// capability query results arrive.
type NavButtons struct {
	box        *gtk.Box
	backBtn    *gtk.Button
	forwardBtn *gtk.Button

	onBack    func()
	onForward func()

	mu  sync.RWMutex
	ctx context.Context

	retainedCallbacks []interface{}
}

// NewNavButtons creates a new NavButtons component.
func NewNavButtons(ctx context.Context) *NavButtons {
	log := logging.FromContext(ctx)

	nb := &NavButtons{ctx: ctx}

	if err := nb.createWidgets(); err != nil {
		log.Error().Err(err).Msg("failed to create navigation buttons")
		return nil
	}

	nb.setupHandlers()

	log.Debug().Msg("navigation buttons created")
	return nb
}

func (nb *NavButtons) createWidgets() error {
	nb.box = gtk.NewBox(gtk.OrientationHorizontalValue, 0)
	if nb.box == nil {
		return errNilWidget("navButtonsBox")
	}
	nb.box.AddCssClass("nav-buttons")

	nb.backBtn = gtk.NewButton()
	if nb.backBtn == nil {
		return errNilWidget("navBackButton")
	}
	nb.backBtn.SetIconName("go-previous-symbolic")
	nb.backBtn.AddCssClass("nav-button")
	nb.backBtn.SetSensitive(false)

	nb.forwardBtn = gtk.NewButton()
	if nb.forwardBtn == nil {
		return errNilWidget("navForwardButton")
	}
	nb.forwardBtn.SetIconName("go-next-symbolic")
	nb.forwardBtn.AddCssClass("nav-button")
	nb.forwardBtn.SetSensitive(false)

	nb.box.Append(&nb.backBtn.Widget)
	nb.box.Append(&nb.forwardBtn.Widget)
	return nil
}

func (nb *NavButtons) setupHandlers() {
	backCb := func(_ gtk.Button) {
		nb.mu.RLock()
		back := nb.onBack
		nb.mu.RUnlock()
		if back != nil {
			back()
		}
	}
	nb.backBtn.ConnectClicked(&backCb)

	forwardCb := func(_ gtk.Button) {
		nb.mu.RLock()
		forward := nb.onForward
		nb.mu.RUnlock()
		if forward != nil {
			forward()
		}
	}
	nb.forwardBtn.ConnectClicked(&forwardCb)

	nb.retainedCallbacks = append(nb.retainedCallbacks, backCb, forwardCb)
}

// SetOnBack sets the callback invoked when the back button is clicked.
func (nb *NavButtons) SetOnBack(fn func()) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.onBack = fn
}

// SetOnForward sets the callback invoked when the forward button is clicked.
func (nb *NavButtons) SetOnForward(fn func()) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.onForward = fn
}

// SetBackEnabled sets whether the back button is clickable.
func (nb *NavButtons) SetBackEnabled(enabled bool) {
	nb.backBtn.SetSensitive(enabled)
}

// SetForwardEnabled sets whether the forward button is clickable.
func (nb *NavButtons) SetForwardEnabled(enabled bool) {
	nb.forwardBtn.SetSensitive(enabled)
}

// Widget returns the root widget for embedding.
func (nb *NavButtons) Widget() *gtk.Widget {
	return &nb.box.Widget
}
