package webkit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/bnema/puregotk/v4/glib"
	"github.com/bnema/puregotk/v4/gobject"
	"github.com/rs/zerolog"
)

// tabCounter assigns process-wide monotonic Tab IDs. IDs are never reused,
// so an ID comparison is sufficient to detect that a Tab was replaced.
var tabCounter atomic.Uint64

// Tab wraps webkit.WebView and implements port.Tab.
//
// WebKit delivers signals on the GTK main loop; Tab caches the URI and
// title from those signals so state queries never touch the C side from
// an arbitrary goroutine.
type Tab struct {
	id    port.TabID
	inner *webkit.WebView

	destroyed atomic.Bool

	// State (protected by mutex)
	mu    sync.RWMutex
	uri   string
	title string

	// Event fan-out to port.Tab subscribers
	locationChanged signalHub[string]
	titleChanged    signalHub[string]
	loadFinished    signalHub[struct{}]

	// Signal handler IDs for disconnection
	signalIDs []uint32

	// asyncCallbacks keeps references to idle-source callbacks to prevent GC
	asyncCallbacks []interface{}

	logger zerolog.Logger
}

// NewTab creates a Tab backed by a fresh WebKit web view.
func NewTab(ctx context.Context) (*Tab, error) {
	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("failed to create webkit webview")
	}

	t := &Tab{
		id:        port.TabID(tabCounter.Add(1)),
		inner:     inner,
		logger:    logging.FromContext(ctx).With().Str("component", "tab").Logger(),
		signalIDs: make([]uint32, 0, 3),
	}

	// The web view fills whatever container it is mounted into.
	t.inner.SetHexpand(true)
	t.inner.SetVexpand(true)

	t.connectSignals()

	t.logger.Debug().Uint64("tab_id", uint64(t.id)).Msg("tab created")
	return t, nil
}

// connectSignals sets up signal handlers for the web view.
func (t *Tab) connectSignals() {
	// notify::uri fires on every canonical address change, including
	// redirects and history traversal.
	uriCb := func(_ gobject.Object, _ uintptr) {
		uri := t.inner.GetUri()
		t.mu.Lock()
		t.uri = uri
		t.mu.Unlock()
		t.locationChanged.dispatch(uri)
	}
	sigID := t.inner.ConnectNotifyWithDetail("uri", &uriCb)
	t.signalIDs = append(t.signalIDs, sigID)

	// notify::title typically fires after load-finished, once the parser
	// has seen the document <title>.
	titleCb := func(_ gobject.Object, _ uintptr) {
		title := t.inner.GetTitle()
		t.mu.Lock()
		t.title = title
		t.mu.Unlock()
		t.titleChanged.dispatch(title)
	}
	sigID = t.inner.ConnectNotifyWithDetail("title", &titleCb)
	t.signalIDs = append(t.signalIDs, sigID)

	// load-changed: only the finished state is surfaced through the port;
	// that is the point where session history becomes queryable.
	loadChangedCb := func(inner webkit.WebView, event webkit.LoadEvent) {
		if event != webkit.LoadFinishedValue {
			return
		}
		t.mu.Lock()
		t.uri = inner.GetUri()
		t.title = inner.GetTitle()
		t.mu.Unlock()
		t.loadFinished.dispatch(struct{}{})
	}
	sigID = t.inner.ConnectLoadChanged(&loadChangedCb)
	t.signalIDs = append(t.signalIDs, sigID)
}

// ID returns the unique identifier for this Tab.
func (t *Tab) ID() port.TabID {
	return t.id
}

// Navigate loads the given URL, pushing a new session history entry.
func (t *Tab) Navigate(ctx context.Context, url string) error {
	if t.destroyed.Load() {
		return fmt.Errorf("tab %d is destroyed", t.id)
	}
	t.inner.LoadUri(url)
	logging.FromContext(ctx).Debug().
		Uint64("tab_id", uint64(t.id)).
		Str("url", url).
		Msg("navigating")
	return nil
}

// Reload re-fetches the current page without adding a history entry.
func (t *Tab) Reload(ctx context.Context) error {
	if t.destroyed.Load() {
		return fmt.Errorf("tab %d is destroyed", t.id)
	}
	t.inner.Reload()
	logging.FromContext(ctx).Debug().
		Uint64("tab_id", uint64(t.id)).
		Msg("reloading")
	return nil
}

// GoBack steps back in session history. No-op when there is nowhere to go.
func (t *Tab) GoBack(ctx context.Context) error {
	if t.destroyed.Load() {
		return fmt.Errorf("tab %d is destroyed", t.id)
	}
	if !t.inner.CanGoBack() {
		return nil
	}
	t.inner.GoBack()
	return nil
}

// GoForward steps forward in session history. No-op when there is nowhere to go.
func (t *Tab) GoForward(ctx context.Context) error {
	if t.destroyed.Load() {
		return fmt.Errorf("tab %d is destroyed", t.id)
	}
	if !t.inner.CanGoForward() {
		return nil
	}
	t.inner.GoForward()
	return nil
}

// URI returns the cached canonical address.
func (t *Tab) URI() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.uri
}

// Title returns the cached page title.
func (t *Tab) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// CanGoBack resolves whether back navigation is possible.
// WebKit answers the underlying query synchronously, but delivery goes
// through an idle source: resolve never runs before CanGoBack returns,
// and always on the main loop.
func (t *Tab) CanGoBack(ctx context.Context, resolve func(canGoBack bool)) {
	t.queryHistory(resolve, t.inner.CanGoBack)
}

// CanGoForward resolves whether forward navigation is possible.
// Same delivery contract as CanGoBack.
func (t *Tab) CanGoForward(ctx context.Context, resolve func(canGoForward bool)) {
	t.queryHistory(resolve, t.inner.CanGoForward)
}

func (t *Tab) queryHistory(resolve func(bool), query func() bool) {
	cb := glib.SourceFunc(func(_ uintptr) bool {
		if t.destroyed.Load() {
			resolve(false)
			return false
		}
		resolve(query())
		return false
	})

	// prevent callback from being GC'd before it's called
	t.mu.Lock()
	t.asyncCallbacks = append(t.asyncCallbacks, cb)
	t.mu.Unlock()

	glib.IdleAdd(&cb, 0)
}

// OnLocationChanged registers a callback for canonical URL changes.
func (t *Tab) OnLocationChanged(fn func(uri string)) port.Subscription {
	return t.locationChanged.add(fn)
}

// OnTitleChanged registers a callback for canonical title changes.
func (t *Tab) OnTitleChanged(fn func(title string)) port.Subscription {
	return t.titleChanged.add(fn)
}

// OnLoadFinished registers a callback invoked when a navigation settles.
func (t *Tab) OnLoadFinished(fn func()) port.Subscription {
	return t.loadFinished.add(func(struct{}) { fn() })
}

// SetZoomLevel sets the zoom level (1.0 = 100%).
func (t *Tab) SetZoomLevel(ctx context.Context, level float64) error {
	if t.destroyed.Load() {
		return fmt.Errorf("tab %d is destroyed", t.id)
	}
	t.inner.SetZoomLevel(level)
	return nil
}

// GetZoomLevel returns the current zoom level.
func (t *Tab) GetZoomLevel() float64 {
	if t.destroyed.Load() {
		return 1.0
	}
	return t.inner.GetZoomLevel()
}

// Widget returns the native pointer of the web view for GTK embedding.
func (t *Tab) Widget() uintptr {
	return t.inner.GoPointer()
}

// IsDestroyed returns true if the Tab has been destroyed.
func (t *Tab) IsDestroyed() bool {
	return t.destroyed.Load()
}

// Destroy drops all subscribers and marks the Tab unusable.
// The GTK widget itself is released by its parent container.
func (t *Tab) Destroy() {
	if t.destroyed.Swap(true) {
		return // Already destroyed
	}

	t.locationChanged.clear()
	t.titleChanged.clear()
	t.loadFinished.clear()

	t.logger.Debug().Uint64("tab_id", uint64(t.id)).Msg("tab destroyed")
}
