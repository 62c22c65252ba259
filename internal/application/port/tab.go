// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
)

// TabID uniquely identifies a Tab instance.
// IDs are assigned from a process-wide monotonic counter at creation time.
// Comparing IDs therefore doubles as a generation check: an asynchronous
// result tagged with an older ID can never be confused with one from the
// currently active Tab, without relying on pointer identity.
type TabID uint64

// Subscription is a handle to a lifecycle event subscription on a Tab.
type Subscription interface {
	// Cancel removes the subscription. Safe to call multiple times;
	// calls after the first are no-ops.
	Cancel()
}

// Tab defines the port interface for the navigable-page abstraction.
// A Tab owns its URL, title, and navigation history, and renders into a
// mountable widget. All callbacks (lifecycle events and capability query
// resolutions) are invoked on the main thread/goroutine.
type Tab interface {
	// ID returns the unique identifier for this Tab.
	ID() TabID

	// --- Navigation ---

	// Navigate loads the given URL, pushing a new history entry.
	// Completion is signaled via lifecycle events, not the return value.
	Navigate(ctx context.Context, url string) error

	// Reload re-fetches the current URL without creating a history entry.
	Reload(ctx context.Context) error

	// GoBack steps back in history. No-op if not navigable.
	GoBack(ctx context.Context) error

	// GoForward steps forward in history. No-op if not navigable.
	GoForward(ctx context.Context) error

	// --- State Queries ---

	// URI returns the canonical current address.
	URI() string

	// Title returns the canonical current page title.
	Title() string

	// --- Capability Queries ---

	// CanGoBack asynchronously checks whether back navigation is possible.
	// The resolve callback is invoked exactly once, on the main loop,
	// possibly after further lifecycle events have been processed. Callers
	// that mutate shared state in resolve must re-check that the answering
	// Tab is still the one they care about.
	CanGoBack(ctx context.Context, resolve func(canGoBack bool))

	// CanGoForward asynchronously checks whether forward navigation is
	// possible. Same delivery contract as CanGoBack.
	CanGoForward(ctx context.Context, resolve func(canGoForward bool))

	// --- Lifecycle Events ---

	// OnLocationChanged registers a callback for canonical URL changes.
	OnLocationChanged(fn func(uri string)) Subscription

	// OnTitleChanged registers a callback for canonical title changes.
	OnTitleChanged(fn func(title string)) Subscription

	// OnLoadFinished registers a callback invoked when a navigation
	// settles and history state becomes queryable.
	OnLoadFinished(fn func()) Subscription

	// --- Zoom ---

	// SetZoomLevel sets the zoom level (1.0 = 100%).
	SetZoomLevel(ctx context.Context, level float64) error

	// GetZoomLevel returns the current zoom level.
	GetZoomLevel() float64

	// --- Lifecycle ---

	// Widget returns the native pointer of the Tab's rendering surface
	// for mounting into a container.
	Widget() uintptr

	// IsDestroyed returns true if the Tab has been destroyed.
	IsDestroyed() bool

	// Destroy releases all resources associated with this Tab.
	// After calling Destroy, the Tab should not be used.
	Destroy()
}

// TabFactory creates new Tab instances.
type TabFactory interface {
	// Create creates a new Tab and starts loading the given URL.
	Create(ctx context.Context, url string) (Tab, error)
}
