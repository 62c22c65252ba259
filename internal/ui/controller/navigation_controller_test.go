package controller_test

import (
	"context"
	"testing"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/dimmer/internal/ui/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTab is a scripted port.Tab. Lifecycle events are fired manually and
// capability queries queue their resolutions until the test flushes them,
// mirroring the asynchronous delivery of the real implementation.
type fakeTab struct {
	id    port.TabID
	uri   string
	title string

	canGoBack    bool
	canGoForward bool

	navigations  []string
	reloads      int
	backCalls    int
	forwardCalls int

	locationSubs map[int]func(string)
	titleSubs    map[int]func(string)
	loadSubs     map[int]func()
	nextSubID    int

	pendingResolutions []func()

	destroyed bool
}

func newFakeTab(id port.TabID, uri, title string) *fakeTab {
	return &fakeTab{
		id:           id,
		uri:          uri,
		title:        title,
		locationSubs: make(map[int]func(string)),
		titleSubs:    make(map[int]func(string)),
		loadSubs:     make(map[int]func()),
	}
}

func (t *fakeTab) ID() port.TabID { return t.id }

func (t *fakeTab) Navigate(_ context.Context, url string) error {
	t.navigations = append(t.navigations, url)
	return nil
}

func (t *fakeTab) Reload(_ context.Context) error {
	t.reloads++
	return nil
}

func (t *fakeTab) GoBack(_ context.Context) error {
	t.backCalls++
	return nil
}

func (t *fakeTab) GoForward(_ context.Context) error {
	t.forwardCalls++
	return nil
}

func (t *fakeTab) URI() string   { return t.uri }
func (t *fakeTab) Title() string { return t.title }

func (t *fakeTab) CanGoBack(_ context.Context, resolve func(bool)) {
	t.pendingResolutions = append(t.pendingResolutions, func() { resolve(t.canGoBack) })
}

func (t *fakeTab) CanGoForward(_ context.Context, resolve func(bool)) {
	t.pendingResolutions = append(t.pendingResolutions, func() { resolve(t.canGoForward) })
}

func (t *fakeTab) OnLocationChanged(fn func(string)) port.Subscription {
	t.nextSubID++
	id := t.nextSubID
	t.locationSubs[id] = fn
	return fakeSub{cancel: func() { delete(t.locationSubs, id) }}
}

func (t *fakeTab) OnTitleChanged(fn func(string)) port.Subscription {
	t.nextSubID++
	id := t.nextSubID
	t.titleSubs[id] = fn
	return fakeSub{cancel: func() { delete(t.titleSubs, id) }}
}

func (t *fakeTab) OnLoadFinished(fn func()) port.Subscription {
	t.nextSubID++
	id := t.nextSubID
	t.loadSubs[id] = fn
	return fakeSub{cancel: func() { delete(t.loadSubs, id) }}
}

func (t *fakeTab) SetZoomLevel(_ context.Context, _ float64) error { return nil }
func (t *fakeTab) GetZoomLevel() float64                           { return 1.0 }
func (t *fakeTab) Widget() uintptr                                 { return uintptr(t.id) }
func (t *fakeTab) IsDestroyed() bool                               { return t.destroyed }
func (t *fakeTab) Destroy()                                        { t.destroyed = true }

// fireLocationChanged updates the canonical URI and notifies subscribers.
func (t *fakeTab) fireLocationChanged(uri string) {
	t.uri = uri
	for _, fn := range t.locationSubs {
		fn(uri)
	}
}

// fireTitleChanged updates the canonical title and notifies subscribers.
func (t *fakeTab) fireTitleChanged(title string) {
	t.title = title
	for _, fn := range t.titleSubs {
		fn(title)
	}
}

func (t *fakeTab) fireLoadFinished() {
	for _, fn := range t.loadSubs {
		fn()
	}
}

// flushResolutions delivers all queued capability query results in order.
func (t *fakeTab) flushResolutions() {
	pending := t.pendingResolutions
	t.pendingResolutions = nil
	for _, fn := range pending {
		fn()
	}
}

type fakeSub struct{ cancel func() }

func (s fakeSub) Cancel() { s.cancel() }

type fakeAddressBar struct {
	text     string
	selected bool
	setTexts []string
}

func (b *fakeAddressBar) Text() string { return b.text }

func (b *fakeAddressBar) SetText(text string) {
	b.text = text
	b.selected = false
	b.setTexts = append(b.setTexts, text)
}

func (b *fakeAddressBar) SelectAll() { b.selected = true }

type fakeNavButtons struct {
	backEnabled    bool
	forwardEnabled bool
	backWrites     int
	forwardWrites  int
}

func (b *fakeNavButtons) SetBackEnabled(enabled bool) {
	b.backEnabled = enabled
	b.backWrites++
}

func (b *fakeNavButtons) SetForwardEnabled(enabled bool) {
	b.forwardEnabled = enabled
	b.forwardWrites++
}

type fakeContainer struct {
	mounted []uintptr
}

func (c *fakeContainer) Mount(widget uintptr) {
	c.mounted = append(c.mounted, widget)
}

type fakeFactory struct {
	nextID      uint64
	createdURLs []string
	tabs        []*fakeTab
}

func (f *fakeFactory) Create(_ context.Context, url string) (port.Tab, error) {
	f.nextID++
	tab := newFakeTab(port.TabID(f.nextID), url, "")
	f.createdURLs = append(f.createdURLs, url)
	f.tabs = append(f.tabs, tab)
	return tab, nil
}

func navTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.DefaultSearchEngine = "https://search.example/?q={query}"
	return cfg
}

type testHarness struct {
	ctx       context.Context
	nc        *controller.NavigationController
	bar       *fakeAddressBar
	buttons   *fakeNavButtons
	container *fakeContainer
	factory   *fakeFactory
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	logger := logging.NewFromConfigValues("debug", "console")
	ctx := logging.WithContext(context.Background(), logger)

	bar := &fakeAddressBar{}
	buttons := &fakeNavButtons{}
	cont := &fakeContainer{}
	factory := &fakeFactory{}
	resolver := usecase.NewResolveDestinationUseCase(navTestConfig())

	nc := controller.NewNavigationController(ctx, bar, buttons, cont, factory, resolver)

	return &testHarness{
		ctx:       ctx,
		nc:        nc,
		bar:       bar,
		buttons:   buttons,
		container: cont,
		factory:   factory,
	}
}

// attachTab wires a prepared fake Tab as the active Tab.
func (h *testHarness) attachTab(tab *fakeTab) {
	h.nc.AttachTab(h.ctx, tab)
}

func TestFocusShowsURLWithSelection(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com/some/page", "Example Page")
	h.attachTab(tab)
	h.bar.text = "Example Page"

	h.nc.HandleFocus()

	assert.Equal(t, "https://example.com/some/page", h.bar.text)
	assert.True(t, h.bar.selected, "full text should be selected for one-keystroke replacement")
}

func TestFocusWithoutTabLeavesTextAlone(t *testing.T) {
	h := newTestHarness(t)
	h.bar.text = "half-typed query"

	h.nc.HandleFocus()

	assert.Equal(t, "half-typed query", h.bar.text)
	assert.Empty(t, h.bar.setTexts, "no display writes without a tab")
}

func TestBlurRestoresTitleAndCachesText(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Example")
	h.attachTab(tab)

	h.nc.HandleFocus()
	h.bar.text = "https://edited.example  " // user edit, trailing spaces intact
	h.nc.HandleBlur()

	assert.Equal(t, "Example", h.bar.text)
	assert.Equal(t, "https://edited.example  ", h.nc.PendingText(), "pre-blur text cached verbatim")
}

func TestBlurWithoutTabKeepsUserText(t *testing.T) {
	h := newTestHarness(t)
	h.bar.text = "not submitted yet"

	h.nc.HandleBlur()

	assert.Equal(t, "not submitted yet", h.bar.text)
	assert.Equal(t, "not submitted yet", h.nc.PendingText())
}

func TestEmptySubmitIsNoOp(t *testing.T) {
	h := newTestHarness(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		h.bar.text = text
		h.nc.HandleSubmit()
	}

	assert.Nil(t, h.nc.ActiveTab(), "no tab created")
	assert.Empty(t, h.factory.createdURLs)
	assert.Empty(t, h.container.mounted)
	assert.Empty(t, h.nc.PendingText(), "whitespace submit must not commit text")
}

func TestFirstSubmitOpensTabOnURL(t *testing.T) {
	h := newTestHarness(t)
	h.bar.text = "example.com"

	h.nc.HandleSubmit()

	require.Len(t, h.factory.createdURLs, 1)
	assert.Equal(t, "https://example.com", h.factory.createdURLs[0], "bare domain resolves as a URL, not a search")
	require.NotNil(t, h.nc.ActiveTab())
	assert.Len(t, h.container.mounted, 1, "tab surface mounted into the container")
}

func TestFirstSubmitFallsBackToSearch(t *testing.T) {
	h := newTestHarness(t)
	h.bar.text = "hello world"

	h.nc.HandleSubmit()

	require.Len(t, h.factory.createdURLs, 1)
	// The query lands in the template verbatim, spaces included.
	assert.Equal(t, "https://search.example/?q=hello world", h.factory.createdURLs[0])
	assert.Len(t, h.container.mounted, 1)
}

func TestUnchangedResubmitReloads(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com/page", "Example")
	h.attachTab(tab)
	h.bar.text = "Example"

	// Focus then blur without edits: the bar round-trips URL -> title.
	h.nc.HandleFocus()
	h.nc.HandleBlur()
	require.Equal(t, "Example", h.bar.text)

	h.nc.HandleSubmit()

	assert.Equal(t, 1, tab.reloads, "unchanged resubmit reloads in place")
	assert.Empty(t, tab.navigations, "reload must not push a history entry")
}

func TestEditedSubmitNavigatesFresh(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com/page", "Example")
	h.attachTab(tab)

	h.nc.HandleFocus()
	h.bar.text = "https://other.example/path"
	h.nc.HandleSubmit()

	assert.Equal(t, []string{"https://other.example/path"}, tab.navigations)
	assert.Zero(t, tab.reloads, "edited text must navigate, not reload")
	assert.Len(t, h.factory.createdURLs, 0, "existing tab is reused")
}

func TestSubmitSearchOnExistingTab(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Example")
	h.attachTab(tab)

	h.bar.text = "how do magnets work"
	h.nc.HandleSubmit()

	assert.Equal(t, []string{"https://search.example/?q=how do magnets work"}, tab.navigations)
}

func TestBackForwardWithoutTabIsNoOp(t *testing.T) {
	h := newTestHarness(t)

	h.nc.HandleBack()
	h.nc.HandleForward()

	assert.Nil(t, h.nc.ActiveTab())
	assert.Zero(t, h.buttons.backWrites)
	assert.Zero(t, h.buttons.forwardWrites)
}

func TestBackForwardDelegateToTab(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Example")
	h.attachTab(tab)

	h.nc.HandleBack()
	h.nc.HandleBack()
	h.nc.HandleForward()

	assert.Equal(t, 2, tab.backCalls)
	assert.Equal(t, 1, tab.forwardCalls)
}

func TestLoadFinishedRefreshesButtons(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Example")
	tab.canGoBack = true
	tab.canGoForward = false
	h.attachTab(tab)

	tab.fireLoadFinished()
	require.Len(t, tab.pendingResolutions, 2, "two independent capability queries issued")
	tab.flushResolutions()

	assert.True(t, h.buttons.backEnabled)
	assert.False(t, h.buttons.forwardEnabled)
	assert.Equal(t, 1, h.buttons.backWrites)
	assert.Equal(t, 1, h.buttons.forwardWrites)
}

func TestStaleCapabilityResolutionIgnored(t *testing.T) {
	h := newTestHarness(t)
	stale := newFakeTab(1, "https://old.example", "Old")
	stale.canGoBack = true
	stale.canGoForward = true
	h.attachTab(stale)

	// Queries issued against the first tab, then the tab is replaced
	// before they resolve.
	stale.fireLoadFinished()
	require.Len(t, stale.pendingResolutions, 2)

	replacement := newFakeTab(2, "https://new.example", "New")
	h.attachTab(replacement)

	stale.flushResolutions()

	assert.Zero(t, h.buttons.backWrites, "stale resolution must not touch button state")
	assert.Zero(t, h.buttons.forwardWrites)
	assert.False(t, h.buttons.backEnabled)

	// The replacement tab's own queries still land.
	replacement.canGoBack = true
	replacement.fireLoadFinished()
	replacement.flushResolutions()
	assert.True(t, h.buttons.backEnabled)
}

func TestLocationChangeUpdatesPendingTextOnly(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Example")
	h.attachTab(tab)
	h.bar.text = "Example"

	tab.fireLocationChanged("https://example.com/redirected")

	assert.Equal(t, "https://example.com/redirected", h.nc.PendingText())
	assert.Equal(t, "Example", h.bar.text, "visible text untouched until next focus")

	// The next focus shows the new canonical URL.
	h.nc.HandleFocus()
	assert.Equal(t, "https://example.com/redirected", h.bar.text)
}

func TestTitleChangeUpdatesUnfocusedDisplay(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Loading")
	h.attachTab(tab)
	h.bar.text = "Loading"

	tab.fireTitleChanged("Example Domain")

	assert.Equal(t, "Example Domain", h.bar.text)
}

func TestTitleChangeSkippedWhileEditing(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Loading")
	h.attachTab(tab)

	h.nc.HandleFocus()
	h.bar.text = "user is typing"
	tab.fireTitleChanged("Example Domain")

	assert.Equal(t, "user is typing", h.bar.text, "title update must not clobber an edit in progress")

	// Blur ends the edit; a further title update shows again.
	h.nc.HandleBlur()
	tab.fireTitleChanged("Example Domain Final")
	assert.Equal(t, "Example Domain Final", h.bar.text)
}

func TestSubmitLeavesEditingState(t *testing.T) {
	h := newTestHarness(t)
	tab := newFakeTab(1, "https://example.com", "Example")
	h.attachTab(tab)

	h.nc.HandleFocus()
	h.bar.text = "https://other.example"
	h.nc.HandleSubmit()

	// After submit the bar is back in displaying state: the next page's
	// title lands in it even though no blur event fired.
	tab.fireTitleChanged("Other Site")
	assert.Equal(t, "Other Site", h.bar.text)
}

func TestEventsFromReplacedTabIgnored(t *testing.T) {
	h := newTestHarness(t)
	old := newFakeTab(1, "https://old.example", "Old")
	h.attachTab(old)

	replacement := newFakeTab(2, "https://new.example", "New")
	h.attachTab(replacement)
	h.bar.text = "New"
	h.nc.HandleBlur()
	require.Equal(t, "New", h.bar.text)

	old.fireTitleChanged("Old Ghost")
	old.fireLocationChanged("https://old.example/ghost")

	assert.Equal(t, "New", h.bar.text)
	assert.NotEqual(t, "https://old.example/ghost", h.nc.PendingText())
}

func TestOpenURLNotifiesAttachCallback(t *testing.T) {
	h := newTestHarness(t)

	var attached port.Tab
	h.nc.SetOnTabAttached(func(tab port.Tab) { attached = tab })

	require.NoError(t, h.nc.OpenURL(h.ctx, "example.org"))

	require.NotNil(t, attached)
	assert.Equal(t, attached, h.nc.ActiveTab())
	assert.Equal(t, []string{"https://example.org"}, h.factory.createdURLs)
}
