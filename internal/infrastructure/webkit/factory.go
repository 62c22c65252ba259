package webkit

import (
	"context"
	"fmt"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/logging"
)

// Factory creates WebKit-backed Tabs for the application.
type Factory struct {
	defaultZoom float64
}

// NewFactory creates a Tab factory. defaultZoom is applied to every new
// Tab before the per-domain zoom (if any) overrides it.
func NewFactory(defaultZoom float64) *Factory {
	return &Factory{defaultZoom: defaultZoom}
}

// Create creates a new Tab and starts loading the given URL.
// An empty URL creates an unnavigated Tab.
func (f *Factory) Create(ctx context.Context, url string) (port.Tab, error) {
	log := logging.FromContext(ctx)

	t, err := NewTab(ctx)
	if err != nil {
		return nil, fmt.Errorf("create tab: %w", err)
	}

	if f.defaultZoom > 0 {
		if err := t.SetZoomLevel(ctx, f.defaultZoom); err != nil {
			log.Warn().Err(err).Uint64("tab_id", uint64(t.ID())).Msg("failed to apply default zoom")
		}
	}

	if url != "" {
		if err := t.Navigate(ctx, url); err != nil {
			t.Destroy()
			return nil, fmt.Errorf("initial navigation: %w", err)
		}
	}

	log.Debug().
		Uint64("tab_id", uint64(t.ID())).
		Str("url", url).
		Msg("created tab")
	return t, nil
}
