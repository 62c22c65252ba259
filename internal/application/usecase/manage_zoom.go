package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

// ManageZoomUseCase reads and writes per-domain zoom levels. Domains
// without a saved level fall back to the configured default.
type ManageZoomUseCase struct {
	repo        repository.ZoomRepository
	defaultZoom float64
}

func NewManageZoomUseCase(repo repository.ZoomRepository, defaultZoom float64) *ManageZoomUseCase {
	uc := &ManageZoomUseCase{repo: repo}
	uc.SetDefaultZoom(defaultZoom)
	return uc
}

// DefaultZoom returns the fallback zoom level.
func (uc *ManageZoomUseCase) DefaultZoom() float64 {
	return uc.defaultZoom
}

// SetDefaultZoom replaces the fallback level, used on config reload.
// Non-positive values mean the entity default. Main-loop only.
func (uc *ManageZoomUseCase) SetDefaultZoom(level float64) {
	if level <= 0 {
		level = entity.ZoomDefault
	}
	uc.defaultZoom = level
}

// GetZoom returns the zoom for domain, or a fresh level at the default
// when nothing is saved.
func (uc *ManageZoomUseCase) GetZoom(ctx context.Context, domain string) (*entity.ZoomLevel, error) {
	zoom, err := uc.repo.Get(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("get zoom for %s: %w", domain, err)
	}
	if zoom == nil {
		zoom = entity.NewZoomLevel(domain, uc.defaultZoom)
	}
	return zoom, nil
}

// SetZoom saves factor (clamped) for domain.
func (uc *ManageZoomUseCase) SetZoom(ctx context.Context, domain string, factor float64) error {
	zoom := entity.NewZoomLevel(domain, factor)
	if err := uc.repo.Set(ctx, zoom); err != nil {
		return fmt.Errorf("save zoom for %s: %w", domain, err)
	}
	logging.FromContext(ctx).Info().
		Str("domain", domain).Float64("factor", zoom.ZoomFactor).Msg("zoom saved")
	return nil
}

// ResetZoom removes the saved zoom, returning the domain to the default.
func (uc *ManageZoomUseCase) ResetZoom(ctx context.Context, domain string) error {
	if err := uc.repo.Delete(ctx, domain); err != nil {
		return fmt.Errorf("reset zoom for %s: %w", domain, err)
	}
	logging.FromContext(ctx).Info().Str("domain", domain).Msg("zoom reset")
	return nil
}

// ZoomIn steps up from current and persists the result.
func (uc *ManageZoomUseCase) ZoomIn(ctx context.Context, domain string, current float64) (*entity.ZoomLevel, error) {
	return uc.step(ctx, domain, current, +1)
}

// ZoomOut steps down from current and persists the result.
func (uc *ManageZoomUseCase) ZoomOut(ctx context.Context, domain string, current float64) (*entity.ZoomLevel, error) {
	return uc.step(ctx, domain, current, -1)
}

func (uc *ManageZoomUseCase) step(ctx context.Context, domain string, current float64, direction int) (*entity.ZoomLevel, error) {
	zoom := entity.NewZoomLevel(domain, current)
	if direction > 0 {
		zoom.ZoomIn()
	} else {
		zoom.ZoomOut()
	}

	logging.FromContext(ctx).Debug().
		Str("domain", domain).
		Float64("from", current).
		Float64("to", zoom.ZoomFactor).
		Msg("stepping zoom")

	if err := uc.repo.Set(ctx, zoom); err != nil {
		return nil, fmt.Errorf("save zoom for %s: %w", domain, err)
	}
	return zoom, nil
}

// ApplyToTab pushes the domain's saved (or default) zoom onto tab.
func (uc *ManageZoomUseCase) ApplyToTab(ctx context.Context, tab port.Tab, domain string) error {
	zoom, err := uc.GetZoom(ctx, domain)
	if err != nil {
		return err
	}
	if err := tab.SetZoomLevel(ctx, zoom.ZoomFactor); err != nil {
		return fmt.Errorf("apply zoom to tab: %w", err)
	}
	return nil
}

// GetAll lists every saved zoom level.
func (uc *ManageZoomUseCase) GetAll(ctx context.Context) ([]*entity.ZoomLevel, error) {
	levels, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zoom levels: %w", err)
	}
	return levels, nil
}

// ExtractDomain returns the host of rawURL; pages without a host
// (about:blank and friends) get an error, which callers treat as "no
// persisted zoom".
func ExtractDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL has no host: %s", rawURL)
	}
	return u.Host, nil
}
