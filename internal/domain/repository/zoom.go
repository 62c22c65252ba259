// Package repository declares persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/dimmer/internal/domain/entity"
)

// ZoomRepository persists per-domain zoom levels.
//
//go:generate mockgen -source=zoom.go -destination=mocks/zoom_mock.go -package=mocks
type ZoomRepository interface {
	// Get returns the saved zoom for domain, or nil when the domain has
	// no custom zoom.
	Get(ctx context.Context, domain string) (*entity.ZoomLevel, error)

	// Set inserts or updates the zoom for level.Domain.
	Set(ctx context.Context, level *entity.ZoomLevel) error

	// Delete drops the custom zoom for domain.
	Delete(ctx context.Context, domain string) error

	// GetAll lists every saved zoom level.
	GetAll(ctx context.Context) ([]*entity.ZoomLevel, error)
}
