package entity

import "time"

// Zoom bounds. WebKit misrenders outside roughly this range, so factors
// are clamped on every mutation rather than validated at the edges.
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25
	ZoomMax     = 5.0
	ZoomStep    = 0.1
)

// ZoomLevel is the persisted zoom factor for one domain. 1.0 means 100%.
type ZoomLevel struct {
	Domain     string
	ZoomFactor float64
	UpdatedAt  time.Time
}

// NewZoomLevel creates a zoom level for domain, clamped to the valid range.
func NewZoomLevel(domain string, factor float64) *ZoomLevel {
	z := &ZoomLevel{Domain: domain}
	z.SetFactor(factor)
	return z
}

// SetFactor stores a clamped factor and refreshes the timestamp.
func (z *ZoomLevel) SetFactor(factor float64) {
	switch {
	case factor < ZoomMin:
		factor = ZoomMin
	case factor > ZoomMax:
		factor = ZoomMax
	}
	z.ZoomFactor = factor
	z.UpdatedAt = time.Now()
}

// ZoomIn steps the factor up by ZoomStep.
func (z *ZoomLevel) ZoomIn() { z.SetFactor(z.ZoomFactor + ZoomStep) }

// ZoomOut steps the factor down by ZoomStep.
func (z *ZoomLevel) ZoomOut() { z.SetFactor(z.ZoomFactor - ZoomStep) }

// Reset returns the factor to ZoomDefault.
func (z *ZoomLevel) Reset() { z.SetFactor(ZoomDefault) }

// IsDefault reports whether the factor is exactly ZoomDefault.
func (z *ZoomLevel) IsDefault() bool { return z.ZoomFactor == ZoomDefault }

// Percentage renders the factor for display, e.g. 1.5 becomes 150.
func (z *ZoomLevel) Percentage() int { return int(z.ZoomFactor * 100) }
