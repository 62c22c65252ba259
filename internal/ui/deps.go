// Package ui provides the GTK4 presentation layer for the dimmer browser.
package ui

import (
	"context"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/config"
)

// Dependencies is the wiring for the UI layer, assembled once at startup.
type Dependencies struct {
	Ctx        context.Context
	Config     *config.Config
	InitialURL string // URL or query to open on startup (optional)

	TabFactory port.TabFactory

	ResolveUC *usecase.ResolveDestinationUseCase
	ZoomUC    *usecase.ManageZoomUseCase
}

// Validate reports the first missing required dependency.
// ZoomUC is not checked: zoom persistence degrades gracefully without it.
func (d *Dependencies) Validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"Ctx", d.Ctx != nil},
		{"Config", d.Config != nil},
		{"TabFactory", d.TabFactory != nil},
		{"ResolveUC", d.ResolveUC != nil},
	}
	for _, r := range required {
		if !r.ok {
			return DependencyError{Name: r.name}
		}
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}
