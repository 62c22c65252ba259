// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dimmer/internal/config"
	"github.com/bnema/dimmer/internal/logging"
	"github.com/bnema/dimmer/internal/parser"
)

// ResolveDestinationUseCase turns raw address-bar text into a navigable URL.
// Direct URLs pass through verbatim (with scheme normalization); everything
// else resolves through a search shortcut or the default search engine, so
// resolution never fails for malformed input.
type ResolveDestinationUseCase struct {
	parser *parser.Parser
}

// NewResolveDestinationUseCase creates a new destination resolution use case.
func NewResolveDestinationUseCase(cfg *config.Config) *ResolveDestinationUseCase {
	return &ResolveDestinationUseCase{
		parser: parser.NewParser(cfg),
	}
}

// Resolve parses the input and returns the destination to navigate to.
func (uc *ResolveDestinationUseCase) Resolve(ctx context.Context, input string) (*parser.ParseResult, error) {
	log := logging.FromContext(ctx)

	result, err := uc.parser.ParseInput(input)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	log.Debug().
		Str("type", result.Type.String()).
		Str("url", result.URL).
		Msg("resolved destination")

	return result, nil
}

// IsDirectURL reports whether the input would resolve as a URL rather than
// a search. Exposed for UI affordances (e.g. styling the address bar).
func (uc *ResolveDestinationUseCase) IsDirectURL(input string) bool {
	return parser.IsDirectURL(parser.Sanitize(input))
}
