package port

import (
	"context"

	"github.com/bnema/omnitab/internal/domain/entity"
)

// SearchConfigProvider supplies search engine and homepage settings.
// Every method may fail; callers fall back to built-in defaults.
type SearchConfigProvider interface {
	// DefaultEngineTemplate returns the current engine's query template.
	DefaultEngineTemplate(ctx context.Context) (string, error)

	// Engines returns the known engines, current engine first.
	Engines(ctx context.Context) ([]entity.SearchEngine, error)

	// IsHomepageEnabled reports whether new sessions open the homepage.
	IsHomepageEnabled(ctx context.Context) (bool, error)

	// DefaultHomepageURL returns the homepage URL.
	DefaultHomepageURL(ctx context.Context) (string, error)
}
