package ports

import (
	"context"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

// CatalogStore provides the word, pose and generic cue tables.
type CatalogStore interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}
