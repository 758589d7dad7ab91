package services

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// SearchSvc defines the per-tenant catalog search operations. All queries
// run inside the current publisher's row visibility.
type SearchSvc interface {
	// SearchWorks runs a full-text search over the tenant's works.
	SearchWorks(ctx context.Context, query string, limit int) ([]domain.Work, error)

	// SearchSongwriters runs a full-text search over the tenant's
	// songwriters.
	SearchSongwriters(ctx context.Context, query string, limit int) ([]domain.Songwriter, error)

	// SearchRecordings matches the tenant's recordings by title and
	// artist name.
	SearchRecordings(ctx context.Context, query string, limit int) ([]domain.Recording, error)
}
