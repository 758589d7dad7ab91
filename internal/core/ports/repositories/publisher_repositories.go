package repositories

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// PublisherReader defines read operations for publisher data
type PublisherReader interface {
	// FindPublisherByID retrieves a specific publisher by its ID.
	FindPublisherByID(ctx context.Context, publisherID string) (*domain.Publisher, error)

	// FindPublisherBySubdomain retrieves a publisher by its subdomain.
	FindPublisherBySubdomain(ctx context.Context, subdomain string) (*domain.Publisher, error)
}

// PublisherWriter defines write operations for publisher data
type PublisherWriter interface {
	// SavePublisher persists a new publisher. The insert runs with the
	// tenant context pinned to the new publisher's own ID.
	SavePublisher(ctx context.Context, publisher domain.Publisher) error

	// UpdatePublisher updates an existing publisher's details.
	UpdatePublisher(ctx context.Context, publisher domain.Publisher) error
}

// PublisherRepositoryFacade combines all publisher-related repository interfaces
// This is a facade for clients that need access to all operations
type PublisherRepositoryFacade interface {
	PublisherReader
	PublisherWriter
}
