package repositories

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// WorkListFilter narrows FindWorks results. Zero values mean no filtering
// on that field.
type WorkListFilter struct {
	RegistrationStatus domain.RegistrationStatus
	Genre              string
	Language           string
	Search             string // matched against title and alternate titles
	Limit              int
	Offset             int
}

// WorkReader defines read operations for work data
type WorkReader interface {
	// FindWorkByID retrieves a specific work by its ID.
	FindWorkByID(ctx context.Context, workID string) (*domain.Work, error)

	// FindWorks retrieves a filtered, paginated list of works together
	// with the total count for the filter.
	FindWorks(ctx context.Context, filter WorkListFilter) ([]domain.Work, int, error)

	// FindWorkByISWC retrieves a work by exact ISWC match.
	FindWorkByISWC(ctx context.Context, iswc string) (*domain.Work, error)

	// FindWorkWriters retrieves the writer credits of a work.
	FindWorkWriters(ctx context.Context, workID string) ([]domain.WorkWriter, error)

	// SearchWorks runs a full-text search over title, description,
	// alternate titles and tags.
	SearchWorks(ctx context.Context, query string, limit int) ([]domain.Work, error)
}

// WorkWriterRepo defines write operations for work data
type WorkWriterRepo interface {
	// SaveWork persists a new work together with its writer credits in
	// one transaction.
	SaveWork(ctx context.Context, work domain.Work, writers []domain.WorkWriter) error

	// UpdateWork updates an existing work's details.
	UpdateWork(ctx context.Context, work domain.Work) error

	// ReplaceWorkWriters swaps the full writer set of a work in one
	// transaction. Credit uniqueness defers to commit.
	ReplaceWorkWriters(ctx context.Context, workID string, writers []domain.WorkWriter) error

	// DeleteWork removes a work and cascades to its writer credits and
	// recordings.
	DeleteWork(ctx context.Context, workID string) error
}

// WorkRepositoryFacade combines all work-related repository interfaces
// This is a facade for clients that need access to all operations
type WorkRepositoryFacade interface {
	WorkReader
	WorkWriterRepo
}
