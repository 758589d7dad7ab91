package services

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// WorkReaderSvc defines read operations for work data
type WorkReaderSvc interface {
	// GetWorkByID retrieves a work with its writer credits.
	GetWorkByID(ctx context.Context, workID string) (*domain.Work, []domain.WorkWriter, error)

	// ListWorks retrieves a filtered, paginated list of works together
	// with the total count.
	ListWorks(ctx context.Context, params dto.ListWorksParams) ([]domain.Work, int, error)
}

// WorkWriterSvc defines write operations for work data
type WorkWriterSvc interface {
	// CreateWork creates a work with its writer credits after validating
	// the ISWC and the writer share rules.
	CreateWork(ctx context.Context, req dto.CreateWorkRequest, creatorUserID string) (*domain.Work, []domain.WorkWriter, error)

	// UpdateWork updates an existing work. Title, ISWC and writers lock
	// once the work reaches registered status.
	UpdateWork(ctx context.Context, workID string, req dto.UpdateWorkRequest, requestingUserID string) (*domain.Work, error)

	// ReplaceWorkWriters swaps the full writer set of a work.
	ReplaceWorkWriters(ctx context.Context, workID string, req dto.ReplaceWorkWritersRequest, requestingUserID string) ([]domain.WorkWriter, error)

	// DeleteWork removes a work with its writer credits and recordings.
	DeleteWork(ctx context.Context, workID string, requestingUserID string) error
}

// WorkDedupSvc defines duplicate detection for works
type WorkDedupSvc interface {
	// CheckWorkDuplicates scores existing works against the given title
	// and ISWC. Matches are review candidates, never merges.
	CheckWorkDuplicates(ctx context.Context, title string, iswc string, threshold float64) ([]domain.DuplicateMatch, error)
}

// WorkSvcFacade combines all work-related service interfaces
type WorkSvcFacade interface {
	WorkReaderSvc
	WorkWriterSvc
	WorkDedupSvc
}
