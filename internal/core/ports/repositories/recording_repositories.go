package repositories

import (
	"context"
	"time"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// RecordingListFilter narrows FindRecordings results. Zero values mean no
// filtering on that field. Deleted recordings are excluded unless
// IncludeDeleted is set or Status names them explicitly.
type RecordingListFilter struct {
	WorkID         string
	Status         domain.RecordingStatus
	RecordingType  domain.RecordingType
	IncludeDeleted bool
	Search         string // matched against title and artist name
	Limit          int
	Offset         int
}

// RecordingReader defines read operations for recording data
type RecordingReader interface {
	// FindRecordingByID retrieves a specific recording by its ID.
	FindRecordingByID(ctx context.Context, recordingID string) (*domain.Recording, error)

	// FindRecordings retrieves a filtered, paginated list of recordings
	// together with the total count for the filter.
	FindRecordings(ctx context.Context, filter RecordingListFilter) ([]domain.Recording, int, error)

	// FindRecordingByISRC retrieves a recording by exact ISRC match.
	FindRecordingByISRC(ctx context.Context, isrc string) (*domain.Recording, error)

	// FindContributors retrieves the contributor credits of a recording.
	FindContributors(ctx context.Context, recordingID string) ([]domain.RecordingContributor, error)
}

// RecordingWriter defines write operations for recording data
type RecordingWriter interface {
	// SaveRecording persists a new recording.
	SaveRecording(ctx context.Context, recording domain.Recording) error

	// UpdateRecording updates an existing recording's details.
	UpdateRecording(ctx context.Context, recording domain.Recording) error

	// MarkRecordingDeleted soft deletes a recording. The row stays with
	// status deleted.
	MarkRecordingDeleted(ctx context.Context, recordingID string, deletedAt time.Time, deletedBy string) error

	// SaveContributor persists a new contributor credit.
	SaveContributor(ctx context.Context, contributor domain.RecordingContributor) error

	// DeleteContributor removes a contributor credit.
	DeleteContributor(ctx context.Context, recordingID, contributorID string) error
}

// RecordingRepositoryFacade combines all recording-related repository interfaces
// This is a facade for clients that need access to all operations
type RecordingRepositoryFacade interface {
	RecordingReader
	RecordingWriter
}
