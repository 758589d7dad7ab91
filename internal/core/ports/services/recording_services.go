package services

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// RecordingReaderSvc defines read operations for recording data
type RecordingReaderSvc interface {
	// GetRecordingByID retrieves a recording with its contributor
	// credits.
	GetRecordingByID(ctx context.Context, recordingID string) (*domain.Recording, []domain.RecordingContributor, error)

	// ListRecordings retrieves a filtered, paginated list of recordings
	// together with the total count.
	ListRecordings(ctx context.Context, params dto.ListRecordingsParams) ([]domain.Recording, int, error)
}

// RecordingWriterSvc defines write operations for recording data
type RecordingWriterSvc interface {
	// CreateRecording creates a recording of a work after validating the
	// ISRC.
	CreateRecording(ctx context.Context, req dto.CreateRecordingRequest, creatorUserID string) (*domain.Recording, error)

	// UpdateRecording updates an existing recording.
	UpdateRecording(ctx context.Context, recordingID string, req dto.UpdateRecordingRequest, requestingUserID string) (*domain.Recording, error)

	// DeleteRecording soft deletes a recording.
	DeleteRecording(ctx context.Context, recordingID string, requestingUserID string) error
}

// RecordingContributorSvc defines operations for contributor credits
type RecordingContributorSvc interface {
	// AddContributor credits a contributor on a recording.
	AddContributor(ctx context.Context, recordingID string, req dto.AddContributorRequest, requestingUserID string) (*domain.RecordingContributor, error)

	// RemoveContributor removes a contributor credit.
	RemoveContributor(ctx context.Context, recordingID, contributorID string, requestingUserID string) error
}

// RecordingSvcFacade combines all recording-related service interfaces
type RecordingSvcFacade interface {
	RecordingReaderSvc
	RecordingWriterSvc
	RecordingContributorSvc
}
