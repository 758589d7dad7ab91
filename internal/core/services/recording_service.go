package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/validation"
)

// recordingService implements the RecordingSvcFacade interface
type recordingService struct {
	BaseService
	recordingRepo portsrepo.RecordingRepositoryFacade
	workRepo      portsrepo.WorkReader
}

// NewRecordingService creates a new recording service with the provided dependencies
func NewRecordingService(recordingRepo portsrepo.RecordingRepositoryFacade, workRepo portsrepo.WorkReader) portssvc.RecordingSvcFacade {
	return &recordingService{recordingRepo: recordingRepo, workRepo: workRepo}
}

var _ portssvc.RecordingSvcFacade = (*recordingService)(nil)

// GetRecordingByID retrieves a recording with its contributor credits.
// Soft-deleted recordings behave as absent.
func (s *recordingService) GetRecordingByID(ctx context.Context, recordingID string) (*domain.Recording, []domain.RecordingContributor, error) {
	recording, err := s.recordingRepo.FindRecordingByID(ctx, recordingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find recording by ID",
				slog.String("recording_id", recordingID))
		}
		return nil, nil, err
	}
	if recording.Status == domain.RecordingDeleted {
		return nil, nil, apperrors.NewNotFoundError("recording not found")
	}

	contributors, err := s.recordingRepo.FindContributors(ctx, recordingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recording contributors",
			slog.String("recording_id", recordingID))
		return nil, nil, err
	}

	return recording, contributors, nil
}

// ListRecordings retrieves a filtered, paginated list of recordings
func (s *recordingService) ListRecordings(ctx context.Context, params dto.ListRecordingsParams) ([]domain.Recording, int, error) {
	filter := portsrepo.RecordingListFilter{
		WorkID:         params.WorkID,
		Status:         domain.RecordingStatus(params.Status),
		RecordingType:  domain.RecordingType(params.RecordingType),
		IncludeDeleted: params.IncludeDeleted,
		Search:         params.Search,
		Limit:          params.Limit,
		Offset:         params.Offset,
	}
	recordings, total, err := s.recordingRepo.FindRecordings(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recordings")
		return nil, 0, err
	}
	if recordings == nil {
		recordings = []domain.Recording{}
	}
	return recordings, total, nil
}

// CreateRecording creates a recording of a work
func (s *recordingService) CreateRecording(ctx context.Context, req dto.CreateRecordingRequest, creatorUserID string) (*domain.Recording, error) {
	if req.ISRC != nil && *req.ISRC != "" {
		normalized := strings.ToUpper(strings.TrimSpace(*req.ISRC))
		req.ISRC = &normalized
		if findings := validation.ValidateISRC(normalized); validation.HasBlocking(findings) {
			return nil, newRuleError(findings)
		}
	}

	// The recorded work must exist within the tenant.
	if _, err := s.workRepo.FindWorkByID(ctx, req.WorkID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("unknown work: " + req.WorkID)
		}
		return nil, err
	}

	recordingType := req.RecordingType
	if recordingType == "" {
		recordingType = domain.RecordingStudio
	}

	now := time.Now()
	recording := domain.Recording{
		RecordingID:     uuid.NewString(),
		WorkID:          req.WorkID,
		Title:           req.Title,
		ISRC:            req.ISRC,
		ArtistName:      req.ArtistName,
		AlbumTitle:      req.AlbumTitle,
		TrackNumber:     req.TrackNumber,
		DiscNumber:      req.DiscNumber,
		DurationMs:      req.DurationMs,
		FileFormat:      req.FileFormat,
		RecordingType:   recordingType,
		Status:          domain.RecordingActive,
		IsMaster:        req.IsMaster,
		ExplicitContent: req.ExplicitContent,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
			UpdatedAt: now,
			UpdatedBy: creatorUserID,
		},
	}

	if err := s.recordingRepo.SaveRecording(ctx, recording); err != nil {
		s.LogError(ctx, err, "Failed to save recording",
			slog.String("recording_id", recording.RecordingID))
		return nil, err
	}

	s.LogInfo(ctx, "Recording created successfully",
		slog.String("recording_id", recording.RecordingID),
		slog.String("work_id", recording.WorkID))
	return &recording, nil
}

// UpdateRecording updates an existing recording
func (s *recordingService) UpdateRecording(ctx context.Context, recordingID string, req dto.UpdateRecordingRequest, requestingUserID string) (*domain.Recording, error) {
	recording, err := s.recordingRepo.FindRecordingByID(ctx, recordingID)
	if err != nil {
		return nil, err
	}
	if recording.Status == domain.RecordingDeleted {
		return nil, apperrors.NewNotFoundError("recording not found")
	}

	if req.Title != nil {
		recording.Title = *req.Title
	}
	if req.ISRC != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*req.ISRC))
		if findings := validation.ValidateISRC(normalized); validation.HasBlocking(findings) {
			return nil, newRuleError(findings)
		}
		recording.ISRC = &normalized
	}
	if req.ArtistName != nil {
		recording.ArtistName = *req.ArtistName
	}
	if req.AlbumTitle != nil {
		recording.AlbumTitle = req.AlbumTitle
	}
	if req.TrackNumber != nil {
		recording.TrackNumber = req.TrackNumber
	}
	if req.DiscNumber != nil {
		recording.DiscNumber = req.DiscNumber
	}
	if req.DurationMs != nil {
		recording.DurationMs = req.DurationMs
	}
	if req.FileFormat != nil {
		recording.FileFormat = req.FileFormat
	}
	if req.RecordingType != nil {
		recording.RecordingType = *req.RecordingType
	}
	if req.Status != nil {
		recording.Status = *req.Status
	}
	if req.IsMaster != nil {
		recording.IsMaster = *req.IsMaster
	}
	if req.ExplicitContent != nil {
		recording.ExplicitContent = *req.ExplicitContent
	}
	if req.Description != nil {
		recording.Description = req.Description
	}
	recording.UpdatedBy = requestingUserID

	if err := s.recordingRepo.UpdateRecording(ctx, *recording); err != nil {
		s.LogError(ctx, err, "Failed to update recording",
			slog.String("recording_id", recordingID))
		return nil, err
	}

	return recording, nil
}

// DeleteRecording soft deletes a recording
func (s *recordingService) DeleteRecording(ctx context.Context, recordingID string, requestingUserID string) error {
	recording, err := s.recordingRepo.FindRecordingByID(ctx, recordingID)
	if err != nil {
		return err
	}
	if recording.Status == domain.RecordingDeleted {
		return apperrors.NewNotFoundError("recording not found")
	}

	if err := s.recordingRepo.MarkRecordingDeleted(ctx, recordingID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete recording",
			slog.String("recording_id", recordingID))
		return err
	}

	s.LogInfo(ctx, "Recording soft deleted",
		slog.String("recording_id", recordingID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// AddContributor credits a contributor on a recording
func (s *recordingService) AddContributor(ctx context.Context, recordingID string, req dto.AddContributorRequest, requestingUserID string) (*domain.RecordingContributor, error) {
	recording, err := s.recordingRepo.FindRecordingByID(ctx, recordingID)
	if err != nil {
		return nil, err
	}
	if recording.Status == domain.RecordingDeleted {
		return nil, apperrors.NewNotFoundError("recording not found")
	}

	now := time.Now()
	contributor := domain.RecordingContributor{
		ContributorID:   uuid.NewString(),
		RecordingID:     recordingID,
		ContributorName: req.ContributorName,
		Role:            req.Role,
		Instrument:      req.Instrument,
		IsPrimary:       req.IsPrimary,
		CreditName:      req.CreditName,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: requestingUserID,
			UpdatedAt: now,
			UpdatedBy: requestingUserID,
		},
	}

	if err := s.recordingRepo.SaveContributor(ctx, contributor); err != nil {
		s.LogError(ctx, err, "Failed to save contributor",
			slog.String("recording_id", recordingID))
		return nil, err
	}

	return &contributor, nil
}

// RemoveContributor removes a contributor credit
func (s *recordingService) RemoveContributor(ctx context.Context, recordingID, contributorID string, requestingUserID string) error {
	if err := s.recordingRepo.DeleteContributor(ctx, recordingID, contributorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to remove contributor",
				slog.String("recording_id", recordingID),
				slog.String("contributor_id", contributorID))
		}
		return err
	}
	s.LogInfo(ctx, "Contributor removed",
		slog.String("recording_id", recordingID),
		slog.String("contributor_id", contributorID),
		slog.String("removed_by", requestingUserID))
	return nil
}
