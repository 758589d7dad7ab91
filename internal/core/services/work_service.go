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

// workService implements the WorkSvcFacade interface
type workService struct {
	BaseService
	workRepo       portsrepo.WorkRepositoryFacade
	songwriterRepo portsrepo.SongwriterReader
}

// NewWorkService creates a new work service with the provided dependencies
func NewWorkService(workRepo portsrepo.WorkRepositoryFacade, songwriterRepo portsrepo.SongwriterReader) portssvc.WorkSvcFacade {
	return &workService{workRepo: workRepo, songwriterRepo: songwriterRepo}
}

var _ portssvc.WorkSvcFacade = (*workService)(nil)

// GetWorkByID retrieves a work with its writer credits
func (s *workService) GetWorkByID(ctx context.Context, workID string) (*domain.Work, []domain.WorkWriter, error) {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find work by ID", slog.String("work_id", workID))
		}
		return nil, nil, err
	}

	writers, err := s.workRepo.FindWorkWriters(ctx, workID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load work writers", slog.String("work_id", workID))
		return nil, nil, err
	}

	return work, writers, nil
}

// ListWorks retrieves a filtered, paginated list of works
func (s *workService) ListWorks(ctx context.Context, params dto.ListWorksParams) ([]domain.Work, int, error) {
	filter := portsrepo.WorkListFilter{
		RegistrationStatus: domain.RegistrationStatus(params.RegistrationStatus),
		Genre:              params.Genre,
		Language:           params.Language,
		Search:             params.Search,
		Limit:              params.Limit,
		Offset:             params.Offset,
	}
	works, total, err := s.workRepo.FindWorks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list works")
		return nil, 0, err
	}
	if works == nil {
		works = []domain.Work{}
	}
	return works, total, nil
}

// CreateWork creates a work with its writer credits
func (s *workService) CreateWork(ctx context.Context, req dto.CreateWorkRequest, creatorUserID string) (*domain.Work, []domain.WorkWriter, error) {
	var findings []validation.Error

	if req.ISWC != nil && *req.ISWC != "" {
		normalized := strings.ToUpper(strings.TrimSpace(*req.ISWC))
		req.ISWC = &normalized
		findings = append(findings, validation.ValidateISWC(normalized)...)
	}
	if req.Language != nil && *req.Language != "" {
		findings = append(findings, validation.ValidateLanguage(*req.Language)...)
	}
	findings = append(findings, checkWriterSet(req.Writers)...)
	if validation.HasBlocking(findings) {
		return nil, nil, newRuleError(findings)
	}

	// Every credited songwriter must exist within the tenant.
	for _, w := range req.Writers {
		if _, err := s.songwriterRepo.FindSongwriterByID(ctx, w.SongwriterID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, apperrors.NewValidationFailedError("unknown songwriter: " + w.SongwriterID)
			}
			return nil, nil, err
		}
	}

	if req.OriginalWorkID != nil {
		if _, err := s.workRepo.FindWorkByID(ctx, *req.OriginalWorkID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, newRuleError([]validation.Error{{
					Field:   "originalWorkID",
					Code:    codeUnknownOriginalWork,
					Message: "original work does not exist",
				}})
			}
			return nil, nil, err
		}
	}

	now := time.Now()
	work := domain.Work{
		WorkID:             uuid.NewString(),
		Title:              req.Title,
		ISWC:               req.ISWC,
		AlternateTitles:    req.AlternateTitles,
		Genre:              req.Genre,
		Language:           req.Language,
		Duration:           req.Duration,
		Tempo:              req.Tempo,
		RegistrationStatus: domain.RegistrationDraft,
		IsInstrumental:     req.IsInstrumental,
		Description:        req.Description,
		Tags:               req.Tags,
		OriginalWorkID:     req.OriginalWorkID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
			UpdatedAt: now,
			UpdatedBy: creatorUserID,
		},
	}

	writers := s.buildWriters(work.WorkID, req.Writers, creatorUserID, now)

	if err := s.workRepo.SaveWork(ctx, work, writers); err != nil {
		s.LogError(ctx, err, "Failed to save work", slog.String("work_id", work.WorkID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Work created successfully",
		slog.String("work_id", work.WorkID),
		slog.Int("writer_count", len(writers)))
	return &work, writers, nil
}

// UpdateWork updates an existing work
func (s *workService) UpdateWork(ctx context.Context, workID string, req dto.UpdateWorkRequest, requestingUserID string) (*domain.Work, error) {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		return nil, err
	}

	var findings []validation.Error
	locked := workFieldsLocked(work.RegistrationStatus)

	if req.Title != nil && *req.Title != work.Title {
		if locked {
			findings = append(findings, lockedFieldError("title"))
		} else {
			work.Title = *req.Title
		}
	}
	if req.ISWC != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*req.ISWC))
		if work.ISWC == nil || normalized != *work.ISWC {
			if locked {
				findings = append(findings, lockedFieldError("iswc"))
			} else {
				findings = append(findings, validation.ValidateISWC(normalized)...)
				work.ISWC = &normalized
			}
		}
	}
	if req.Language != nil && *req.Language != "" {
		findings = append(findings, validation.ValidateLanguage(*req.Language)...)
		work.Language = req.Language
	}
	if req.AlternateTitles != nil {
		work.AlternateTitles = req.AlternateTitles
	}
	if req.Genre != nil {
		work.Genre = req.Genre
	}
	if req.Duration != nil {
		work.Duration = req.Duration
	}
	if req.Tempo != nil {
		work.Tempo = req.Tempo
	}
	if req.RegistrationStatus != nil {
		work.RegistrationStatus = *req.RegistrationStatus
	}
	if req.IsInstrumental != nil {
		work.IsInstrumental = *req.IsInstrumental
	}
	if req.Description != nil {
		work.Description = req.Description
	}
	if req.Tags != nil {
		work.Tags = req.Tags
	}
	work.UpdatedBy = requestingUserID

	if validation.HasBlocking(findings) {
		return nil, newRuleError(findings)
	}

	if err := s.workRepo.UpdateWork(ctx, *work); err != nil {
		s.LogError(ctx, err, "Failed to update work", slog.String("work_id", workID))
		return nil, err
	}

	return work, nil
}

// ReplaceWorkWriters swaps the full writer set of a work
func (s *workService) ReplaceWorkWriters(ctx context.Context, workID string, req dto.ReplaceWorkWritersRequest, requestingUserID string) ([]domain.WorkWriter, error) {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if workFieldsLocked(work.RegistrationStatus) {
		return nil, newRuleError([]validation.Error{lockedFieldError("writers")})
	}

	if findings := checkWriterSet(req.Writers); validation.HasBlocking(findings) {
		return nil, newRuleError(findings)
	}

	for _, w := range req.Writers {
		if _, err := s.songwriterRepo.FindSongwriterByID(ctx, w.SongwriterID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationFailedError("unknown songwriter: " + w.SongwriterID)
			}
			return nil, err
		}
	}

	writers := s.buildWriters(workID, req.Writers, requestingUserID, time.Now())
	if err := s.workRepo.ReplaceWorkWriters(ctx, workID, writers); err != nil {
		s.LogError(ctx, err, "Failed to replace work writers", slog.String("work_id", workID))
		return nil, err
	}

	s.LogInfo(ctx, "Work writers replaced",
		slog.String("work_id", workID),
		slog.Int("writer_count", len(writers)))
	return writers, nil
}

// DeleteWork removes a work with its writer credits and recordings
func (s *workService) DeleteWork(ctx context.Context, workID string, requestingUserID string) error {
	if err := s.workRepo.DeleteWork(ctx, workID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete work", slog.String("work_id", workID))
		}
		return err
	}
	s.LogInfo(ctx, "Work deleted",
		slog.String("work_id", workID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// CheckWorkDuplicates scores existing works against the given title and ISWC
func (s *workService) CheckWorkDuplicates(ctx context.Context, title string, iswc string, threshold float64) ([]domain.DuplicateMatch, error) {
	if threshold <= 0 {
		threshold = validation.DefaultDuplicateThreshold
	}
	matches := []domain.DuplicateMatch{}
	seen := map[string]struct{}{}

	if iswc != "" {
		normalized := strings.ToUpper(strings.TrimSpace(iswc))
		existing, err := s.workRepo.FindWorkByISWC(ctx, normalized)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			matches = append(matches, domain.DuplicateMatch{
				EntityID:  existing.WorkID,
				Display:   existing.Title,
				Score:     1.0,
				MatchType: domain.MatchISWC,
			})
			seen[existing.WorkID] = struct{}{}
		}
	}

	if title == "" {
		return matches, nil
	}

	candidates, _, err := s.workRepo.FindWorks(ctx, portsrepo.WorkListFilter{Limit: candidatePoolSize})
	if err != nil {
		s.LogError(ctx, err, "Failed to load work candidates for duplicate scan")
		return nil, err
	}

	for _, c := range candidates {
		if _, dup := seen[c.WorkID]; dup {
			continue
		}
		score := validation.SimilarityScore(title, c.Title)
		for _, alt := range c.AlternateTitles {
			if altScore := validation.SimilarityScore(title, alt); altScore > score {
				score = altScore
			}
		}
		if score >= threshold {
			matches = append(matches, domain.DuplicateMatch{
				EntityID:  c.WorkID,
				Display:   c.Title,
				Score:     score,
				MatchType: domain.MatchTitle,
			})
		}
	}

	return matches, nil
}

func (s *workService) buildWriters(workID string, inputs []dto.WorkWriterInput, userID string, now time.Time) []domain.WorkWriter {
	writers := make([]domain.WorkWriter, len(inputs))
	for i, in := range inputs {
		writers[i] = domain.WorkWriter{
			WorkWriterID:           uuid.NewString(),
			WorkID:                 workID,
			SongwriterID:           in.SongwriterID,
			Role:                   in.Role,
			ContributionPercentage: in.ContributionPercentage,
			PublishingShare:        in.PublishingShare,
			WriterShare:            in.WriterShare,
			IsPrimary:              in.IsPrimary,
			CreditName:             in.CreditName,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: userID,
				UpdatedAt: now,
				UpdatedBy: userID,
			},
		}
	}
	return writers
}
