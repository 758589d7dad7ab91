package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/validation"
)

// candidatePoolSize caps how many existing rows a duplicate scan compares
// against. Tenants beyond this size get exact-identifier matches only for
// the overflow.
const candidatePoolSize = 1000

// songwriterService implements the SongwriterSvcFacade interface
type songwriterService struct {
	BaseService
	songwriterRepo portsrepo.SongwriterRepositoryFacade
}

// NewSongwriterService creates a new songwriter service with the provided dependencies
func NewSongwriterService(songwriterRepo portsrepo.SongwriterRepositoryFacade) portssvc.SongwriterSvcFacade {
	return &songwriterService{songwriterRepo: songwriterRepo}
}

var _ portssvc.SongwriterSvcFacade = (*songwriterService)(nil)

// GetSongwriterByID retrieves a songwriter by ID
func (s *songwriterService) GetSongwriterByID(ctx context.Context, songwriterID string) (*domain.Songwriter, error) {
	songwriter, err := s.songwriterRepo.FindSongwriterByID(ctx, songwriterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find songwriter by ID",
				slog.String("songwriter_id", songwriterID))
		}
		return nil, err
	}
	return songwriter, nil
}

// ListSongwriters retrieves a filtered, paginated list of songwriters
func (s *songwriterService) ListSongwriters(ctx context.Context, params dto.ListSongwritersParams) ([]domain.Songwriter, int, error) {
	filter := portsrepo.SongwriterListFilter{
		Status: domain.SongwriterStatus(params.Status),
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	songwriters, total, err := s.songwriterRepo.FindSongwriters(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list songwriters")
		return nil, 0, err
	}
	if songwriters == nil {
		songwriters = []domain.Songwriter{}
	}
	return songwriters, total, nil
}

// CreateSongwriter registers a new songwriter
func (s *songwriterService) CreateSongwriter(ctx context.Context, req dto.CreateSongwriterRequest, creatorUserID string) (*domain.Songwriter, error) {
	now := time.Now()
	status := req.Status
	if status == "" {
		status = domain.SongwriterActive
	}

	songwriter := domain.Songwriter{
		SongwriterID: uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		StageName:    req.StageName,
		IPI:          req.IPI,
		ISNI:         req.ISNI,
		Email:        req.Email,
		Phone:        req.Phone,
		BirthDate:    req.BirthDate,
		BirthCountry: req.BirthCountry,
		Nationality:  req.Nationality,
		Status:       status,
		DeceasedDate: req.DeceasedDate,
		Biography:    req.Biography,
		Website:      req.Website,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
			UpdatedAt: now,
			UpdatedBy: creatorUserID,
		},
	}

	if errs := checkSongwriterIdentifiers(&songwriter); validation.HasBlocking(errs) {
		s.LogDebug(ctx, "Songwriter validation failed", slog.Int("error_count", len(errs)))
		return nil, newRuleError(errs)
	}

	if err := s.songwriterRepo.SaveSongwriter(ctx, songwriter); err != nil {
		s.LogError(ctx, err, "Failed to save songwriter",
			slog.String("songwriter_id", songwriter.SongwriterID))
		return nil, err
	}

	s.LogInfo(ctx, "Songwriter created successfully",
		slog.String("songwriter_id", songwriter.SongwriterID))
	return &songwriter, nil
}

// UpdateSongwriter updates an existing songwriter
func (s *songwriterService) UpdateSongwriter(ctx context.Context, songwriterID string, req dto.UpdateSongwriterRequest, requestingUserID string) (*domain.Songwriter, error) {
	songwriter, err := s.songwriterRepo.FindSongwriterByID(ctx, songwriterID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		songwriter.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		songwriter.LastName = *req.LastName
	}
	if req.StageName != nil {
		songwriter.StageName = req.StageName
	}
	if req.IPI != nil {
		songwriter.IPI = req.IPI
	}
	if req.ISNI != nil {
		songwriter.ISNI = req.ISNI
	}
	if req.Email != nil {
		songwriter.Email = req.Email
	}
	if req.Phone != nil {
		songwriter.Phone = req.Phone
	}
	if req.Status != nil {
		songwriter.Status = *req.Status
	}
	if req.DeceasedDate != nil {
		songwriter.DeceasedDate = req.DeceasedDate
	}
	if req.Biography != nil {
		songwriter.Biography = req.Biography
	}
	if req.Website != nil {
		songwriter.Website = req.Website
	}
	songwriter.UpdatedBy = requestingUserID

	if errs := checkSongwriterIdentifiers(songwriter); validation.HasBlocking(errs) {
		return nil, newRuleError(errs)
	}

	if err := s.songwriterRepo.UpdateSongwriter(ctx, *songwriter); err != nil {
		s.LogError(ctx, err, "Failed to update songwriter",
			slog.String("songwriter_id", songwriterID))
		return nil, err
	}

	return songwriter, nil
}

// DeleteSongwriter removes a songwriter and their writer credits
func (s *songwriterService) DeleteSongwriter(ctx context.Context, songwriterID string, requestingUserID string) error {
	if err := s.songwriterRepo.DeleteSongwriter(ctx, songwriterID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete songwriter",
				slog.String("songwriter_id", songwriterID))
		}
		return err
	}
	s.LogInfo(ctx, "Songwriter deleted",
		slog.String("songwriter_id", songwriterID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

// SwapSongwriterIPIs exchanges the IPI numbers of two songwriters
func (s *songwriterService) SwapSongwriterIPIs(ctx context.Context, songwriterIDA, songwriterIDB string, requestingUserID string) error {
	if songwriterIDA == songwriterIDB {
		return apperrors.NewValidationFailedError("cannot swap a songwriter's IPI with itself")
	}
	if err := s.songwriterRepo.SwapSongwriterIPIs(ctx, songwriterIDA, songwriterIDB); err != nil {
		s.LogError(ctx, err, "Failed to swap songwriter IPIs",
			slog.String("songwriter_id_a", songwriterIDA),
			slog.String("songwriter_id_b", songwriterIDB))
		return err
	}
	s.LogInfo(ctx, "Songwriter IPIs swapped",
		slog.String("songwriter_id_a", songwriterIDA),
		slog.String("songwriter_id_b", songwriterIDB),
		slog.String("requested_by", requestingUserID))
	return nil
}

// CheckSongwriterDuplicates scores existing songwriters against the given
// name and identifiers
func (s *songwriterService) CheckSongwriterDuplicates(ctx context.Context, req dto.CreateSongwriterRequest, threshold float64) ([]domain.DuplicateMatch, error) {
	if threshold <= 0 {
		threshold = validation.DefaultDuplicateThreshold
	}
	matches := []domain.DuplicateMatch{}
	seen := map[string]struct{}{}

	// Exact identifier matches always score 1.0.
	if req.IPI != nil && *req.IPI != "" {
		if normalized, ok := NormalizeIPI(*req.IPI); ok {
			existing, err := s.songwriterRepo.FindSongwriterByIPI(ctx, normalized)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			if existing != nil {
				matches = append(matches, domain.DuplicateMatch{
					EntityID:  existing.SongwriterID,
					Display:   existing.FullName(),
					Score:     1.0,
					MatchType: domain.MatchIPI,
				})
				seen[existing.SongwriterID] = struct{}{}
			}
		}
	}
	if req.Email != nil && *req.Email != "" {
		existing, err := s.songwriterRepo.FindSongwriterByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			if _, dup := seen[existing.SongwriterID]; !dup {
				matches = append(matches, domain.DuplicateMatch{
					EntityID:  existing.SongwriterID,
					Display:   existing.FullName(),
					Score:     1.0,
					MatchType: domain.MatchEmail,
				})
				seen[existing.SongwriterID] = struct{}{}
			}
		}
	}

	candidates, _, err := s.songwriterRepo.FindSongwriters(ctx, portsrepo.SongwriterListFilter{Limit: candidatePoolSize})
	if err != nil {
		s.LogError(ctx, err, "Failed to load songwriter candidates for duplicate scan")
		return nil, err
	}

	name := req.FirstName + " " + req.LastName
	for _, c := range candidates {
		if _, dup := seen[c.SongwriterID]; dup {
			continue
		}
		score := validation.SimilarityScore(name, c.FullName())
		if c.StageName != nil {
			if stageScore := validation.SimilarityScore(name, *c.StageName); stageScore > score {
				score = stageScore
			}
		}
		if score >= threshold {
			matches = append(matches, domain.DuplicateMatch{
				EntityID:  c.SongwriterID,
				Display:   c.FullName(),
				Score:     score,
				MatchType: domain.MatchName,
			})
		}
	}

	return matches, nil
}
