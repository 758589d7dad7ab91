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
	"github.com/opusregistry/catalog_backend/pkg/tenantctx"
)

// publisherService implements the PublisherSvcFacade interface
type publisherService struct {
	BaseService
	publisherRepo portsrepo.PublisherRepositoryFacade
}

// NewPublisherService creates a new publisher service with the provided dependencies
func NewPublisherService(publisherRepo portsrepo.PublisherRepositoryFacade) portssvc.PublisherSvcFacade {
	return &publisherService{publisherRepo: publisherRepo}
}

var _ portssvc.PublisherSvcFacade = (*publisherService)(nil)

// GetPublisherByID retrieves a publisher by ID. Row visibility already
// confines the lookup to the current tenant, so a foreign ID simply
// resolves to not found.
func (s *publisherService) GetPublisherByID(ctx context.Context, publisherID string) (*domain.Publisher, error) {
	publisher, err := s.publisherRepo.FindPublisherByID(ctx, publisherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find publisher by ID",
				slog.String("publisher_id", publisherID))
		}
		return nil, err
	}
	return publisher, nil
}

// CreatePublisher provisions a new publisher tenant. The repository pins
// the tenant context to the new ID for the insert, since no other tenant
// may see the row.
func (s *publisherService) CreatePublisher(ctx context.Context, req dto.CreatePublisherRequest, creatorUserID string) (*domain.Publisher, error) {
	now := time.Now()
	status := req.Status
	if status == "" {
		status = domain.PublisherTrial
	}
	planType := req.PlanType
	if planType == "" {
		planType = domain.PlanFree
	}
	settings := req.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	publisher := domain.Publisher{
		PublisherID: uuid.NewString(),
		Name:        req.Name,
		Subdomain:   strings.ToLower(req.Subdomain),
		Status:      status,
		PlanType:    planType,
		Settings:    settings,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
			UpdatedAt: now,
			UpdatedBy: creatorUserID,
		},
	}

	if err := s.publisherRepo.SavePublisher(ctx, publisher); err != nil {
		s.LogError(ctx, err, "Failed to save publisher",
			slog.String("publisher_id", publisher.PublisherID))
		return nil, err
	}

	s.LogInfo(ctx, "Publisher created successfully",
		slog.String("publisher_id", publisher.PublisherID),
		slog.String("subdomain", publisher.Subdomain))
	return &publisher, nil
}

// UpdatePublisher updates the current tenant's publisher record
func (s *publisherService) UpdatePublisher(ctx context.Context, publisherID string, req dto.UpdatePublisherRequest, requestingUserID string) (*domain.Publisher, error) {
	// Only the tenant itself may alter its publisher record.
	if current, ok := tenantctx.PublisherID(ctx); !ok || current != publisherID {
		return nil, apperrors.NewForbiddenError("publisher context does not match target publisher")
	}

	publisher, err := s.publisherRepo.FindPublisherByID(ctx, publisherID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		publisher.Name = *req.Name
	}
	if req.Status != nil {
		publisher.Status = *req.Status
	}
	if req.PlanType != nil {
		publisher.PlanType = *req.PlanType
	}
	if req.Settings != nil {
		publisher.Settings = req.Settings
	}
	publisher.UpdatedBy = requestingUserID

	if err := s.publisherRepo.UpdatePublisher(ctx, *publisher); err != nil {
		s.LogError(ctx, err, "Failed to update publisher",
			slog.String("publisher_id", publisherID))
		return nil, err
	}

	return publisher, nil
}
