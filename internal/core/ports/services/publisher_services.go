package services

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// PublisherReaderSvc defines read operations for publisher data
type PublisherReaderSvc interface {
	// GetPublisherByID retrieves a publisher by ID. The requested ID must
	// match the current tenant context.
	GetPublisherByID(ctx context.Context, publisherID string) (*domain.Publisher, error)
}

// PublisherWriterSvc defines write operations for publisher data
type PublisherWriterSvc interface {
	// CreatePublisher provisions a new publisher tenant.
	CreatePublisher(ctx context.Context, req dto.CreatePublisherRequest, creatorUserID string) (*domain.Publisher, error)

	// UpdatePublisher updates the current tenant's publisher record.
	UpdatePublisher(ctx context.Context, publisherID string, req dto.UpdatePublisherRequest, requestingUserID string) (*domain.Publisher, error)
}

// PublisherSvcFacade combines all publisher-related service interfaces
type PublisherSvcFacade interface {
	PublisherReaderSvc
	PublisherWriterSvc
}
