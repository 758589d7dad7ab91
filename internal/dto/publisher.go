package dto

import (
	"time"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// --- Publisher DTOs ---

// CreatePublisherRequest defines data for creating a new publisher.
type CreatePublisherRequest struct {
	Name      string                 `json:"name" binding:"required,max=255"`
	Subdomain string                 `json:"subdomain" binding:"required,max=100,hostname_rfc1123"`
	PlanType  domain.PlanType        `json:"planType" binding:"omitempty,oneof=free starter professional enterprise"`
	Status    domain.PublisherStatus `json:"status" binding:"omitempty,oneof=active suspended archived trial"`
	Settings  map[string]any         `json:"settings"`
}

// UpdatePublisherRequest defines updatable publisher fields. Nil pointers
// leave the current value untouched.
type UpdatePublisherRequest struct {
	Name     *string                 `json:"name" binding:"omitempty,max=255"`
	Status   *domain.PublisherStatus `json:"status" binding:"omitempty,oneof=active suspended archived trial"`
	PlanType *domain.PlanType        `json:"planType" binding:"omitempty,oneof=free starter professional enterprise"`
	Settings map[string]any          `json:"settings"`
}

// PublisherResponse defines data returned for a publisher.
type PublisherResponse struct {
	PublisherID string                 `json:"publisherID"`
	Name        string                 `json:"name"`
	Subdomain   string                 `json:"subdomain"`
	Status      domain.PublisherStatus `json:"status"`
	PlanType    domain.PlanType        `json:"planType"`
	Settings    map[string]any         `json:"settings"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// ToPublisherResponse converts domain.Publisher to DTO.
func ToPublisherResponse(p *domain.Publisher) PublisherResponse {
	return PublisherResponse{
		PublisherID: p.PublisherID,
		Name:        p.Name,
		Subdomain:   p.Subdomain,
		Status:      p.Status,
		PlanType:    p.PlanType,
		Settings:    p.Settings,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
