package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// --- Work DTOs ---

// WorkWriterInput is one writer credit inside a create or replace request.
type WorkWriterInput struct {
	SongwriterID           string           `json:"songwriterID" binding:"required,uuid"`
	Role                   domain.WriterRole `json:"role" binding:"required,oneof=composer lyricist composer_lyricist"`
	ContributionPercentage *decimal.Decimal `json:"contributionPercentage"`
	PublishingShare        *decimal.Decimal `json:"publishingShare"`
	WriterShare            *decimal.Decimal `json:"writerShare"`
	IsPrimary              bool             `json:"isPrimary"`
	CreditName             *string          `json:"creditName" binding:"omitempty,max=255"`
}

// CreateWorkRequest defines data for creating a work together with its
// writer credits.
type CreateWorkRequest struct {
	Title           string            `json:"title" binding:"required,max=500"`
	ISWC            *string           `json:"iswc" binding:"omitempty,iswc"`
	AlternateTitles []string          `json:"alternateTitles" binding:"omitempty,dive,max=500"`
	Genre           *string           `json:"genre" binding:"omitempty,max=100"`
	Language        *string           `json:"language" binding:"omitempty,langcode"`
	Duration        *int              `json:"duration" binding:"omitempty,gt=0"`
	Tempo           *int              `json:"tempo" binding:"omitempty,gte=20,lte=300"`
	IsInstrumental  bool              `json:"isInstrumental"`
	Description     *string           `json:"description"`
	Tags            []string          `json:"tags" binding:"omitempty,dive,max=100"`
	OriginalWorkID  *string           `json:"originalWorkID" binding:"omitempty,uuid"`
	Writers         []WorkWriterInput `json:"writers" binding:"required,min=1,dive"`
}

// UpdateWorkRequest defines updatable work fields. Writers are replaced
// through their own endpoint, not here.
type UpdateWorkRequest struct {
	Title              *string                    `json:"title" binding:"omitempty,max=500"`
	ISWC               *string                    `json:"iswc" binding:"omitempty,iswc"`
	AlternateTitles    []string                   `json:"alternateTitles" binding:"omitempty,dive,max=500"`
	Genre              *string                    `json:"genre" binding:"omitempty,max=100"`
	Language           *string                    `json:"language" binding:"omitempty,langcode"`
	Duration           *int                       `json:"duration" binding:"omitempty,gt=0"`
	Tempo              *int                       `json:"tempo" binding:"omitempty,gte=20,lte=300"`
	RegistrationStatus *domain.RegistrationStatus `json:"registrationStatus" binding:"omitempty,oneof=draft pending registered published archived"`
	IsInstrumental     *bool                      `json:"isInstrumental"`
	Description        *string                    `json:"description"`
	Tags               []string                   `json:"tags" binding:"omitempty,dive,max=100"`
}

// ReplaceWorkWritersRequest swaps the full writer set of a work in one
// transaction.
type ReplaceWorkWritersRequest struct {
	Writers []WorkWriterInput `json:"writers" binding:"required,min=1,dive"`
}

// WorkWriterResponse defines data returned for a writer credit.
type WorkWriterResponse struct {
	WorkWriterID           string            `json:"workWriterID"`
	SongwriterID           string            `json:"songwriterID"`
	Role                   domain.WriterRole `json:"role"`
	ContributionPercentage *decimal.Decimal  `json:"contributionPercentage,omitempty"`
	PublishingShare        *decimal.Decimal  `json:"publishingShare,omitempty"`
	WriterShare            *decimal.Decimal  `json:"writerShare,omitempty"`
	IsPrimary              bool              `json:"isPrimary"`
	CreditName             *string           `json:"creditName,omitempty"`
}

// WorkResponse defines data returned for a work.
type WorkResponse struct {
	WorkID             string                    `json:"workID"`
	Title              string                    `json:"title"`
	ISWC               *string                   `json:"iswc,omitempty"`
	AlternateTitles    []string                  `json:"alternateTitles,omitempty"`
	Genre              *string                   `json:"genre,omitempty"`
	Language           *string                   `json:"language,omitempty"`
	Duration           *int                      `json:"duration,omitempty"`
	Tempo              *int                      `json:"tempo,omitempty"`
	RegistrationStatus domain.RegistrationStatus `json:"registrationStatus"`
	IsInstrumental     bool                      `json:"isInstrumental"`
	Description        *string                   `json:"description,omitempty"`
	Tags               []string                  `json:"tags,omitempty"`
	OriginalWorkID     *string                   `json:"originalWorkID,omitempty"`
	Writers            []WorkWriterResponse      `json:"writers,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// ToWorkWriterResponse converts domain.WorkWriter to DTO.
func ToWorkWriterResponse(w *domain.WorkWriter) WorkWriterResponse {
	return WorkWriterResponse{
		WorkWriterID:           w.WorkWriterID,
		SongwriterID:           w.SongwriterID,
		Role:                   w.Role,
		ContributionPercentage: w.ContributionPercentage,
		PublishingShare:        w.PublishingShare,
		WriterShare:            w.WriterShare,
		IsPrimary:              w.IsPrimary,
		CreditName:             w.CreditName,
	}
}

// ToWorkResponse converts domain.Work plus its writer credits to DTO.
func ToWorkResponse(work *domain.Work, writers []domain.WorkWriter) WorkResponse {
	resp := WorkResponse{
		WorkID:             work.WorkID,
		Title:              work.Title,
		ISWC:               work.ISWC,
		AlternateTitles:    work.AlternateTitles,
		Genre:              work.Genre,
		Language:           work.Language,
		Duration:           work.Duration,
		Tempo:              work.Tempo,
		RegistrationStatus: work.RegistrationStatus,
		IsInstrumental:     work.IsInstrumental,
		Description:        work.Description,
		Tags:               work.Tags,
		OriginalWorkID:     work.OriginalWorkID,
		CreatedAt:          work.CreatedAt,
		UpdatedAt:          work.UpdatedAt,
	}
	for i := range writers {
		resp.Writers = append(resp.Writers, ToWorkWriterResponse(&writers[i]))
	}
	return resp
}

// ListWorksResponse wraps a paginated list of works.
type ListWorksResponse struct {
	Works  []WorkResponse `json:"works"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ToListWorksResponse converts a slice of domain.Work to DTO. Writer
// credits are omitted in list views.
func ToListWorksResponse(ws []domain.Work, total, limit, offset int) ListWorksResponse {
	list := make([]WorkResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkResponse(&ws[i], nil)
	}
	return ListWorksResponse{Works: list, Total: total, Limit: limit, Offset: offset}
}
