package dto

import (
	"time"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// --- Songwriter DTOs ---

// CreateSongwriterRequest defines data for registering a songwriter.
type CreateSongwriterRequest struct {
	FirstName    string                  `json:"firstName" binding:"required,max=100"`
	LastName     string                  `json:"lastName" binding:"required,max=100"`
	StageName    *string                 `json:"stageName" binding:"omitempty,max=255"`
	IPI          *string                 `json:"ipi" binding:"omitempty,max=15"`
	ISNI         *string                 `json:"isni" binding:"omitempty,max=16"`
	Email        *string                 `json:"email" binding:"omitempty,max=255"`
	Phone        *string                 `json:"phone" binding:"omitempty,max=50"`
	BirthDate    *time.Time              `json:"birthDate"`
	BirthCountry *string                 `json:"birthCountry" binding:"omitempty,len=2,alpha"`
	Nationality  *string                 `json:"nationality" binding:"omitempty,len=2,alpha"`
	Status       domain.SongwriterStatus `json:"status" binding:"omitempty,oneof=active inactive deceased"`
	DeceasedDate *time.Time              `json:"deceasedDate"`
	Biography    *string                 `json:"biography"`
	Website      *string                 `json:"website" binding:"omitempty,max=255"`
}

// UpdateSongwriterRequest defines updatable songwriter fields.
type UpdateSongwriterRequest struct {
	FirstName    *string                  `json:"firstName" binding:"omitempty,max=100"`
	LastName     *string                  `json:"lastName" binding:"omitempty,max=100"`
	StageName    *string                  `json:"stageName" binding:"omitempty,max=255"`
	IPI          *string                  `json:"ipi" binding:"omitempty,max=15"`
	ISNI         *string                  `json:"isni" binding:"omitempty,max=16"`
	Email        *string                  `json:"email" binding:"omitempty,max=255"`
	Phone        *string                  `json:"phone" binding:"omitempty,max=50"`
	Status       *domain.SongwriterStatus `json:"status" binding:"omitempty,oneof=active inactive deceased"`
	DeceasedDate *time.Time               `json:"deceasedDate"`
	Biography    *string                  `json:"biography"`
	Website      *string                  `json:"website" binding:"omitempty,max=255"`
}

// SongwriterResponse defines data returned for a songwriter.
type SongwriterResponse struct {
	SongwriterID string                  `json:"songwriterID"`
	FirstName    string                  `json:"firstName"`
	LastName     string                  `json:"lastName"`
	StageName    *string                 `json:"stageName,omitempty"`
	IPI          *string                 `json:"ipi,omitempty"`
	ISNI         *string                 `json:"isni,omitempty"`
	Email        *string                 `json:"email,omitempty"`
	Phone        *string                 `json:"phone,omitempty"`
	BirthCountry *string                 `json:"birthCountry,omitempty"`
	Nationality  *string                 `json:"nationality,omitempty"`
	Status       domain.SongwriterStatus `json:"status"`
	DeceasedDate *time.Time              `json:"deceasedDate,omitempty"`
	Biography    *string                 `json:"biography,omitempty"`
	Website      *string                 `json:"website,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// ToSongwriterResponse converts domain.Songwriter to DTO.
func ToSongwriterResponse(s *domain.Songwriter) SongwriterResponse {
	return SongwriterResponse{
		SongwriterID: s.SongwriterID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		StageName:    s.StageName,
		IPI:          s.IPI,
		ISNI:         s.ISNI,
		Email:        s.Email,
		Phone:        s.Phone,
		BirthCountry: s.BirthCountry,
		Nationality:  s.Nationality,
		Status:       s.Status,
		DeceasedDate: s.DeceasedDate,
		Biography:    s.Biography,
		Website:      s.Website,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ListSongwritersResponse wraps a paginated list of songwriters.
type ListSongwritersResponse struct {
	Songwriters []SongwriterResponse `json:"songwriters"`
	Total       int                  `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// ToListSongwritersResponse converts a slice of domain.Songwriter to DTO.
func ToListSongwritersResponse(ss []domain.Songwriter, total, limit, offset int) ListSongwritersResponse {
	list := make([]SongwriterResponse, len(ss))
	for i, s := range ss {
		list[i] = ToSongwriterResponse(&s)
	}
	return ListSongwritersResponse{Songwriters: list, Total: total, Limit: limit, Offset: offset}
}

// DuplicateMatchResponse is one scored duplicate candidate.
type DuplicateMatchResponse struct {
	EntityID  string  `json:"entityID"`
	Display   string  `json:"display"`
	Score     float64 `json:"score"`
	MatchType string  `json:"matchType"`
}

// DuplicateScanResponse wraps the candidates of a duplicate scan.
type DuplicateScanResponse struct {
	Candidates []DuplicateMatchResponse `json:"candidates"`
}

// ToDuplicateScanResponse converts duplicate matches to DTO.
func ToDuplicateScanResponse(matches []domain.DuplicateMatch) DuplicateScanResponse {
	list := make([]DuplicateMatchResponse, len(matches))
	for i, m := range matches {
		list[i] = DuplicateMatchResponse{
			EntityID:  m.EntityID,
			Display:   m.Display,
			Score:     m.Score,
			MatchType: string(m.MatchType),
		}
	}
	return DuplicateScanResponse{Candidates: list}
}
