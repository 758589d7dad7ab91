package dto

import (
	"time"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// --- Recording DTOs ---

// CreateRecordingRequest defines data for creating a recording of a work.
type CreateRecordingRequest struct {
	WorkID          string               `json:"workID" binding:"required,uuid"`
	Title           string               `json:"title" binding:"required,max=500"`
	ISRC            *string              `json:"isrc" binding:"omitempty,isrc"`
	ArtistName      string               `json:"artistName" binding:"required,max=255"`
	AlbumTitle      *string              `json:"albumTitle" binding:"omitempty,max=500"`
	TrackNumber     *int                 `json:"trackNumber" binding:"omitempty,gte=1,lte=999"`
	DiscNumber      *int                 `json:"discNumber" binding:"omitempty,gte=1,lte=99"`
	DurationMs      *int                 `json:"durationMs" binding:"omitempty,gt=0"`
	FileFormat      *string              `json:"fileFormat" binding:"omitempty,oneof=mp3 wav flac aac ogg m4a aiff"`
	RecordingType   domain.RecordingType `json:"recordingType" binding:"omitempty,oneof=studio live demo remix remaster alternate acoustic"`
	IsMaster        bool                 `json:"isMaster"`
	ExplicitContent bool                 `json:"explicitContent"`
	Description     *string              `json:"description"`
}

// UpdateRecordingRequest defines updatable recording fields.
type UpdateRecordingRequest struct {
	Title           *string                 `json:"title" binding:"omitempty,max=500"`
	ISRC            *string                 `json:"isrc" binding:"omitempty,isrc"`
	ArtistName      *string                 `json:"artistName" binding:"omitempty,max=255"`
	AlbumTitle      *string                 `json:"albumTitle" binding:"omitempty,max=500"`
	TrackNumber     *int                    `json:"trackNumber" binding:"omitempty,gte=1,lte=999"`
	DiscNumber      *int                    `json:"discNumber" binding:"omitempty,gte=1,lte=99"`
	DurationMs      *int                    `json:"durationMs" binding:"omitempty,gt=0"`
	FileFormat      *string                 `json:"fileFormat" binding:"omitempty,oneof=mp3 wav flac aac ogg m4a aiff"`
	RecordingType   *domain.RecordingType   `json:"recordingType" binding:"omitempty,oneof=studio live demo remix remaster alternate acoustic"`
	Status          *domain.RecordingStatus `json:"status" binding:"omitempty,oneof=active archived"`
	IsMaster        *bool                   `json:"isMaster"`
	ExplicitContent *bool                   `json:"explicitContent"`
	Description     *string                 `json:"description"`
}

// AddContributorRequest credits a contributor on a recording.
type AddContributorRequest struct {
	ContributorName string  `json:"contributorName" binding:"required,max=255"`
	Role            string  `json:"role" binding:"required,max=100"`
	Instrument      *string `json:"instrument" binding:"omitempty,max=100"`
	IsPrimary       bool    `json:"isPrimary"`
	CreditName      *string `json:"creditName" binding:"omitempty,max=255"`
}

// ContributorResponse defines data returned for a recording contributor.
type ContributorResponse struct {
	ContributorID   string  `json:"contributorID"`
	RecordingID     string  `json:"recordingID"`
	ContributorName string  `json:"contributorName"`
	Role            string  `json:"role"`
	Instrument      *string `json:"instrument,omitempty"`
	IsPrimary       bool    `json:"isPrimary"`
	CreditName      *string `json:"creditName,omitempty"`
}

// RecordingResponse defines data returned for a recording.
type RecordingResponse struct {
	RecordingID     string                 `json:"recordingID"`
	WorkID          string                 `json:"workID"`
	Title           string                 `json:"title"`
	ISRC            *string                `json:"isrc,omitempty"`
	ArtistName      string                 `json:"artistName"`
	AlbumTitle      *string                `json:"albumTitle,omitempty"`
	TrackNumber     *int                   `json:"trackNumber,omitempty"`
	DiscNumber      *int                   `json:"discNumber,omitempty"`
	DurationMs      *int                   `json:"durationMs,omitempty"`
	FileFormat      *string                `json:"fileFormat,omitempty"`
	RecordingType   domain.RecordingType   `json:"recordingType"`
	Status          domain.RecordingStatus `json:"status"`
	IsMaster        bool                   `json:"isMaster"`
	ExplicitContent bool                   `json:"explicitContent"`
	Description     *string                `json:"description,omitempty"`
	Contributors    []ContributorResponse  `json:"contributors,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// ToContributorResponse converts domain.RecordingContributor to DTO.
func ToContributorResponse(c *domain.RecordingContributor) ContributorResponse {
	return ContributorResponse{
		ContributorID:   c.ContributorID,
		RecordingID:     c.RecordingID,
		ContributorName: c.ContributorName,
		Role:            c.Role,
		Instrument:      c.Instrument,
		IsPrimary:       c.IsPrimary,
		CreditName:      c.CreditName,
	}
}

// ToRecordingResponse converts domain.Recording plus its contributors to
// DTO.
func ToRecordingResponse(r *domain.Recording, contributors []domain.RecordingContributor) RecordingResponse {
	resp := RecordingResponse{
		RecordingID:     r.RecordingID,
		WorkID:          r.WorkID,
		Title:           r.Title,
		ISRC:            r.ISRC,
		ArtistName:      r.ArtistName,
		AlbumTitle:      r.AlbumTitle,
		TrackNumber:     r.TrackNumber,
		DiscNumber:      r.DiscNumber,
		DurationMs:      r.DurationMs,
		FileFormat:      r.FileFormat,
		RecordingType:   r.RecordingType,
		Status:          r.Status,
		IsMaster:        r.IsMaster,
		ExplicitContent: r.ExplicitContent,
		Description:     r.Description,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for i := range contributors {
		resp.Contributors = append(resp.Contributors, ToContributorResponse(&contributors[i]))
	}
	return resp
}

// ListRecordingsResponse wraps a paginated list of recordings.
type ListRecordingsResponse struct {
	Recordings []RecordingResponse `json:"recordings"`
	Total      int                 `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// ToListRecordingsResponse converts a slice of domain.Recording to DTO.
func ToListRecordingsResponse(rs []domain.Recording, total, limit, offset int) ListRecordingsResponse {
	list := make([]RecordingResponse, len(rs))
	for i := range rs {
		list[i] = ToRecordingResponse(&rs[i], nil)
	}
	return ListRecordingsResponse{Recordings: list, Total: total, Limit: limit, Offset: offset}
}
