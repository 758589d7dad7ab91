package services

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// SongwriterReaderSvc defines read operations for songwriter data
type SongwriterReaderSvc interface {
	// GetSongwriterByID retrieves a songwriter by ID.
	GetSongwriterByID(ctx context.Context, songwriterID string) (*domain.Songwriter, error)

	// ListSongwriters retrieves a filtered, paginated list of songwriters
	// together with the total count.
	ListSongwriters(ctx context.Context, params dto.ListSongwritersParams) ([]domain.Songwriter, int, error)
}

// SongwriterWriterSvc defines write operations for songwriter data
type SongwriterWriterSvc interface {
	// CreateSongwriter registers a new songwriter after validating
	// identifiers and contact details.
	CreateSongwriter(ctx context.Context, req dto.CreateSongwriterRequest, creatorUserID string) (*domain.Songwriter, error)

	// UpdateSongwriter updates an existing songwriter.
	UpdateSongwriter(ctx context.Context, songwriterID string, req dto.UpdateSongwriterRequest, requestingUserID string) (*domain.Songwriter, error)

	// DeleteSongwriter removes a songwriter and their writer credits.
	DeleteSongwriter(ctx context.Context, songwriterID string, requestingUserID string) error

	// SwapSongwriterIPIs exchanges the IPI numbers of two songwriters
	// atomically.
	SwapSongwriterIPIs(ctx context.Context, songwriterIDA, songwriterIDB string, requestingUserID string) error
}

// SongwriterDedupSvc defines duplicate detection for songwriters
type SongwriterDedupSvc interface {
	// CheckSongwriterDuplicates scores existing songwriters against the
	// given name and identifiers. Matches are review candidates, never
	// merges.
	CheckSongwriterDuplicates(ctx context.Context, req dto.CreateSongwriterRequest, threshold float64) ([]domain.DuplicateMatch, error)
}

// SongwriterSvcFacade combines all songwriter-related service interfaces
type SongwriterSvcFacade interface {
	SongwriterReaderSvc
	SongwriterWriterSvc
	SongwriterDedupSvc
}
