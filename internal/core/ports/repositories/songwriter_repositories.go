package repositories

import (
	"context"

	"github.com/opusregistry/catalog_backend/internal/core/domain"
)

// SongwriterListFilter narrows FindSongwriters results. Zero values mean
// no filtering on that field.
type SongwriterListFilter struct {
	Status domain.SongwriterStatus
	Search string // matched against first, last and stage name
	Limit  int
	Offset int
}

// SongwriterReader defines read operations for songwriter data
type SongwriterReader interface {
	// FindSongwriterByID retrieves a specific songwriter by their ID.
	FindSongwriterByID(ctx context.Context, songwriterID string) (*domain.Songwriter, error)

	// FindSongwriters retrieves a filtered, paginated list of songwriters
	// together with the total count for the filter.
	FindSongwriters(ctx context.Context, filter SongwriterListFilter) ([]domain.Songwriter, int, error)

	// FindSongwriterByIPI retrieves a songwriter by exact IPI match.
	FindSongwriterByIPI(ctx context.Context, ipi string) (*domain.Songwriter, error)

	// FindSongwriterByEmail retrieves a songwriter by exact email match.
	FindSongwriterByEmail(ctx context.Context, email string) (*domain.Songwriter, error)

	// SearchSongwriters runs a full-text search over names, stage name
	// and biography.
	SearchSongwriters(ctx context.Context, query string, limit int) ([]domain.Songwriter, error)
}

// SongwriterWriter defines write operations for songwriter data
type SongwriterWriter interface {
	// SaveSongwriter persists a new songwriter.
	SaveSongwriter(ctx context.Context, songwriter domain.Songwriter) error

	// UpdateSongwriter updates an existing songwriter's details.
	UpdateSongwriter(ctx context.Context, songwriter domain.Songwriter) error

	// DeleteSongwriter removes a songwriter and cascades to their writer
	// credits.
	DeleteSongwriter(ctx context.Context, songwriterID string) error

	// SwapSongwriterIPIs exchanges the IPI numbers of two songwriters in
	// a single transaction. The per-tenant IPI uniqueness check defers
	// to commit, so the intermediate state never fails.
	SwapSongwriterIPIs(ctx context.Context, songwriterIDA, songwriterIDB string) error
}

// SongwriterRepositoryFacade combines all songwriter-related repository interfaces
// This is a facade for clients that need access to all operations
type SongwriterRepositoryFacade interface {
	SongwriterReader
	SongwriterWriter
}
