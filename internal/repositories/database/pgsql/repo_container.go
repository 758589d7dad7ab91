package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PublisherRepo:  newPgxPublisherRepository(dbPool),
		SongwriterRepo: newPgxSongwriterRepository(dbPool),
		WorkRepo:       newPgxWorkRepository(dbPool),
		RecordingRepo:  newPgxRecordingRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}
