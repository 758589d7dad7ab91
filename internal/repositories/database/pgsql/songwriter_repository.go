package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
)

type PgxSongwriterRepository struct {
	BaseRepository
}

// newPgxSongwriterRepository creates a new repository for songwriter data.
func newPgxSongwriterRepository(pool *pgxpool.Pool) *PgxSongwriterRepository {
	return &PgxSongwriterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SongwriterRepositoryFacade = (*PgxSongwriterRepository)(nil)

const fullSongwriterSelect = `
SELECT
	s.songwriter_id, s.publisher_id, s.first_name, s.last_name, s.stage_name,
	s.ipi, s.isni, s.email, s.phone, s.birth_date, s.birth_country,
	s.nationality, s.status, s.deceased_date, s.biography, s.website,
	s.created_at, s.created_by, s.updated_at, s.updated_by
FROM songwriters s
`

func (r *PgxSongwriterRepository) getSongwriters(ctx context.Context, tx pgx.Tx, filterQuery string, args ...any) ([]domain.Songwriter, error) {
	rows, err := tx.Query(ctx, fullSongwriterSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query songwriters", err)
	}
	songwriters, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Songwriter])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect songwriter rows", err)
	}
	return songwriters, nil
}

func (r *PgxSongwriterRepository) getOneSongwriter(ctx context.Context, tx pgx.Tx, filterQuery string, args ...any) (*domain.Songwriter, error) {
	songwriters, err := r.getSongwriters(ctx, tx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(songwriters) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &songwriters[0], nil
}

func (r *PgxSongwriterRepository) SaveSongwriter(ctx context.Context, songwriter domain.Songwriter) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO songwriters (
				songwriter_id, publisher_id, first_name, last_name, stage_name,
				ipi, isni, email, phone, birth_date, birth_country,
				nationality, status, deceased_date, biography, website,
				created_at, created_by, updated_at, updated_by
			)
			VALUES (
				$1, current_setting('app.current_publisher_id')::uuid, $2, $3, $4,
				$5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15,
				$16, $17, $18, $19
			);
		`
		_, err := tx.Exec(ctx, query,
			songwriter.SongwriterID,
			songwriter.FirstName,
			songwriter.LastName,
			songwriter.StageName,
			songwriter.IPI,
			songwriter.ISNI,
			songwriter.Email,
			songwriter.Phone,
			songwriter.BirthDate,
			songwriter.BirthCountry,
			songwriter.Nationality,
			songwriter.Status,
			songwriter.DeceasedDate,
			songwriter.Biography,
			songwriter.Website,
			songwriter.CreatedAt,
			songwriter.CreatedBy,
			songwriter.UpdatedAt,
			songwriter.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "save songwriter "+songwriter.SongwriterID)
		}
		return nil
	})
}

func (r *PgxSongwriterRepository) FindSongwriterByID(ctx context.Context, songwriterID string) (*domain.Songwriter, error) {
	var songwriter *domain.Songwriter
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		songwriter, txErr = r.getOneSongwriter(ctx, tx, `WHERE s.songwriter_id = $1`, songwriterID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return songwriter, nil
}

func (r *PgxSongwriterRepository) FindSongwriterByIPI(ctx context.Context, ipi string) (*domain.Songwriter, error) {
	var songwriter *domain.Songwriter
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		songwriter, txErr = r.getOneSongwriter(ctx, tx, `WHERE s.ipi = $1`, ipi)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return songwriter, nil
}

func (r *PgxSongwriterRepository) FindSongwriterByEmail(ctx context.Context, email string) (*domain.Songwriter, error) {
	var songwriter *domain.Songwriter
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		songwriter, txErr = r.getOneSongwriter(ctx, tx, `WHERE lower(s.email) = lower($1)`, email)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return songwriter, nil
}

func (r *PgxSongwriterRepository) FindSongwriters(ctx context.Context, filter portsrepo.SongwriterListFilter) ([]domain.Songwriter, int, error) {
	where := `WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND s.status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (s.first_name ILIKE $%d OR s.last_name ILIKE $%d OR s.stage_name ILIKE $%d)", n, n, n)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var songwriters []domain.Songwriter
	var total int
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM songwriters s `+where, args...).Scan(&total); err != nil {
			return apperrors.NewAppError(500, "failed to count songwriters", err)
		}

		pageArgs := append(args, limit, filter.Offset)
		page := fmt.Sprintf(" ORDER BY s.last_name, s.first_name LIMIT $%d OFFSET $%d", len(pageArgs)-1, len(pageArgs))
		var txErr error
		songwriters, txErr = r.getSongwriters(ctx, tx, where+page, pageArgs...)
		return txErr
	})
	if err != nil {
		return nil, 0, err
	}
	return songwriters, total, nil
}

// SearchSongwriters queries the trigger-maintained full-text index.
func (r *PgxSongwriterRepository) SearchSongwriters(ctx context.Context, query string, limit int) ([]domain.Songwriter, error) {
	var songwriters []domain.Songwriter
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		filter := `
			WHERE s.search_vector @@ plainto_tsquery('english', $1)
			ORDER BY ts_rank(s.search_vector, plainto_tsquery('english', $1)) DESC
			LIMIT $2`
		var txErr error
		songwriters, txErr = r.getSongwriters(ctx, tx, filter, query, limit)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return songwriters, nil
}

func (r *PgxSongwriterRepository) UpdateSongwriter(ctx context.Context, songwriter domain.Songwriter) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE songwriters
			SET first_name = $2, last_name = $3, stage_name = $4, ipi = $5,
				isni = $6, email = $7, phone = $8, birth_date = $9,
				birth_country = $10, nationality = $11, status = $12,
				deceased_date = $13, biography = $14, website = $15,
				updated_by = $16
			WHERE songwriter_id = $1;
		`
		result, err := tx.Exec(ctx, query,
			songwriter.SongwriterID,
			songwriter.FirstName,
			songwriter.LastName,
			songwriter.StageName,
			songwriter.IPI,
			songwriter.ISNI,
			songwriter.Email,
			songwriter.Phone,
			songwriter.BirthDate,
			songwriter.BirthCountry,
			songwriter.Nationality,
			songwriter.Status,
			songwriter.DeceasedDate,
			songwriter.Biography,
			songwriter.Website,
			songwriter.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "update songwriter "+songwriter.SongwriterID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("songwriter not found")
		}
		return nil
	})
}

func (r *PgxSongwriterRepository) DeleteSongwriter(ctx context.Context, songwriterID string) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM songwriters WHERE songwriter_id = $1;`, songwriterID)
		if err != nil {
			return mapPgError(err, "delete songwriter "+songwriterID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("songwriter not found")
		}
		return nil
	})
}

// SwapSongwriterIPIs exchanges two songwriters' IPI numbers in one
// transaction. The (publisher_id, ipi) uniqueness constraint is deferred
// to commit, so the intermediate duplicate state is never checked.
func (r *PgxSongwriterRepository) SwapSongwriterIPIs(ctx context.Context, songwriterIDA, songwriterIDB string) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var ipiA, ipiB *string
		if err := tx.QueryRow(ctx, `SELECT ipi FROM songwriters WHERE songwriter_id = $1`, songwriterIDA).Scan(&ipiA); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("songwriter not found: " + songwriterIDA)
			}
			return apperrors.NewAppError(500, "failed to read IPI", err)
		}
		if err := tx.QueryRow(ctx, `SELECT ipi FROM songwriters WHERE songwriter_id = $1`, songwriterIDB).Scan(&ipiB); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("songwriter not found: " + songwriterIDB)
			}
			return apperrors.NewAppError(500, "failed to read IPI", err)
		}

		if _, err := tx.Exec(ctx, `UPDATE songwriters SET ipi = $2 WHERE songwriter_id = $1`, songwriterIDA, ipiB); err != nil {
			return mapPgError(err, "swap songwriter IPIs")
		}
		if _, err := tx.Exec(ctx, `UPDATE songwriters SET ipi = $2 WHERE songwriter_id = $1`, songwriterIDB, ipiA); err != nil {
			return mapPgError(err, "swap songwriter IPIs")
		}
		return nil
	})
}
