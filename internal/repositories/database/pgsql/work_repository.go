package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
)

type PgxWorkRepository struct {
	BaseRepository
}

// newPgxWorkRepository creates a new repository for work data.
func newPgxWorkRepository(pool *pgxpool.Pool) *PgxWorkRepository {
	return &PgxWorkRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkRepositoryFacade = (*PgxWorkRepository)(nil)

const fullWorkSelect = `
SELECT
	w.work_id, w.publisher_id, w.title, w.iswc, w.alternate_titles, w.genre,
	w.language, w.duration, w.tempo, w.registration_status,
	w.is_instrumental, w.description, w.tags, w.original_work_id,
	w.created_at, w.created_by, w.updated_at, w.updated_by
FROM works w
`

const fullWorkWriterSelect = `
SELECT
	ww.work_writer_id, ww.publisher_id, ww.work_id, ww.songwriter_id,
	ww.role, ww.contribution_percentage, ww.publishing_share,
	ww.writer_share, ww.is_primary, ww.credit_name,
	ww.created_at, ww.created_by, ww.updated_at, ww.updated_by
FROM work_writers ww
`

func (r *PgxWorkRepository) getWorks(ctx context.Context, tx pgx.Tx, filterQuery string, args ...any) ([]domain.Work, error) {
	rows, err := tx.Query(ctx, fullWorkSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query works", err)
	}
	works, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Work])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect work rows", err)
	}
	return works, nil
}

func (r *PgxWorkRepository) getOneWork(ctx context.Context, tx pgx.Tx, filterQuery string, args ...any) (*domain.Work, error) {
	works, err := r.getWorks(ctx, tx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(works) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &works[0], nil
}

func (r *PgxWorkRepository) insertWriters(ctx context.Context, tx pgx.Tx, writers []domain.WorkWriter) error {
	query := `
		INSERT INTO work_writers (
			work_writer_id, publisher_id, work_id, songwriter_id, role,
			contribution_percentage, publishing_share, writer_share,
			is_primary, credit_name,
			created_at, created_by, updated_at, updated_by
		)
		VALUES (
			$1, current_setting('app.current_publisher_id')::uuid, $2, $3, $4,
			$5, $6, $7, $8, $9, $10, $11, $12, $13
		);
	`
	for _, w := range writers {
		_, err := tx.Exec(ctx, query,
			w.WorkWriterID,
			w.WorkID,
			w.SongwriterID,
			w.Role,
			w.ContributionPercentage,
			w.PublishingShare,
			w.WriterShare,
			w.IsPrimary,
			w.CreditName,
			w.CreatedAt,
			w.CreatedBy,
			w.UpdatedAt,
			w.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "save work writer "+w.WorkWriterID)
		}
	}
	return nil
}

// SaveWork inserts the work and its writer credits in one transaction.
func (r *PgxWorkRepository) SaveWork(ctx context.Context, work domain.Work, writers []domain.WorkWriter) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO works (
				work_id, publisher_id, title, iswc, alternate_titles, genre,
				language, duration, tempo, registration_status,
				is_instrumental, description, tags, original_work_id,
				created_at, created_by, updated_at, updated_by
			)
			VALUES (
				$1, current_setting('app.current_publisher_id')::uuid, $2, $3, $4, $5,
				$6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
			);
		`
		_, err := tx.Exec(ctx, query,
			work.WorkID,
			work.Title,
			work.ISWC,
			work.AlternateTitles,
			work.Genre,
			work.Language,
			work.Duration,
			work.Tempo,
			work.RegistrationStatus,
			work.IsInstrumental,
			work.Description,
			work.Tags,
			work.OriginalWorkID,
			work.CreatedAt,
			work.CreatedBy,
			work.UpdatedAt,
			work.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "save work "+work.WorkID)
		}
		return r.insertWriters(ctx, tx, writers)
	})
}

func (r *PgxWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.Work, error) {
	var work *domain.Work
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		work, txErr = r.getOneWork(ctx, tx, `WHERE w.work_id = $1`, workID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return work, nil
}

func (r *PgxWorkRepository) FindWorkByISWC(ctx context.Context, iswc string) (*domain.Work, error) {
	var work *domain.Work
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		work, txErr = r.getOneWork(ctx, tx, `WHERE w.iswc = $1`, iswc)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return work, nil
}

func (r *PgxWorkRepository) FindWorks(ctx context.Context, filter portsrepo.WorkListFilter) ([]domain.Work, int, error) {
	where := `WHERE 1=1`
	args := []any{}
	if filter.RegistrationStatus != "" {
		args = append(args, filter.RegistrationStatus)
		where += fmt.Sprintf(" AND w.registration_status = $%d", len(args))
	}
	if filter.Genre != "" {
		args = append(args, filter.Genre)
		where += fmt.Sprintf(" AND w.genre = $%d", len(args))
	}
	if filter.Language != "" {
		args = append(args, filter.Language)
		where += fmt.Sprintf(" AND w.language = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (w.title ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(w.alternate_titles) alt WHERE alt ILIKE $%d))", n, n)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var works []domain.Work
	var total int
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM works w `+where, args...).Scan(&total); err != nil {
			return apperrors.NewAppError(500, "failed to count works", err)
		}

		pageArgs := append(args, limit, filter.Offset)
		page := fmt.Sprintf(" ORDER BY w.title LIMIT $%d OFFSET $%d", len(pageArgs)-1, len(pageArgs))
		var txErr error
		works, txErr = r.getWorks(ctx, tx, where+page, pageArgs...)
		return txErr
	})
	if err != nil {
		return nil, 0, err
	}
	return works, total, nil
}

func (r *PgxWorkRepository) FindWorkWriters(ctx context.Context, workID string) ([]domain.WorkWriter, error) {
	var writers []domain.WorkWriter
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, fullWorkWriterSelect+`WHERE ww.work_id = $1 ORDER BY ww.created_at`, workID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query work writers", err)
		}
		writers, err = pgx.CollectRows(rows, pgx.RowToStructByName[domain.WorkWriter])
		if err != nil {
			return apperrors.NewAppError(500, "failed to collect work writer rows", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return writers, nil
}

// SearchWorks queries the trigger-maintained full-text index.
func (r *PgxWorkRepository) SearchWorks(ctx context.Context, query string, limit int) ([]domain.Work, error) {
	var works []domain.Work
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		filter := `
			WHERE w.search_vector @@ plainto_tsquery('english', $1)
			ORDER BY ts_rank(w.search_vector, plainto_tsquery('english', $1)) DESC
			LIMIT $2`
		var txErr error
		works, txErr = r.getWorks(ctx, tx, filter, query, limit)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return works, nil
}

func (r *PgxWorkRepository) UpdateWork(ctx context.Context, work domain.Work) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE works
			SET title = $2, iswc = $3, alternate_titles = $4, genre = $5,
				language = $6, duration = $7, tempo = $8,
				registration_status = $9, is_instrumental = $10,
				description = $11, tags = $12, updated_by = $13
			WHERE work_id = $1;
		`
		result, err := tx.Exec(ctx, query,
			work.WorkID,
			work.Title,
			work.ISWC,
			work.AlternateTitles,
			work.Genre,
			work.Language,
			work.Duration,
			work.Tempo,
			work.RegistrationStatus,
			work.IsInstrumental,
			work.Description,
			work.Tags,
			work.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "update work "+work.WorkID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("work not found")
		}
		return nil
	})
}

// ReplaceWorkWriters deletes and reinserts the writer set in one
// transaction. The (publisher_id, work_id, songwriter_id, role) constraint
// defers to commit, so reinserting an existing credit never trips it.
func (r *PgxWorkRepository) ReplaceWorkWriters(ctx context.Context, workID string, writers []domain.WorkWriter) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM work_writers WHERE work_id = $1;`, workID); err != nil {
			return mapPgError(err, "clear work writers for "+workID)
		}
		return r.insertWriters(ctx, tx, writers)
	})
}

func (r *PgxWorkRepository) DeleteWork(ctx context.Context, workID string) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM works WHERE work_id = $1;`, workID)
		if err != nil {
			return mapPgError(err, "delete work "+workID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("work not found")
		}
		return nil
	})
}
