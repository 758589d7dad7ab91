package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
)

type PgxRecordingRepository struct {
	BaseRepository
}

// newPgxRecordingRepository creates a new repository for recording data.
func newPgxRecordingRepository(pool *pgxpool.Pool) *PgxRecordingRepository {
	return &PgxRecordingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RecordingRepositoryFacade = (*PgxRecordingRepository)(nil)

const fullRecordingSelect = `
SELECT
	r.recording_id, r.publisher_id, r.work_id, r.title, r.isrc,
	r.artist_name, r.album_title, r.track_number, r.disc_number,
	r.duration_ms, r.file_format, r.recording_type, r.status,
	r.is_master, r.explicit_content, r.description,
	r.created_at, r.created_by, r.updated_at, r.updated_by
FROM recordings r
`

const fullContributorSelect = `
SELECT
	rc.contributor_id, rc.publisher_id, rc.recording_id,
	rc.contributor_name, rc.role, rc.instrument, rc.is_primary,
	rc.credit_name,
	rc.created_at, rc.created_by, rc.updated_at, rc.updated_by
FROM recording_contributors rc
`

func (r *PgxRecordingRepository) getRecordings(ctx context.Context, tx pgx.Tx, filterQuery string, args ...any) ([]domain.Recording, error) {
	rows, err := tx.Query(ctx, fullRecordingSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recordings", err)
	}
	recordings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Recording])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect recording rows", err)
	}
	return recordings, nil
}

func (r *PgxRecordingRepository) SaveRecording(ctx context.Context, recording domain.Recording) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO recordings (
				recording_id, publisher_id, work_id, title, isrc,
				artist_name, album_title, track_number, disc_number,
				duration_ms, file_format, recording_type, status,
				is_master, explicit_content, description,
				created_at, created_by, updated_at, updated_by
			)
			VALUES (
				$1, current_setting('app.current_publisher_id')::uuid, $2, $3, $4,
				$5, $6, $7, $8, $9, $10, $11, $12,
				$13, $14, $15, $16, $17, $18, $19
			);
		`
		_, err := tx.Exec(ctx, query,
			recording.RecordingID,
			recording.WorkID,
			recording.Title,
			recording.ISRC,
			recording.ArtistName,
			recording.AlbumTitle,
			recording.TrackNumber,
			recording.DiscNumber,
			recording.DurationMs,
			recording.FileFormat,
			recording.RecordingType,
			recording.Status,
			recording.IsMaster,
			recording.ExplicitContent,
			recording.Description,
			recording.CreatedAt,
			recording.CreatedBy,
			recording.UpdatedAt,
			recording.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "save recording "+recording.RecordingID)
		}
		return nil
	})
}

func (r *PgxRecordingRepository) FindRecordingByID(ctx context.Context, recordingID string) (*domain.Recording, error) {
	var recording *domain.Recording
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		recordings, err := r.getRecordings(ctx, tx, `WHERE r.recording_id = $1`, recordingID)
		if err != nil {
			return err
		}
		if len(recordings) == 0 {
			return apperrors.ErrNotFound
		}
		recording = &recordings[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recording, nil
}

func (r *PgxRecordingRepository) FindRecordingByISRC(ctx context.Context, isrc string) (*domain.Recording, error) {
	var recording *domain.Recording
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		recordings, err := r.getRecordings(ctx, tx, `WHERE r.isrc = $1`, isrc)
		if err != nil {
			return err
		}
		if len(recordings) == 0 {
			return apperrors.ErrNotFound
		}
		recording = &recordings[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recording, nil
}

func (r *PgxRecordingRepository) FindRecordings(ctx context.Context, filter portsrepo.RecordingListFilter) ([]domain.Recording, int, error) {
	where := `WHERE 1=1`
	args := []any{}
	if filter.WorkID != "" {
		args = append(args, filter.WorkID)
		where += fmt.Sprintf(" AND r.work_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND r.status = $%d", len(args))
	} else if !filter.IncludeDeleted {
		args = append(args, domain.RecordingDeleted)
		where += fmt.Sprintf(" AND r.status != $%d", len(args))
	}
	if filter.RecordingType != "" {
		args = append(args, filter.RecordingType)
		where += fmt.Sprintf(" AND r.recording_type = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (r.title ILIKE $%d OR r.artist_name ILIKE $%d)", n, n)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var recordings []domain.Recording
	var total int
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM recordings r `+where, args...).Scan(&total); err != nil {
			return apperrors.NewAppError(500, "failed to count recordings", err)
		}

		pageArgs := append(args, limit, filter.Offset)
		page := fmt.Sprintf(" ORDER BY r.title LIMIT $%d OFFSET $%d", len(pageArgs)-1, len(pageArgs))
		var txErr error
		recordings, txErr = r.getRecordings(ctx, tx, where+page, pageArgs...)
		return txErr
	})
	if err != nil {
		return nil, 0, err
	}
	return recordings, total, nil
}

func (r *PgxRecordingRepository) FindContributors(ctx context.Context, recordingID string) ([]domain.RecordingContributor, error) {
	var contributors []domain.RecordingContributor
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, fullContributorSelect+`WHERE rc.recording_id = $1 ORDER BY rc.created_at`, recordingID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query contributors", err)
		}
		contributors, err = pgx.CollectRows(rows, pgx.RowToStructByName[domain.RecordingContributor])
		if err != nil {
			return apperrors.NewAppError(500, "failed to collect contributor rows", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contributors, nil
}

func (r *PgxRecordingRepository) UpdateRecording(ctx context.Context, recording domain.Recording) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE recordings
			SET title = $2, isrc = $3, artist_name = $4, album_title = $5,
				track_number = $6, disc_number = $7, duration_ms = $8,
				file_format = $9, recording_type = $10, status = $11,
				is_master = $12, explicit_content = $13, description = $14,
				updated_by = $15
			WHERE recording_id = $1;
		`
		result, err := tx.Exec(ctx, query,
			recording.RecordingID,
			recording.Title,
			recording.ISRC,
			recording.ArtistName,
			recording.AlbumTitle,
			recording.TrackNumber,
			recording.DiscNumber,
			recording.DurationMs,
			recording.FileFormat,
			recording.RecordingType,
			recording.Status,
			recording.IsMaster,
			recording.ExplicitContent,
			recording.Description,
			recording.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "update recording "+recording.RecordingID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("recording not found")
		}
		return nil
	})
}

// MarkRecordingDeleted soft deletes a recording; the row stays for audit.
func (r *PgxRecordingRepository) MarkRecordingDeleted(ctx context.Context, recordingID string, deletedAt time.Time, deletedBy string) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE recordings
			SET status = $2, updated_by = $3
			WHERE recording_id = $1 AND status != $2;
		`
		result, err := tx.Exec(ctx, query, recordingID, domain.RecordingDeleted, deletedBy)
		if err != nil {
			return mapPgError(err, "soft delete recording "+recordingID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("recording not found")
		}
		return nil
	})
}

func (r *PgxRecordingRepository) SaveContributor(ctx context.Context, contributor domain.RecordingContributor) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO recording_contributors (
				contributor_id, publisher_id, recording_id, contributor_name,
				role, instrument, is_primary, credit_name,
				created_at, created_by, updated_at, updated_by
			)
			VALUES (
				$1, current_setting('app.current_publisher_id')::uuid, $2, $3,
				$4, $5, $6, $7, $8, $9, $10, $11
			);
		`
		_, err := tx.Exec(ctx, query,
			contributor.ContributorID,
			contributor.RecordingID,
			contributor.ContributorName,
			contributor.Role,
			contributor.Instrument,
			contributor.IsPrimary,
			contributor.CreditName,
			contributor.CreatedAt,
			contributor.CreatedBy,
			contributor.UpdatedAt,
			contributor.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "save contributor "+contributor.ContributorID)
		}
		return nil
	})
}

func (r *PgxRecordingRepository) DeleteContributor(ctx context.Context, recordingID, contributorID string) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			`DELETE FROM recording_contributors WHERE recording_id = $1 AND contributor_id = $2;`,
			recordingID, contributorID)
		if err != nil {
			return mapPgError(err, "delete contributor "+contributorID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("contributor not found")
		}
		return nil
	})
}
