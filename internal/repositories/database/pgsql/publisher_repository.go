package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
)

type PgxPublisherRepository struct {
	BaseRepository
}

// newPgxPublisherRepository creates a new repository for publisher data.
func newPgxPublisherRepository(pool *pgxpool.Pool) *PgxPublisherRepository {
	return &PgxPublisherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PublisherRepositoryFacade = (*PgxPublisherRepository)(nil)

const fullPublisherSelect = `
SELECT
	p.publisher_id, p.name, p.subdomain, p.status, p.plan_type, p.settings,
	p.created_at, p.created_by, p.updated_at, p.updated_by
FROM publishers p
`

func (r *PgxPublisherRepository) getPublisher(ctx context.Context, tx pgx.Tx, filterQuery string, args ...any) (*domain.Publisher, error) {
	rows, err := tx.Query(ctx, fullPublisherSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query publishers", err)
	}
	publisher, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Publisher])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect publisher row", err)
	}
	return &publisher, nil
}

// SavePublisher inserts the publisher with the tenant context pinned to
// the new publisher's own ID, since its policy row does not exist yet.
func (r *PgxPublisherRepository) SavePublisher(ctx context.Context, publisher domain.Publisher) error {
	tx, err := r.beginAs(ctx, publisher.PublisherID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO publishers (
			publisher_id, name, subdomain, status, plan_type, settings,
			created_at, created_by, updated_at, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		publisher.PublisherID,
		publisher.Name,
		publisher.Subdomain,
		publisher.Status,
		publisher.PlanType,
		publisher.Settings,
		publisher.CreatedAt,
		publisher.CreatedBy,
		publisher.UpdatedAt,
		publisher.UpdatedBy,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return mapPgError(err, "save publisher "+publisher.PublisherID)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPublisherRepository) FindPublisherByID(ctx context.Context, publisherID string) (*domain.Publisher, error) {
	var publisher *domain.Publisher
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		publisher, txErr = r.getPublisher(ctx, tx, `WHERE p.publisher_id = $1`, publisherID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func (r *PgxPublisherRepository) FindPublisherBySubdomain(ctx context.Context, subdomain string) (*domain.Publisher, error) {
	var publisher *domain.Publisher
	err := r.withTenantTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		publisher, txErr = r.getPublisher(ctx, tx, `WHERE p.subdomain = $1`, subdomain)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func (r *PgxPublisherRepository) UpdatePublisher(ctx context.Context, publisher domain.Publisher) error {
	return r.withTenantTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE publishers
			SET name = $2, status = $3, plan_type = $4, settings = $5, updated_by = $6
			WHERE publisher_id = $1;
		`
		result, err := tx.Exec(ctx, query,
			publisher.PublisherID,
			publisher.Name,
			publisher.Status,
			publisher.PlanType,
			publisher.Settings,
			publisher.UpdatedBy,
		)
		if err != nil {
			return mapPgError(err, "update publisher "+publisher.PublisherID)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("publisher not found")
		}
		return nil
	})
}
