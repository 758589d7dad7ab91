package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
)

// PgxUserRepository stores platform-level user accounts. Users are not
// tenant-scoped, so queries run directly on the pool without a publisher
// binding.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const fullUserSelect = `
SELECT
	u.user_id, u.username, u.password_hash, u.name,
	u.created_at, u.created_by, u.updated_at, u.updated_by, u.deleted_at
FROM users u
`

func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, fullUserSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, username, password_hash, name,
			created_at, created_by, updated_at, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.CreatedAt,
		user.CreatedBy,
		user.UpdatedAt,
		user.UpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "save user "+user.UserID)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1 AND u.deleted_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.username = $1 AND u.deleted_at IS NULL`, username)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	return r.getUsers(ctx, `WHERE u.deleted_at IS NULL ORDER BY u.created_at LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, user.UserID, user.Name, user.UpdatedBy)
	if err != nil {
		return mapPgError(err, "update user "+user.UserID)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users
		SET deleted_at = $2, updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return mapPgError(err, "delete user "+userID)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}
