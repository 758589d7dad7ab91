package pgsql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
)

func TestBeginFailsClosedWithoutPublisherContext(t *testing.T) {
	repo := &BaseRepository{}

	// The tenant check runs before any pool access, so a missing binding
	// must be rejected without touching the database.
	tx, err := repo.Begin(context.Background())
	require.Nil(t, tx)
	require.ErrorIs(t, err, apperrors.ErrNoPublisherContext)
}
