package tenantctx_test

import (
	"context"
	"testing"

	"github.com/opusregistry/catalog_backend/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherID_RoundTrip(t *testing.T) {
	ctx := tenantctx.WithPublisherID(context.Background(), "pub-123")

	id, ok := tenantctx.PublisherID(ctx)
	require.True(t, ok)
	assert.Equal(t, "pub-123", id)
}

func TestPublisherID_AbsentByDefault(t *testing.T) {
	id, ok := tenantctx.PublisherID(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestPublisherID_EmptyStringIsAbsent(t *testing.T) {
	ctx := tenantctx.WithPublisherID(context.Background(), "")
	_, ok := tenantctx.PublisherID(ctx)
	assert.False(t, ok)
}

// A new unit of work started from the same base context must not inherit
// the publisher of a previous one.
func TestPublisherID_NoLeakAcrossUnitsOfWork(t *testing.T) {
	base := context.Background()

	u1 := tenantctx.WithPublisherID(base, "publisher-a")
	id, ok := tenantctx.PublisherID(u1)
	require.True(t, ok)
	require.Equal(t, "publisher-a", id)

	// Second unit of work derives from the base context, not from u1.
	u2 := base
	_, ok = tenantctx.PublisherID(u2)
	assert.False(t, ok, "fresh unit of work must start without a publisher")
}

func TestPublisherID_InnerScopeOverrides(t *testing.T) {
	outer := tenantctx.WithPublisherID(context.Background(), "publisher-a")
	inner := tenantctx.WithPublisherID(outer, "publisher-b")

	id, _ := tenantctx.PublisherID(inner)
	assert.Equal(t, "publisher-b", id)

	// Outer scope is untouched once the inner one ends.
	id, _ = tenantctx.PublisherID(outer)
	assert.Equal(t, "publisher-a", id)
}
