package tenantctx

import "context"

// publisherIDKey is the key used to store the current publisher ID in a
// context. Using a custom type prevents collisions.
type contextKey string

const publisherIDKey = contextKey("publisherID")

// WithPublisherID returns a child context carrying the given publisher ID.
// The publisher context is scoped to one unit of work (one request or one
// explicit transaction): it lives and dies with the context itself, so a
// pooled worker picking up a fresh request can never inherit a stale
// publisher from a previous one.
func WithPublisherID(ctx context.Context, publisherID string) context.Context {
	return context.WithValue(ctx, publisherIDKey, publisherID)
}

// PublisherID retrieves the current publisher ID from the context. The
// boolean reports whether one was set. Storage code must treat a missing
// publisher as a hard error, never as "unscoped".
func PublisherID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(publisherIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
