package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const lookupIDKey ctxKey = "lookup_id"

// WithLookupID stores the ID of the word currently being resolved.
func WithLookupID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, lookupIDKey, id)
}

// LookupIDFromCtx extracts the lookup ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func LookupIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(lookupIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
