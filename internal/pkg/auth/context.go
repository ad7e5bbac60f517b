package auth

import "context"

type contextKey int

const userIDKey contextKey = iota

// WithUserID stores the authenticated user id on the context. The middleware
// calls this after token validation so services can attribute writes.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, or nil when the
// request was not authenticated.
func UserIDFromContext(ctx context.Context) *int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return &id
	}
	return nil
}
