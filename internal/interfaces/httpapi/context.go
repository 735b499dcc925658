package httpapi

import "context"

type contextKey string

const callerContextKey contextKey = "caller_id"

func withCaller(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, callerContextKey, userID)
}

func callerFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(callerContextKey).(string)
	return userID, ok && userID != ""
}
