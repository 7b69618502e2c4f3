package utils

import (
	"context"

	"forkful/globals"
)

// GetUserIDFromContext returns the authenticated user's id, or false when
// the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(globals.UserIDKey).(uint)
	return id, ok
}

func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(globals.UsernameKey).(string)
	return username
}
