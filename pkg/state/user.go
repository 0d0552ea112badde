package state

import (
	"context"
)

const (
	CurrentUserId    = "CurrentUserId"
	CurrentUserIP    = "CurrentIP"
	CurrentRequestID = "CurrentRequestID"
)

// CurrentUser returns the authenticated user's ID, or 0 when the request
// carried no valid session token.
func CurrentUser(ctx context.Context) uint {
	userID, ok := ctx.Value(CurrentUserId).(uint)
	if !ok {
		return 0
	}
	return userID
}

func SetCurrentUser(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, CurrentUserId, userID)
}

func CurrentIP(ctx context.Context) string {
	ip, _ := ctx.Value(CurrentUserIP).(string)
	return ip
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(CurrentRequestID).(string)
	return id
}
