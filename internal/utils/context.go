// Package utils holds small helpers shared by the server and the admin
// client: typed context keys, JSON responses, access tokens and ids.
package utils

import (
	"context"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")

	// RoleCtxKey stores the role (models.Role) taken from the access token.
	RoleCtxKey = contextKey("role")
)

// GetUserIDFromContext returns the user id put into ctx by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext returns the role of the authenticated user.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// WithUser returns a copy of ctx carrying the user id and role.
func WithUser(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
