package middleware

import (
	"context"

	"dairybook/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTCustomClaims carries the company scope of every request. Tokens are
// issued by the account service; this backend only verifies and scopes.
type JWTCustomClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	jwt.RegisteredClaims
}

// TenantContext copies the validated JWT claims into the request context so
// repositories and services see the tenant scope. Wired as the echo-jwt
// SuccessHandler.
func TenantContext(c echo.Context) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return
	}
	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok {
		return
	}

	ctx := context.WithValue(c.Request().Context(), common.UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, common.TenantIDKey, claims.TenantID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetTenantIDFromContext extracts the tenant ID from the request context
func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(common.TenantIDKey).(uuid.UUID)
	return tenantID, ok
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(common.UserIDKey).(uuid.UUID)
	return userID, ok
}
