package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/pkg/apperrors"
	"github.com/apaar/credhub/internal/pkg/auth"
)

// Context keys populated by JWTAuth for downstream handlers
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware gates protected routes. It is a pure check: no store
// access, no side effects beyond rejecting the request.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and attaches the decoded user ID
// and role to the gin context. Guard rejections are real HTTP statuses,
// unlike business outcomes which ride on 200.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HandleAPIError(c, apperrors.ErrTokenMissing)
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenMalformed)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired gates a route group to one role. JWTAuth must run first.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			HandleAPIError(c, apperrors.ErrTokenMissing)
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(requiredRole) {
			HandleAPIError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID set by JWTAuth
func UserIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
