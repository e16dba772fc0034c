package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apaar/credhub/internal/app/models/dto"
	"github.com/apaar/credhub/internal/pkg/apperrors"
	"github.com/apaar/credhub/internal/pkg/logger"
)

// HandleAPIError maps service and guard errors onto the wire contract.
// Guard failures (missing/bad tokens, wrong role) are real HTTP
// statuses and abort the handler chain. Business outcomes (validation,
// conflict, not-found, bad credentials) are HTTP 200 with
// success=false and a message. Anything unexpected is a 500 with a
// generic message, with the full error logged server-side only.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Guard failures
	case errors.Is(err, apperrors.ErrTokenMissing):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailureResponse("No token"))
	case errors.Is(err, apperrors.ErrTokenMalformed):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailureResponse("Invalid token format"))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		// Expired, tampered, or wrong signature all read the same to
		// the client.
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailureResponse("Token invalid"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewFailureResponse("Forbidden"))

	// Business outcomes
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusOK, dto.NewFailureResponse(customMessage(err, "Missing required fields")))
	case errors.Is(err, apperrors.ErrMissingFields):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Missing required fields"))
	case errors.Is(err, apperrors.ErrInvalidRole):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Invalid role"))
	case errors.Is(err, apperrors.ErrMissingData):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Missing data"))
	case errors.Is(err, apperrors.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusOK, dto.NewFailureResponse("User not found"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrInstituteNotFound):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Institute not found"))
	case errors.Is(err, apperrors.ErrApparIDNotFound):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Student with this APPAR ID not found"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusOK, dto.NewFailureResponse("Student not found"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unexpected server error")
		c.JSON(http.StatusInternalServerError, dto.NewFailureResponse("Server error"))
	}
}

// customMessage returns the CustomError message riding on err, or the
// fallback when there is none.
func customMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
