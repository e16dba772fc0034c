package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/apaar/credhub/internal/pkg/apperrors"
)

func TestHandleAPIError_BusinessFailuresRideOn200(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err     error
		message string
	}{
		{err: apperrors.ErrMissingFields, message: "Missing required fields"},
		{err: apperrors.ErrInvalidRole, message: "Invalid role"},
		{err: apperrors.ErrMissingData, message: "Missing data"},
		{err: apperrors.ErrEmailAlreadyRegistered, message: "Email already registered"},
		{err: apperrors.ErrUserNotFound, message: "User not found"},
		{err: apperrors.ErrInvalidCredentials, message: "Invalid credentials"},
		{err: apperrors.ErrInstituteNotFound, message: "Institute not found"},
		{err: apperrors.ErrApparIDNotFound, message: "Student with this APPAR ID not found"},
		{err: apperrors.ErrStudentNotFound, message: "Student not found"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"message":%q}`, tt.message), w.Body.String())
		})
	}
}

func TestHandleAPIError_GuardFailuresAbortWithStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err     error
		code    int
		message string
	}{
		{err: apperrors.ErrTokenMissing, code: http.StatusUnauthorized, message: "No token"},
		{err: apperrors.ErrTokenMalformed, code: http.StatusUnauthorized, message: "Invalid token format"},
		{err: apperrors.ErrTokenExpired, code: http.StatusUnauthorized, message: "Token invalid"},
		{err: apperrors.ErrTokenInvalid, code: http.StatusUnauthorized, message: "Token invalid"},
		{err: apperrors.ErrForbidden, code: http.StatusForbidden, message: "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"message":%q}`, tt.message), w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}

func TestHandleAPIError_ValidationCarriesCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("custom message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Missing data"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Missing data"}`, w.Body.String())
	})

	t.Run("bare sentinel falls back", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleAPIError(c, apperrors.ErrValidationFailed)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Missing required fields"}`, w.Body.String())
	})
}

func TestHandleAPIError_WrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, fmt.Errorf("signup: %w", apperrors.ErrEmailAlreadyRegistered))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Email already registered"}`, w.Body.String())
}

func TestHandleAPIError_UnexpectedIs500Generic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details never leak to the client
	assert.JSONEq(t, `{"success":false,"message":"Server error"}`, w.Body.String())
}
