// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/apaar/credhub/internal/app/models/dto"
	"github.com/apaar/credhub/internal/app/services"
	"github.com/apaar/credhub/internal/middleware"
	"github.com/apaar/credhub/internal/pkg/apperrors"
)

// AuthController handles signup and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles account creation
// @Summary Register a new account
// @Description Creates a student, institute, or company account. The role is fixed at creation.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup information"
// @Success 200 {object} dto.MessageResponse "success=false carries the business failure message"
// @Failure 500 {object} dto.MessageResponse "Unexpected server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Missing required fields"))
		return
	}

	if err := c.authService.Signup(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User registered successfully"))
}

// Login handles credential verification and token issuance
// @Summary Log in
// @Description Verifies email and password, returns a 7-day bearer token with the account's role and name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 500 {object} dto.MessageResponse "Unexpected server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "User not found"))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
