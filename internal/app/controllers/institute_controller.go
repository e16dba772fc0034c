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

// InstituteController handles institute-facing issuance operations
type InstituteController struct {
	certificateService services.CertificateService
	logger             zerolog.Logger
}

// NewInstituteController creates a new InstituteController
func NewInstituteController(certificateService services.CertificateService, logger zerolog.Logger) *InstituteController {
	return &InstituteController{
		certificateService: certificateService,
		logger:             logger,
	}
}

// IssueCertificate appends a certificate to a student by APPAR ID
// @Summary Issue a certificate
// @Description Appends one certificate to the student addressed by APPAR ID. The issue date is set server-side; the issuedBy field snapshots the institute's current name.
// @Tags institute
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IssueCertificateRequest true "Issuance data"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 403 {object} dto.MessageResponse "Caller is not an institute"
// @Router /institute/issue [post]
func (c *InstituteController) IssueCertificate(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.IssueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid issuance request payload")
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Missing data"))
		return
	}

	if err := c.certificateService.IssueCertificate(ctx.Request.Context(), userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Certificate issued successfully"))
}
