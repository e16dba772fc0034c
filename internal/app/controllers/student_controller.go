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

// StudentController handles student-facing certificate operations
type StudentController struct {
	certificateService services.CertificateService
	logger             zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(certificateService services.CertificateService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		certificateService: certificateService,
		logger:             logger,
	}
}

// GetOwnCertificates returns the authenticated student's certificates
// @Summary List own certificates
// @Description Returns the caller's certificate list in issuance order; empty list when none issued yet
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CertificateListResponse
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 403 {object} dto.MessageResponse "Caller is not a student"
// @Router /student/certificates [get]
func (c *StudentController) GetOwnCertificates(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	certificates, err := c.certificateService.ListOwnCertificates(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateListResponse{
		Success:      true,
		Certificates: certificates,
	})
}
