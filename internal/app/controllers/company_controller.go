package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/apaar/credhub/internal/app/services"
	"github.com/apaar/credhub/internal/middleware"
)

// CompanyController handles employer-facing verification lookups
type CompanyController struct {
	certificateService services.CertificateService
	logger             zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(certificateService services.CertificateService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{
		certificateService: certificateService,
		logger:             logger,
	}
}

// CheckStudent resolves an APPAR ID to a student's certificate list
// @Summary Verify a student
// @Description Read-only lookup of a student's name and certificates by APPAR ID
// @Tags company
// @Produce json
// @Security BearerAuth
// @Param apparId path string true "Student APPAR ID"
// @Success 200 {object} dto.CheckStudentResponse
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 403 {object} dto.MessageResponse "Caller is not a company"
// @Router /company/check/{apparId} [get]
func (c *CompanyController) CheckStudent(ctx *gin.Context) {
	apparID := ctx.Param("apparId")

	resp, err := c.certificateService.CheckStudent(ctx.Request.Context(), apparID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
