package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apaar/credhub/internal/app/controllers"
	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/app/models/dto"
	"github.com/apaar/credhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	instituteController *controllers.InstituteController,
	companyController *controllers.CompanyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Health check (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Message: "Backend is working"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes, one group per role ---
	student := api.Group("/student")
	student.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/certificates", studentController.GetOwnCertificates)
	}

	institute := api.Group("/institute")
	institute.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleInstitute))
	{
		institute.POST("/issue", instituteController.IssueCertificate)
	}

	company := api.Group("/company")
	company.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleCompany))
	{
		company.GET("/check/:apparId", companyController.CheckStudent)
	}
}
