package api

import (
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	enrollmentService service.EnrollmentService,
	leadService service.LeadService,
) {

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	enrollmentHandler := NewEnrollmentHandler(enrollmentService)
	leadHandler := NewLeadHandler(leadService)
	adminHandler := NewAdminHandler(catalogService, leadService)
	bmiHandler := NewBMIHandler()

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// --- Public catalog & visitor routes ---
		apiV1.GET("/programs", catalogHandler.ListPrograms)
		apiV1.GET("/programs/:id", catalogHandler.GetProgram)
		apiV1.GET("/trainers", catalogHandler.ListTrainers)
		apiV1.GET("/trainers/:id", catalogHandler.GetTrainer)
		apiV1.GET("/membership/plans", catalogHandler.ListMembershipPlans)
		apiV1.POST("/bmi", bmiHandler.Calculate)

		leadGroup := apiV1.Group("/leads")
		{
			leadGroup.POST("/contact", leadHandler.SubmitContact)
			leadGroup.POST("/join", leadHandler.SubmitJoinNow)
		}
	}

	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		// Session restore: token subject re-validated against the store.
		protected.GET("/me", authHandler.Me)

		// --- Member routes ---
		protected.POST("/enrollments", enrollmentHandler.Enroll)
		protected.GET("/enrollments", enrollmentHandler.ListMine)
		protected.GET("/dashboard/stats", enrollmentHandler.Stats)

		// --- Admin console ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.POST("/programs", adminHandler.CreateProgram)
			adminGroup.PUT("/programs/:id", adminHandler.UpdateProgram)
			adminGroup.DELETE("/programs/:id", adminHandler.DeleteProgram)

			adminGroup.POST("/trainers", adminHandler.CreateTrainer)
			adminGroup.PUT("/trainers/:id", adminHandler.UpdateTrainer)
			adminGroup.DELETE("/trainers/:id", adminHandler.DeleteTrainer)

			adminGroup.GET("/members", adminHandler.ListMembers)
			adminGroup.GET("/leads", adminHandler.ListLeads)

			adminGroup.POST("/uploads/images", adminHandler.CreateImageUpload)
		}
	}
}
