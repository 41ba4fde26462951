package routes

import (
	"net/http"
	"time"

	"hireflow/handlers"
	"hireflow/middleware"
	"hireflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the recruiter login endpoint.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.LoginHandler)
	}
}

// RegisterJobRoutes registers job description ingestion and lookup endpoints.
func RegisterJobRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jobs")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Jobs.IngestJob)
		api.GET("", hb.Jobs.ListJobs)
		api.GET("/:jobID", hb.Jobs.GetJobByID)
		api.GET("/:jobID/candidates", hb.Candidates.ListCandidatesByJob)
	}
}

// RegisterCandidateRoutes registers candidate ingestion and lookup endpoints.
func RegisterCandidateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/candidates")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Candidates.IngestCandidate)
		api.GET("/:id", hb.Candidates.GetCandidateByID)
	}
}

// RegisterOutreachRoutes sets up the endpoints for the outreach engine.
func RegisterOutreachRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	outreachGroup := r.Group("/api/outreach")
	{
		outreachGroup.Use(middleware.JWTAuthMiddleware())
		outreachGroup.GET("/templates", hb.Outreach.ListTemplates)
		outreachGroup.GET("/slots", hb.Outreach.PreviewSlots)
		outreachGroup.POST("/session", hb.Outreach.StartSession)
		outreachGroup.GET("/session/:sessionID", hb.Outreach.GetSession)
		outreachGroup.PUT("/session/:sessionID/template", hb.Outreach.SelectTemplate)
		outreachGroup.PUT("/session/:sessionID/slot", hb.Outreach.SelectSlot)
		outreachGroup.PUT("/session/:sessionID/body", hb.Outreach.OverrideBody)
		outreachGroup.POST("/session/:sessionID/send", hb.Outreach.ConfirmSend)
		outreachGroup.DELETE("/session/:sessionID", hb.Outreach.CloseSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm Hireflow",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterJobRoutes(r, hb)
	RegisterCandidateRoutes(r, hb)
	RegisterOutreachRoutes(r, hb)
	RegisterHealthRoute(r)
}
