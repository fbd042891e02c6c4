package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/api/handlers"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/api/middleware"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/jobs"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
)

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	Config       *config.Config
	Engine       *coach.Engine
	Store        *store.Store
	JobsClient   *jobs.AdzunaClient
	JobProcessor *jobs.Processor
	PoolSize     int
	Provider     string
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Upload.MaxFileSize))
	// Generation-backed endpoints can run a full credential pass; give them
	// the LLM timeout rather than the plain read timeout.
	e.Use(middleware.TimeoutConfig(cfg.LLM.Timeout + 10*time.Second))

	e.Validator = handlers.NewRequestValidator()

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.Store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(deps.PoolSize, deps.Provider))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/upload", handlers.UploadResumeHandler(deps.Engine, deps.Store, cfg.Upload.MaxFileSize))
			resume.POST("/optimize", handlers.OptimizeResumeHandler(deps.Engine, deps.Store))
			resume.POST("/linkedin-optimize", handlers.LinkedInOptimizeHandler(deps.Engine, deps.Store))
			resume.GET("/download/:user_id", handlers.DownloadResumeHandler(deps.Store))
			resume.GET("/:user_id", handlers.GetResumeHandler(deps.Store))
		}

		user := v1.Group("/user")
		{
			user.GET("/:user_id/profile", handlers.GetProfileHandler(deps.Store))
			user.PUT("/:user_id/resume-details", handlers.UpdateResumeDetailsHandler(deps.Store))
			user.DELETE("/:user_id/profile", handlers.DeleteProfileHandler(deps.Store))
			user.GET("/:user_id/stats", handlers.GetStatsHandler(deps.Store))
		}

		roadmap := v1.Group("/roadmap")
		{
			roadmap.POST("/generate", handlers.GenerateRoadmapHandler(deps.Engine, deps.Store))
			roadmap.GET("/latest/:user_id", handlers.LatestRoadmapHandler(deps.Store))
			roadmap.POST("/task-status", handlers.TaskStatusHandler(deps.Store))
			roadmap.POST("/tutor", handlers.TutorHandler(deps.Engine))
			roadmap.POST("/chat", handlers.ChatHandler(deps.Engine, deps.Store))
		}

		interview := v1.Group("/interview")
		{
			interview.POST("/chat", handlers.InterviewChatHandler(deps.Engine))
			interview.POST("/summarize", handlers.InterviewSummaryHandler(deps.Engine))
		}

		assessment := v1.Group("/assessment")
		{
			assessment.POST("/generate", handlers.GenerateAssessmentHandler(deps.Engine))
			assessment.POST("/evaluate", handlers.EvaluateAssessmentHandler(deps.Engine, deps.Store))
		}

		v1.POST("/jobs/find", handlers.FindJobsHandler(deps.JobsClient, deps.JobProcessor, deps.Store, cfg.Upload.MaxFileSize))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "ai-career-coach-backend",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
