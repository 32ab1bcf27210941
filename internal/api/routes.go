package api

import (
	"alcyxob/workout-sessions/internal/domain"
	"alcyxob/workout-sessions/internal/metrics"
	"alcyxob/workout-sessions/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -destination=workout_service_mocks_test.go -package=api alcyxob/workout-sessions/internal/service WorkoutService

// RateLimitParams configures the write limiter. A nil Limiter disables it.
type RateLimitParams struct {
	Limiter         RequestRateLimiter
	WritesPerMinute int
}

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	workoutService service.WorkoutService,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
	rateLimit RateLimitParams,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	sessionHandler := NewSessionHandler(workoutService)
	dayHandler := NewDayHandler(workoutService)
	trainerHandler := NewTrainerHandler(workoutService)
	templateHandler := NewTemplateHandler(workoutService)

	router.Use(RequestID())
	router.Use(PanicRecovery(metricsManager))
	router.Use(RequestMetrics(metricsManager))
	router.Use(RequestLogging())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(jwtSecret))
	if rateLimit.Limiter != nil && rateLimit.WritesPerMinute > 0 {
		protected.Use(RateLimit(rateLimit.Limiter, "writes", rateLimit.WritesPerMinute, metricsManager))
	}
	{
		// --- Session Routes ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.POST("", sessionHandler.CreateSession)
			sessionGroup.GET("", sessionHandler.GetSessions)
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.PATCH("/:id", sessionHandler.UpdateSession)
			sessionGroup.DELETE("/:id", sessionHandler.DeleteSession)
		}
		protected.GET("/templates", sessionHandler.GetTemplates)

		// --- Day Routes ---
		dayGroup := protected.Group("/days")
		{
			dayGroup.POST("", dayHandler.CreateDay)
			dayGroup.GET("", dayHandler.GetDays)
			dayGroup.GET("/:date", dayHandler.GetDay)
			dayGroup.POST("/:date/sessions", dayHandler.AddSessionToDay)
			dayGroup.DELETE("/:date/sessions/:sessionId", dayHandler.RemoveSessionFromDay)
		}

		// --- Trainer Specific Routes ---
		trainerApiGroup := protected.Group("/trainer")
		trainerApiGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			// POST /api/v1/trainer/clients/{clientId}/sessions
			trainerApiGroup.POST("/clients/:clientId/sessions", trainerHandler.CreateClientSession)
		}

		// --- Admin Template Library ---
		adminGroup := protected.Group("/admin/templates")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.POST("", templateHandler.CreateTemplate)
			adminGroup.GET("", templateHandler.GetTemplates)
			adminGroup.PATCH("/:id", templateHandler.UpdateTemplate)
			adminGroup.DELETE("/:id", templateHandler.DeleteTemplate)
		}
	}

	return nil
}
