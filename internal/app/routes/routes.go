package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unitutor/internal/app/controllers"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/middleware"
)

// HealthChecker is satisfied by *pgxpool.Pool
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	subjectController *controllers.SubjectController,
	instructionController *controllers.InstructionController,
	authMiddleware *middleware.AuthMiddleware,
	health HealthChecker,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/health", healthHandler(health))
	api.GET("/subjects", subjectController.GetAllSubjects)
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/subject", subjectController.CreateSubject)
		authenticated.GET("/subject/:url", subjectController.GetSubjectByURL)

		authenticated.POST("/instructions", instructionController.ScheduleSession)
		authenticated.GET("/instructions", instructionController.ListSessions)
	}
}

// healthHandler reports whether the database answers within two seconds
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func healthHandler(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := health.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Success: false, Status: "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
	}
}
