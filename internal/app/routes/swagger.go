package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yigit/unitutor/internal/pkg/metrics"

	_ "github.com/yigit/unitutor/docs" // This is required for swagger docs
)

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}

// SetupMetrics exposes the Prometheus registry at /metrics
func SetupMetrics(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
}
