// internal/api/router.go
package api

import (
	"net/http"

	"dashboard-service/internal/api/handlers"
	"dashboard-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the dashboard routes, the health check and the metrics endpoint.
func NewRouter(dashboardHandler *handlers.DashboardHandler, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	apiV1 := router.Group("/api/v1/dashboard")
	{
		// Sem Middleware -- Gateway lida com isso
		apiV1.POST("/analyze", dashboardHandler.HandleAnalyze)
		apiV1.POST("/sessions", dashboardHandler.HandleCreateSession)
		apiV1.GET("/sessions/:id", dashboardHandler.HandleGetDashboard)
		apiV1.PUT("/sessions/:id/filters", dashboardHandler.HandleSetFilters)
		apiV1.POST("/sessions/:id/toggle", dashboardHandler.HandleToggle)
		apiV1.GET("/sessions/:id/export", dashboardHandler.HandleExport)
		apiV1.DELETE("/sessions/:id", dashboardHandler.HandleDeleteSession)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "dashboard-service"})
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return router
}
