package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all the routes for the URL shortener service.
// It registers all the API endpoints with their respective handlers,
// and applies the CORS middleware to every route.
func RegisterRoutes(r *gin.Engine, handler URLHandlerInterface) {
	// Apply CORS middleware to all routes
	r.Use(CORSMiddleware())

	// Root and operational routes
	r.GET("/", handler.Welcome)
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/urls", handler.ShortenURL)
	}
}
