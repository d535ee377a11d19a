package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/local-directory-api/internal/config"
	"github.com/local-directory-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(metricsMiddleware())
	router.Use(RedirectResolver(cfg.Site.NichePrefix))

	// Handlers
	directoryHandler := NewDirectoryHandler(services, log)
	adminHandler := NewAdminHandler(services, log)
	authHandler := NewAuthHandler(&cfg.Auth, log)

	// Health and metrics
	router.GET("/health", healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public site routes
	router.GET("/city/:slug", directoryHandler.GetCityPage)

	// Public API
	api := router.Group("/api")
	{
		api.GET("/redirect-about-articles", adminHandler.RedirectAboutArticle)
		api.GET("/states", directoryHandler.ListStates)
		api.GET("/states/:id/cities", directoryHandler.ListCities)
		api.GET("/cities/:slug", directoryHandler.GetCityPage)
		api.GET("/articles", directoryHandler.ListArticles)
		api.GET("/articles/:slug", directoryHandler.GetArticle)

		api.POST("/admin/login", authHandler.Login)
	}

	// Mutating routes require the admin session token
	protected := router.Group("/api", AdminAuth(&cfg.Auth))
	{
		protected.POST("/states", directoryHandler.CreateState)
		protected.POST("/states/bulk", adminHandler.BulkCreateStates)
		protected.POST("/cities", directoryHandler.CreateCity)
		protected.POST("/listings", directoryHandler.CreateListing)
		protected.PUT("/listings/:id", directoryHandler.UpdateListing)
		protected.DELETE("/listings/:id", directoryHandler.DeleteListing)
		protected.POST("/articles", directoryHandler.CreateArticle)
		protected.PUT("/articles/:id", directoryHandler.UpdateArticle)
		protected.DELETE("/articles/:id", directoryHandler.DeleteArticle)

		protected.GET("/admin/get-about-urls", adminHandler.GetAboutURLs)
		protected.POST("/admin/bulk-remove-urls", adminHandler.BulkRemoveURLs)
		protected.GET("/admin/slug-report", adminHandler.SlugReport)
		protected.GET("/admin/integrity", adminHandler.IntegrityReport)
		protected.GET("/admin/stats", adminHandler.Stats)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "local-directory-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
