package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, apiAccessKey string) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, apiAccessKey)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, apiAccessKey string) {
	listings := r.Group("/")
	if apiAccessKey != "" {
		listings.Use(authMiddleware(apiAccessKey))
		slog.Info("Listings endpoint enabled with authentication")
	}
	listings.GET("/listings", handler.GetListings)

	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "BizComb",
			"description": "Business-for-sale listings API with translation, currency conversion, and deduplication",
			"endpoints": map[string]string{
				"listings": "/listings?category=<category>&location=<location>&search=<term>&offset=<n>&limit=<n>",
				"health":   "/health",
			},
			"api_status": map[string]interface{}{
				"auth_required": apiAccessKey != "",
				"header":        "X-API-Key",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// authMiddleware creates authentication middleware for the listings endpoint
func authMiddleware(apiAccessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get API key from X-API-Key header
		providedKey := c.GetHeader("X-API-Key")

		// Also check Authorization header with Bearer prefix
		if providedKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				providedKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if providedKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "API key required",
				"message": "Provide API key in X-API-Key header or Authorization: Bearer <key>",
			})
			c.Abort()
			return
		}

		if providedKey != apiAccessKey {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid API key",
				"message": "The provided API key is not valid",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
