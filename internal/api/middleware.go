package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/ratelimit"
)

// RequestLogger logs every request once it has been served
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP())
	}
}

// RateLimit rejects clients that exceed their per-IP budget
func RateLimit(store *ratelimit.Store) gin.HandlerFunc {
	errs := apperrors.NewHandler(logger.GetLogger())
	return func(c *gin.Context) {
		if !store.Allow(c.ClientIP()) {
			errs.Handle(c.Request.Context(), apperrors.NewRateLimitError(c.ClientIP(), c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Забагато запитів"})
			return
		}
		c.Next()
	}
}
