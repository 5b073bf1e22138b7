package middleware

import (
	"net/http"

	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/ratelimit"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RateLimit middleware enforces the per-client request quota before any
// handler runs. A limiter failure rejects the request rather than letting
// traffic through unmetered.
func RateLimit(limiter ratelimit.Limiter, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Check(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Error("Rate limiter check failed", map[string]any{
				"ip":    c.ClientIP(),
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Internal Server Error",
			})
			return
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", map[string]any{
				"ip":   c.ClientIP(),
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
