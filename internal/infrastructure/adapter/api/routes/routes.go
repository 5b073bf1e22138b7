package routes

import (
	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/ratelimit"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Check)

	transactionRoutes := router.Group("/api/transactions")
	{
		// GET /api/transactions/summary/:userId
		transactionRoutes.GET("/summary/:userId", transactionHandler.Summarize)

		// GET /api/transactions/:userId
		transactionRoutes.GET("/:userId", transactionHandler.ListByUser)

		// POST /api/transactions
		transactionRoutes.POST("", transactionHandler.Create)

		// DELETE /api/transactions/:id
		transactionRoutes.DELETE("/:id", transactionHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, limiter ratelimit.Limiter, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(limiter, logger))
}
