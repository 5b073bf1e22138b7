package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/ratelimit"
	timeProvider "github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/time"
	usecasemocks "github.com/mkarimi-dev/finance-tracker/mocks/port/usecase"
)

func setupTestRouter(service *usecasemocks.MockTransactionUseCase, quota int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	noop := logger.NewNoopLogger()
	limiter := ratelimit.NewMemoryLimiter(quota, 30*time.Second, timeProvider.NewRealTimeProvider())

	router := gin.New()
	SetupMiddlewares(router, limiter, noop)
	SetupRoutes(router, handler.NewTransactionHandler(service, noop), handler.NewHealthHandler())
	return router
}

func TestSetupRoutes(t *testing.T) {
	t.Run("registers the health endpoint", func(t *testing.T) {
		router := setupTestRouter(new(usecasemocks.MockTransactionUseCase), 100)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
	})

	t.Run("summary and list routes coexist under the same group", func(t *testing.T) {
		mockService := new(usecasemocks.MockTransactionUseCase)
		mockService.On("ListByUser", mock.Anything, "42").Return([]entity.Transaction{}, nil)
		mockService.On("Summarize", mock.Anything, "42").Return(entity.ZeroSummary(), nil)

		router := setupTestRouter(mockService, 100)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/42", nil))
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/summary/42", nil))
		require.Equal(t, http.StatusOK, w.Code)

		mockService.AssertCalled(t, "ListByUser", mock.Anything, "42")
		mockService.AssertCalled(t, "Summarize", mock.Anything, "42")
	})

	t.Run("quota applies to every route before the handler runs", func(t *testing.T) {
		mockService := new(usecasemocks.MockTransactionUseCase)
		mockService.On("ListByUser", mock.Anything, "42").Return([]entity.Transaction{}, nil)

		router := setupTestRouter(mockService, 2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/42", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transactions/42", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
		mockService.AssertNumberOfCalls(t, "ListByUser", 2)
	})

	t.Run("preflight requests are answered by the cors middleware", func(t *testing.T) {
		router := setupTestRouter(new(usecasemocks.MockTransactionUseCase), 100)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/transactions", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
