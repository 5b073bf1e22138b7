package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestClient_Transactions(t *testing.T) {
	t.Run("decodes the transaction list", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/transactions/42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":2,"user_id":"42","title":"Salary","amount":"1500","category":"income","created_at":"2024-06-02T00:00:00Z"},
				{"id":1,"user_id":"42","title":"Coffee","amount":"-4.5","category":"food","created_at":"2024-06-01T00:00:00Z"}
			]`))
		})

		c := NewClient(server.URL)
		transactions, err := c.Transactions(context.Background(), "42")

		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, uint64(2), transactions[0].ID)
		assert.Equal(t, "Salary", transactions[0].Title)
		assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("-4.5")))
	})

	t.Run("surfaces the server's error message", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Invalid User ID"}`))
		})

		c := NewClient(server.URL)
		_, err := c.Transactions(context.Background(), "abc")

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Invalid User ID", apiErr.Message)
	})
}

func TestClient_CreateTransaction(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "42", body["user_id"])
		assert.Equal(t, "Groceries", body["title"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"user_id":"42","title":"Groceries","amount":"-12.3","category":"food","created_at":"2024-06-01T00:00:00Z"}`))
	})

	c := NewClient(server.URL)
	created, err := c.CreateTransaction(context.Background(), CreateTransactionRequest{
		UserID:   "42",
		Title:    "Groceries",
		Amount:   decimal.RequireFromString("-12.3"),
		Category: "food",
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(7), created.ID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("-12.3")))
}

func TestClient_DeleteTransaction(t *testing.T) {
	t.Run("succeeds on 200", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/transactions/7", r.URL.Path)
			_, _ = w.Write([]byte(`{"message":"Transaction deleted successfully"}`))
		})

		c := NewClient(server.URL)
		assert.NoError(t, c.DeleteTransaction(context.Background(), 7))
	})

	t.Run("returns a typed error on 404", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Transaction not found"}`))
		})

		c := NewClient(server.URL)
		err := c.DeleteTransaction(context.Background(), 7777)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Transaction not found", apiErr.Message)
	})
}

func TestClient_Summary(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/summary/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"balance":"60","total_income":"100","total_expense":"-40"}`))
	})

	c := NewClient(server.URL)
	summary, err := c.Summary(context.Background(), "42")

	require.NoError(t, err)
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(-40)))
}

func TestHook(t *testing.T) {
	t.Run("Load caches transactions and summary", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/transactions/42":
				_, _ = w.Write([]byte(`[{"id":1,"user_id":"42","title":"Coffee","amount":"-4.5","category":"food","created_at":"2024-06-01T00:00:00Z"}]`))
			case "/api/transactions/summary/42":
				_, _ = w.Write([]byte(`{"balance":"-4.5","total_income":"0","total_expense":"-4.5"}`))
			default:
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
		})

		hook := NewHook(NewClient(server.URL), "42")
		require.NoError(t, hook.Load(context.Background()))

		assert.False(t, hook.Loading())
		require.Len(t, hook.Transactions(), 1)
		assert.Equal(t, "Coffee", hook.Transactions()[0].Title)
		assert.True(t, hook.Summary().Balance.Equal(decimal.RequireFromString("-4.5")))
	})

	t.Run("Delete refreshes the cached state", func(t *testing.T) {
		var deleted atomic.Bool
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodDelete:
				deleted.Store(true)
				_, _ = w.Write([]byte(`{"message":"Transaction deleted successfully"}`))
			case r.URL.Path == "/api/transactions/42":
				if deleted.Load() {
					_, _ = w.Write([]byte(`[]`))
				} else {
					_, _ = w.Write([]byte(`[{"id":1,"user_id":"42","title":"Coffee","amount":"-4.5","category":"food","created_at":"2024-06-01T00:00:00Z"}]`))
				}
			case r.URL.Path == "/api/transactions/summary/42":
				_, _ = w.Write([]byte(`{"balance":"0","total_income":"0","total_expense":"0"}`))
			default:
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
		})

		hook := NewHook(NewClient(server.URL), "42")
		require.NoError(t, hook.Load(context.Background()))
		require.Len(t, hook.Transactions(), 1)

		require.NoError(t, hook.Delete(context.Background(), 1))
		assert.Empty(t, hook.Transactions())
	})

	t.Run("failed load keeps the previous cache", func(t *testing.T) {
		var failing atomic.Bool
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if failing.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
				return
			}
			switch r.URL.Path {
			case "/api/transactions/42":
				_, _ = w.Write([]byte(`[{"id":1,"user_id":"42","title":"Coffee","amount":"-4.5","category":"food","created_at":"2024-06-01T00:00:00Z"}]`))
			case "/api/transactions/summary/42":
				_, _ = w.Write([]byte(`{"balance":"-4.5","total_income":"0","total_expense":"-4.5"}`))
			}
		})

		hook := NewHook(NewClient(server.URL), "42")
		require.NoError(t, hook.Load(context.Background()))

		failing.Store(true)
		require.Error(t, hook.Load(context.Background()))
		assert.Len(t, hook.Transactions(), 1)
	})
}
