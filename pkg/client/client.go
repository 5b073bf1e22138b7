// Package client is a small typed SDK for the finance tracker API. It is
// the Go counterpart of the mobile data layer: a plain HTTP client plus a
// Hook that caches list and summary results between refreshes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Transaction is a single recorded income or expense entry
type Transaction struct {
	ID        uint64          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// Summary is the derived balance/income/expense aggregate for a user
type Summary struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// CreateTransactionRequest carries the fields for a create call
type CreateTransactionRequest struct {
	UserID   string          `json:"user_id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// APIError is a non-2xx response decoded from the server's error body
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client talks to the finance tracker HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL, e.g.
// "http://localhost:5001"
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTPClient creates a client using the caller's http.Client
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Transactions fetches the user's transactions, most recent first
func (c *Client) Transactions(ctx context.Context, userID string) ([]Transaction, error) {
	var transactions []Transaction
	err := c.do(ctx, http.MethodGet, "/api/transactions/"+userID, nil, &transactions)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Summary fetches the user's balance/income/expense aggregate
func (c *Client) Summary(ctx context.Context, userID string) (Summary, error) {
	var summary Summary
	err := c.do(ctx, http.MethodGet, "/api/transactions/summary/"+userID, nil, &summary)
	return summary, err
}

// CreateTransaction records a new transaction and returns it with its
// assigned id
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (Transaction, error) {
	var created Transaction
	err := c.do(ctx, http.MethodPost, "/api/transactions", req, &created)
	return created, err
}

// DeleteTransaction permanently removes a transaction by id
func (c *Client) DeleteTransaction(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", id), nil, nil)
}

// do performs a request and decodes either the success payload or the
// server's {error} body
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr != nil || errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
