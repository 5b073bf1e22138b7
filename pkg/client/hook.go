package client

import (
	"context"
	"sync"
)

// Hook caches a single user's transactions and summary between refreshes,
// the way the mobile data hook does. Load fetches both concurrently;
// mutations refresh the cache before returning.
type Hook struct {
	client *Client
	userID string

	mu           sync.RWMutex
	loading      bool
	transactions []Transaction
	summary      Summary
}

// NewHook creates a hook bound to one user
func NewHook(client *Client, userID string) *Hook {
	return &Hook{
		client: client,
		userID: userID,
	}
}

// Load fetches the transaction list and summary concurrently and replaces
// the cached state. Either fetch failing fails the whole load; the cache
// keeps its previous contents in that case.
func (h *Hook) Load(ctx context.Context) error {
	h.setLoading(true)
	defer h.setLoading(false)

	var (
		wg           sync.WaitGroup
		transactions []Transaction
		summary      Summary
		listErr      error
		summaryErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		transactions, listErr = h.client.Transactions(ctx, h.userID)
	}()
	go func() {
		defer wg.Done()
		summary, summaryErr = h.client.Summary(ctx, h.userID)
	}()
	wg.Wait()

	if listErr != nil {
		return listErr
	}
	if summaryErr != nil {
		return summaryErr
	}

	h.mu.Lock()
	h.transactions = transactions
	h.summary = summary
	h.mu.Unlock()
	return nil
}

// Create records a new transaction and refreshes the cached state
func (h *Hook) Create(ctx context.Context, req CreateTransactionRequest) (Transaction, error) {
	created, err := h.client.CreateTransaction(ctx, req)
	if err != nil {
		return Transaction{}, err
	}
	return created, h.Load(ctx)
}

// Delete removes a transaction and refreshes the cached state
func (h *Hook) Delete(ctx context.Context, id uint64) error {
	if err := h.client.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	return h.Load(ctx)
}

// Transactions returns the cached transaction list
func (h *Hook) Transactions() []Transaction {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Transaction, len(h.transactions))
	copy(out, h.transactions)
	return out
}

// Summary returns the cached summary
func (h *Hook) Summary() Summary {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.summary
}

// Loading reports whether a Load is in flight
func (h *Hook) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

func (h *Hook) setLoading(v bool) {
	h.mu.Lock()
	h.loading = v
	h.mu.Unlock()
}
