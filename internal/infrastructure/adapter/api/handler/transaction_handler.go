package handler

import (
	"net/http"

	domainerr "github.com/mkarimi-dev/finance-tracker/internal/domain/error"
	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/usecase"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// ListByUser handles GET /api/transactions/:userId
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	transactions, err := h.transactionService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsInvalidIdentifierError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid User ID"})
			return
		}
		h.logger.Error("Error fetching transactions", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromTransactions(transactions))
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create transaction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields are required"})
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), usecase.CreateTransactionInput{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	})
	if err != nil {
		if domainerr.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields are required"})
			return
		}
		h.logger.Error("Error creating transaction", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, dto.FromTransaction(transaction))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.transactionService.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case domainerr.IsInvalidIdentifierError(err):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Transaction ID"})
		case domainerr.IsNotFoundError(err):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Transaction not found"})
		default:
			h.logger.Error("Error deleting transaction", map[string]any{
				"id":    id,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// Summarize handles GET /api/transactions/summary/:userId
func (h *TransactionHandler) Summarize(c *gin.Context) {
	userID := c.Param("userId")

	summary, err := h.transactionService.Summarize(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsInvalidIdentifierError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid User ID"})
			return
		}
		h.logger.Error("Error fetching transaction summary", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromSummary(summary))
}
