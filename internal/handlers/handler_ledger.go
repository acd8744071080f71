package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

// ledgerHandler handles HTTP requests related to the transaction ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// registerLedgerRoutes registers the /transactions routes.
func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	txns := group.Group("/transactions")
	txns.POST("", h.createTransaction)
	txns.GET("", h.listTransactions)
	txns.GET("/:transactionID", h.getTransaction)
	txns.PUT("/:transactionID", h.updateTransaction)
	txns.DELETE("/:transactionID", h.deleteTransaction)
	txns.POST("/transfers", h.createTransfer)
}

// createTransaction godoc
// @Summary Create a manual ledger entry
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /transactions [post]
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listTransactions godoc
// @Summary List ledger entries
// @Description With roots=true, derived children (allocation and funding entries) are excluded
// @Tags transactions
// @Produce json
// @Param roots query bool false "Only root entries"
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rootsOnly := c.Query("roots") == "true"
	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), rootsOnly)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: txns})
}

// getTransaction godoc
// @Summary Get a ledger entry with its derived children
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction and children"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txn, children, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": txn, "children": children})
}

// updateTransaction godoc
// @Summary Replace a ledger entry's editable fields
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Replacement fields"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [put]
func (h *ledgerHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), c.Param("transactionID"), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// deleteTransaction godoc
// @Summary Delete a ledger entry and everything linked to it
// @Description Cascades to derived children and the transfer peer; applied as one atomic transform
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.DeleteTransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	removedIDs, err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{RemovedIDs: removedIDs})
}

// createTransfer godoc
// @Summary Move money between envelopes
// @Description Creates a linked pair of ledger entries (OUT and IN legs)
// @Tags transactions
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer"
// @Success 201 {object} map[string]interface{} "Both transfer legs"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /transactions/transfers [post]
func (h *ledgerHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	out, in, err := h.ledgerService.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"out": out, "in": in})
}
