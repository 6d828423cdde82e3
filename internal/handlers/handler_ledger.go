package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles direct entries and transfers.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	transferService portssvc.TransferSvc
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, ts portssvc.TransferSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, transferService: ts}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, ts portssvc.TransferSvc) {
	h := newLedgerHandler(ls, ts)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.recordTransaction)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}
	rg.POST("/transfers", h.recordTransfer)
}

// recordTransaction godoc
// @Summary Record an income or expense entry
// @Description Amount is an unsigned magnitude in minor units. The stored sign follows the entry kind and the account classification.
// @Tags transactions
// @Accept json
// @Produce json
// @Param container_id path int true "Container ID"
// @Param transaction body dto.RecordTransactionRequest true "Entry"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Failure 423 {object} map[string]string "Container is fenced"
// @Security BearerAuth
// @Router /containers/{container_id}/transactions [post]
func (h *ledgerHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), containerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}
	logger.Info("Transaction recorded",
		slog.Int64("container_id", containerID),
		slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions of a container
// @Description Newest first, optionally restricted to a month (YYYY-MM)
// @Tags transactions
// @Produce json
// @Param container_id path int true "Container ID"
// @Param limit query int false "Maximum number of rows"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /containers/{container_id}/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	var err error
	var resp dto.ListTransactionsResponse
	if params.Month != "" {
		txns, e := h.ledgerService.ListTransactionsForMonth(ctx, containerID, params.Month, params.Limit)
		resp, err = dto.ToListTransactionsResponse(txns, ""), e
	} else {
		txns, e := h.ledgerService.ListTransactions(ctx, containerID, params.Limit)
		resp, err = dto.ToListTransactionsResponse(txns, ""), e
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param container_id path int true "Container ID"
// @Param transaction_id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /containers/{container_id}/transactions/{transaction_id} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	transactionID, ok := int64Param(c, "transaction_id")
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), containerID, transactionID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a direct entry
// @Description Replaces the fields of an income or expense entry. Transfer legs cannot be updated.
// @Tags transactions
// @Accept json
// @Produce json
// @Param container_id path int true "Container ID"
// @Param transaction_id path int true "Transaction ID"
// @Param transaction body dto.RecordTransactionRequest true "Entry"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 423 {object} map[string]string "Container is fenced"
// @Security BearerAuth
// @Router /containers/{container_id}/transactions/{transaction_id} [put]
func (h *ledgerHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	transactionID, ok := int64Param(c, "transaction_id")
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), containerID, transactionID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deleting either leg of a transfer deletes both legs
// @Tags transactions
// @Produce json
// @Param container_id path int true "Container ID"
// @Param transaction_id path int true "Transaction ID"
// @Success 200 {object} dto.DeleteTransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 423 {object} map[string]string "Transfer group is broken"
// @Security BearerAuth
// @Router /containers/{container_id}/transactions/{transaction_id} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	transactionID, ok := int64Param(c, "transaction_id")
	if !ok {
		return
	}

	deleted, err := h.ledgerService.DeleteTransaction(c.Request.Context(), containerID, transactionID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}
	logger.Info("Transaction deleted", slog.Int64("transaction_id", transactionID), slog.Int("removed", len(deleted)))
	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{DeletedTransactionIDs: deleted})
}

// recordTransfer godoc
// @Summary Transfer between two accounts
// @Description Writes both legs atomically under a fresh transfer group
// @Tags transfers
// @Accept json
// @Produce json
// @Param container_id path int true "Container ID"
// @Param transfer body dto.RecordTransferRequest true "Transfer"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 423 {object} map[string]string "Container is fenced"
// @Security BearerAuth
// @Router /containers/{container_id}/transfers [post]
func (h *ledgerHandler) recordTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var req dto.RecordTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transfer, err := h.transferService.RecordTransfer(c.Request.Context(), containerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record transfer")
		return
	}
	logger.Info("Transfer recorded", slog.Int64("transfer_group_id", transfer.TransferGroupID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}
