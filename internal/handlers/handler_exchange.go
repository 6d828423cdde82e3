package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportSize bounds uploaded CSV files.
const maxImportSize = 10 << 20

type exchangeHandler struct {
	exchangeService portssvc.DataExchangeSvc
}

func registerExchangeRoutes(rg *gin.RouterGroup, es portssvc.DataExchangeSvc) {
	h := &exchangeHandler{exchangeService: es}
	rg.GET("/export.csv", h.exportCSV)
	rg.POST("/import", h.importCSV)
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Tags exchange
// @Produce text/csv
// @Param container_id path int true "Container ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id}/export.csv [get]
func (h *exchangeHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	// Buffered so a failure can still be answered with a JSON error
	var buf bytes.Buffer
	if err := h.exchangeService.ExportTransactionsCSV(c.Request.Context(), containerID, &buf); err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=container-%d-transactions.csv", containerID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// importCSV godoc
// @Summary Import transactions from CSV
// @Description Each row is recorded against one account. Unknown categories fall back to "Other". Row errors are reported, not fatal.
// @Tags exchange
// @Accept multipart/form-data
// @Produce json
// @Param container_id path int true "Container ID"
// @Param file formData file true "CSV file"
// @Param accountID formData int true "Target account"
// @Param dateColumn formData int false "Zero-based date column" default(0)
// @Param descriptionColumn formData int false "Zero-based description column" default(1)
// @Param categoryColumn formData int false "Zero-based category column" default(2)
// @Param amountColumn formData int false "Zero-based amount column" default(3)
// @Param skipHeader formData bool false "First row is a header" default(true)
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} map[string]string "Invalid upload"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 423 {object} map[string]string "Container is fenced"
// @Security BearerAuth
// @Router /containers/{container_id}/import [post]
func (h *exchangeHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var form dto.ImportTransactionsForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind import form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import form: " + err.Error()})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required in field 'file'"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("CSV file exceeds %d bytes", maxImportSize)})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, logger, err, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.exchangeService.ImportTransactionsCSV(c.Request.Context(), containerID, form.AccountID, file, form.ColumnMapping())
	if err != nil {
		respondError(c, logger, err, "Failed to import transactions")
		return
	}
	logger.Info("Import finished",
		slog.Int64("container_id", containerID),
		slog.Int("success", result.SuccessCount),
		slog.Int("errors", result.ErrorCount))
	c.JSON(http.StatusOK, result)
}
