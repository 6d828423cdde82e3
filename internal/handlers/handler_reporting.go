package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/SscSPs/ledgerbook/internal/utils/period"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports and summaries
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs, now: time.Now}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}

	summary := rg.Group("/summary")
	{
		summary.GET("/monthly", h.getMonthlyNet)
		summary.GET("/all-time", h.getAllTimeNet)
		summary.GET("/months", h.getAvailableMonths)
		summary.GET("/category-totals", h.getCategoryTotals)
	}
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Income and expense totals per category for a month, or for an inclusive from/to date range. Defaults to the current month.
// @Tags reports
// @Produce json
// @Param container_id path int true "Container ID"
// @Param month query string false "Month (YYYY-MM)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.ProfitAndLossReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var params dto.ProfitAndLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	logger = logger.With(slog.Int64("container_id", containerID))
	if params.From != "" || params.To != "" {
		from, to, err := period.DayRange(params.From, params.To)
		if err != nil {
			logger.Warn("Invalid report period", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		report, err := h.reportingService.ProfitAndLoss(ctx, containerID, from, to)
		if err != nil {
			respondError(c, logger, err, "Failed to generate profit and loss report")
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	month := params.Month
	if month == "" {
		month = period.MonthOf(h.now())
	}
	report, err := h.reportingService.ProfitAndLossForMonth(ctx, containerID, month)
	if err != nil {
		respondError(c, logger, err, "Failed to generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Account balances as of the end of a month or of a date. Defaults to now.
// @Tags reports
// @Produce json
// @Param container_id path int true "Container ID"
// @Param month query string false "Month (YYYY-MM)"
// @Param asOf query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var params dto.BalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	logger = logger.With(slog.Int64("container_id", containerID))
	if params.Month != "" {
		report, err := h.reportingService.BalanceSheetForMonth(ctx, containerID, params.Month)
		if err != nil {
			respondError(c, logger, err, "Failed to generate balance sheet report")
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	asOf := h.now().UTC().Truncate(time.Second)
	if params.AsOf != "" {
		var err error
		asOf, err = period.EndOfDay(params.AsOf)
		if err != nil {
			logger.Warn("Invalid asOf date", slog.String("asOf", params.AsOf))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	report, err := h.reportingService.BalanceSheet(ctx, containerID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getMonthlyNet godoc
// @Summary Net of income and expense for a month
// @Description Transfers are excluded. Defaults to the current month.
// @Tags summary
// @Produce json
// @Param container_id path int true "Container ID"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} dto.NetAmountResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /containers/{container_id}/summary/monthly [get]
func (h *reportingHandler) getMonthlyNet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	month := c.Query("month")
	if month == "" {
		month = period.MonthOf(h.now())
	}

	net, err := h.reportingService.MonthlyNet(c.Request.Context(), containerID, month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute monthly net")
		return
	}
	c.JSON(http.StatusOK, dto.NetAmountResponse{ContainerID: containerID, Month: month, Net: net})
}

// getAllTimeNet godoc
// @Summary Net of every income and expense entry
// @Tags summary
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.NetAmountResponse
// @Security BearerAuth
// @Router /containers/{container_id}/summary/all-time [get]
func (h *reportingHandler) getAllTimeNet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	net, err := h.reportingService.AllTimeNet(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute all-time net")
		return
	}
	c.JSON(http.StatusOK, dto.NetAmountResponse{ContainerID: containerID, Net: net})
}

// getAvailableMonths godoc
// @Summary Months that have transactions
// @Description Newest first
// @Tags summary
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.AvailableMonthsResponse
// @Security BearerAuth
// @Router /containers/{container_id}/summary/months [get]
func (h *reportingHandler) getAvailableMonths(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	months, err := h.reportingService.AvailableMonths(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list available months")
		return
	}
	c.JSON(http.StatusOK, dto.AvailableMonthsResponse{Months: months})
}

// getCategoryTotals godoc
// @Summary Expense totals per category
// @Description For a month, or all time when month is omitted
// @Tags summary
// @Produce json
// @Param container_id path int true "Container ID"
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {object} dto.CategoryTotalsResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /containers/{container_id}/summary/category-totals [get]
func (h *reportingHandler) getCategoryTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	totals, err := h.reportingService.CategoryTotals(c.Request.Context(), containerID, params.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute category totals")
		return
	}
	c.JSON(http.StatusOK, dto.CategoryTotalsResponse{Month: params.Month, Totals: totals})
}
