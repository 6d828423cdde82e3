package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	balanceService  portssvc.BalanceSvc
	ledgerService   portssvc.LedgerReaderSvc
	settingsService portssvc.SettingsSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, bs portssvc.BalanceSvc, ls portssvc.LedgerReaderSvc, ss portssvc.SettingsSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:  as,
		balanceService:  bs,
		ledgerService:   ls,
		settingsService: ss,
	}
}

// registerAccountRoutes registers routes related to accounts of a container.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, bs portssvc.BalanceSvc, ls portssvc.LedgerReaderSvc, ss portssvc.SettingsSvcFacade) {
	h := newAccountHandler(as, bs, ls, ss)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/balances", h.listAccountBalances)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.GET("/:account_id/balance", h.getAccountBalance)
		accounts.GET("/:account_id/transactions", h.listTransactionsByAccount)
	}
}

// formatter returns the display formatter. Balances still render when settings cannot be read.
func (h *accountHandler) formatter(ctx context.Context) *money.Formatter {
	f, err := h.settingsService.Formatter(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Using default display settings", slog.String("error", err.Error()))
	}
	return f
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account in the container. The classification cannot be changed later.
// @Tags accounts
// @Accept json
// @Produce json
// @Param container_id path int true "Container ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Container not found"
// @Failure 409 {object} map[string]string "Account name already used in the container"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("container_id", containerID))
	logger.Info("Received request to create account", slog.String("account_name", req.Name))

	account, err := h.accountService.CreateAccount(c.Request.Context(), containerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the accounts of a container in creation order
// @Tags accounts
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param container_id path int true "Container ID"
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "account_id")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), containerID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Renames an account or changes its opening balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param container_id path int true "Container ID"
// @Param account_id path int true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account name already used in the container"
// @Failure 423 {object} map[string]string "Container is fenced"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "account_id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), containerID, accountID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	logger.Info("Account updated", slog.Int64("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountBalance godoc
// @Summary Get the current balance of an account
// @Description Opening balance plus every stored amount, in minor units, with a formatted display string
// @Tags accounts
// @Produce json
// @Param container_id path int true "Container ID"
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts/{account_id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "account_id")
	if !ok {
		return
	}

	balance, err := h.balanceService.CurrentBalance(c.Request.Context(), containerID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate account balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID: accountID,
		Balance:   balance,
		Display:   h.formatter(c.Request.Context()).Format(balance),
	})
}

// listAccountBalances godoc
// @Summary List balances of every account
// @Tags accounts
// @Produce json
// @Param container_id path int true "Container ID"
// @Success 200 {object} dto.ListAccountBalancesResponse
// @Failure 404 {object} map[string]string "Container not found"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts/balances [get]
func (h *accountHandler) listAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}

	balances, err := h.balanceService.ListAccountBalances(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list account balances")
		return
	}

	f := h.formatter(c.Request.Context())
	resp := dto.ListAccountBalancesResponse{Balances: make([]dto.AccountBalanceResponse, len(balances))}
	for i, b := range balances {
		resp.Balances[i] = dto.AccountBalanceResponse{
			AccountID: b.AccountID,
			Name:      b.Name,
			Balance:   b.Balance,
			Display:   f.Format(b.Balance),
		}
	}
	c.JSON(http.StatusOK, resp)
}

// listTransactionsByAccount godoc
// @Summary List transactions of an account
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags accounts
// @Produce json
// @Param container_id path int true "Container ID"
// @Param account_id path int true "Account ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /containers/{container_id}/accounts/{account_id}/transactions [get]
func (h *accountHandler) listTransactionsByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	containerID, ok := int64Param(c, "container_id")
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "account_id")
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactionsByAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.ledgerService.ListTransactionsByAccount(c.Request.Context(), containerID, accountID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed", slog.Int64("account_id", accountID), slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}
