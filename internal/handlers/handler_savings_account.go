package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/SscSPs/online_banking_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// savingsAccountHandler handles HTTP requests related to savings accounts.
type savingsAccountHandler struct {
	savingsService portssvc.SavingsSvcFacade
	clock          CivilClock
}

// RegisterSavingsAccountRoutes registers routes related to savings accounts.
func RegisterSavingsAccountRoutes(rg *gin.RouterGroup, svc portssvc.SavingsSvcFacade, clock CivilClock) {
	h := &savingsAccountHandler{savingsService: svc, clock: clock}

	accounts := rg.Group("/savings-accounts")
	{
		accounts.GET("", h.listSavingsAccounts)
		accounts.GET("/:accountID", h.getSavingsAccount)
		accounts.GET("/:accountID/term-end", h.getTermEnd)
		accounts.POST("/:accountID/accruals", h.applyDailyAccrual)
	}
}

// listSavingsAccounts godoc
// @Summary List savings accounts
// @Tags savings-accounts
// @Produce  json
// @Param   status query string false "ACTIVE or CLOSED"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSavingsAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /savings-accounts [get]
func (h *savingsAccountHandler) listSavingsAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSavingsAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSavingsAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.savingsService.ListSavingsAccounts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list savings accounts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getSavingsAccount godoc
// @Summary Get a savings account
// @Tags savings-accounts
// @Produce  json
// @Param   accountID path string true "Savings account ID"
// @Success 200 {object} dto.SavingsAccountResponse
// @Failure 404 {object} map[string]string "Savings account not found"
// @Security BearerAuth
// @Router /savings-accounts/{accountID} [get]
func (h *savingsAccountHandler) getSavingsAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.savingsService.GetSavingsAccount(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("savings_account_id", accountID)), err, "Failed to retrieve savings account")
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsAccountResponse(account))
}

// getTermEnd godoc
// @Summary Check whether a savings account has matured
// @Tags savings-accounts
// @Produce  json
// @Param   accountID path string true "Savings account ID"
// @Param   date query string false "Civil date (YYYY-MM-DD) in the settlement time zone; defaults to today"
// @Success 200 {object} dto.TermEndResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Savings account or policy not found"
// @Security BearerAuth
// @Router /savings-accounts/{accountID}/term-end [get]
func (h *savingsAccountHandler) getTermEnd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	today, err := h.clock.today(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	atEnd, err := h.savingsService.IsAccountAtTermEnd(c.Request.Context(), accountID, today)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("savings_account_id", accountID)), err, "Failed to evaluate term end")
		return
	}

	c.JSON(http.StatusOK, dto.TermEndResponse{
		SavingsAccountID: accountID,
		Date:             today.Format(dto.DateLayout),
		IsEndOfTerm:      atEnd,
	})
}

// applyDailyAccrual godoc
// @Summary Apply one day of interest to a savings account
// @Description Re-applying for a date that was already accrued returns the account unchanged.
// @Tags savings-accounts
// @Produce  json
// @Param   accountID path string true "Savings account ID"
// @Param   date query string false "Civil date (YYYY-MM-DD) in the settlement time zone; defaults to today"
// @Success 200 {object} dto.SavingsAccountResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Savings account not found"
// @Failure 409 {object} map[string]string "Account closed or at end of term"
// @Security BearerAuth
// @Router /savings-accounts/{accountID}/accruals [post]
func (h *savingsAccountHandler) applyDailyAccrual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	today, err := h.clock.today(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.savingsService.ApplyDailyAccrual(c.Request.Context(), accountID, today)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("savings_account_id", accountID)), err, "Failed to apply daily accrual")
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsAccountResponse(account))
}
