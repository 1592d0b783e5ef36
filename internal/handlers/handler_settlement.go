package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/SscSPs/online_banking_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// settlementHandler exposes manual settlement runs and their history.
type settlementHandler struct {
	settlementService portssvc.SavingsSettlementSvc
	clock             CivilClock
}

// RegisterSettlementRoutes registers routes related to daily settlement runs.
// A nil runLimiter leaves manual runs unthrottled.
func RegisterSettlementRoutes(rg *gin.RouterGroup, svc portssvc.SavingsSettlementSvc, clock CivilClock, runLimiter *limiter.Limiter) {
	h := &settlementHandler{settlementService: svc, clock: clock}

	runHandlers := []gin.HandlerFunc{h.runDailySettlement}
	if runLimiter != nil {
		runHandlers = append([]gin.HandlerFunc{middleware.RateLimit(runLimiter)}, runHandlers...)
	}

	runs := rg.Group("/settlements/runs")
	{
		runs.POST("", runHandlers...)
		runs.GET("", h.listSettlementRuns)
	}
}

// runDailySettlement godoc
// @Summary Run the daily settlement now
// @Description Accrues or settles every ACTIVE savings account for the date. Safe to repeat for the same date.
// @Tags settlements
// @Produce  json
// @Param   date query string false "Civil date (YYYY-MM-DD) in the settlement time zone; defaults to today"
// @Success 200 {object} dto.SettlementRunResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to run daily settlement"
// @Security BearerAuth
// @Router /settlements/runs [post]
func (h *settlementHandler) runDailySettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	today, err := h.clock.today(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Manual daily settlement requested",
		slog.String("user_id", userID),
		slog.String("date", today.Format(dto.DateLayout)))

	// A dropped client must not cut the batch short.
	report, err := h.settlementService.RunDailySettlement(context.WithoutCancel(c.Request.Context()), today)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run daily settlement")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementRunResponse(report))
}

// listSettlementRuns godoc
// @Summary List settlement run reports
// @Tags settlements
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.SettlementRunResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /settlements/runs [get]
func (h *settlementHandler) listSettlementRuns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSettlementRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSettlementRuns", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	runs, err := h.settlementService.ListSettlementRuns(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list settlement runs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSettlementRunResponse(runs))
}
