package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/SscSPs/online_banking_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// interestRateHandler handles HTTP requests related to interest rate policies.
type interestRateHandler struct {
	interestRateService portssvc.InterestRateSvcFacade
}

func newInterestRateHandler(svc portssvc.InterestRateSvcFacade) *interestRateHandler {
	return &interestRateHandler{interestRateService: svc}
}

// RegisterInterestRateRoutes registers routes related to interest rate policies.
// It fails when the decimal binding validators cannot be registered.
func RegisterInterestRateRoutes(rg *gin.RouterGroup, svc portssvc.InterestRateSvcFacade) error {
	if err := ensureValidators(); err != nil {
		return err
	}
	h := newInterestRateHandler(svc)

	rates := rg.Group("/interest-rates")
	{
		rates.POST("", h.createInterestRatePolicy)
		rates.GET("", h.listInterestRatePolicies)
		rates.GET("/:policyID", h.getInterestRatePolicy)
		rates.PUT("/:policyID", h.updateInterestRatePolicy)
		rates.DELETE("/:policyID", h.deleteInterestRatePolicy)
	}
	return nil
}

// createInterestRatePolicy godoc
// @Summary Create an interest rate policy
// @Description Validates term (1-99 months), rate (0-99%] and minimum balance (100000-999999999], then stores the policy
// @Tags interest-rates
// @Accept  json
// @Produce  json
// @Param   policy body dto.CreateInterestRatePolicyRequest true "Policy terms"
// @Success 201 {object} dto.InterestRatePolicyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A policy with the same terms exists"
// @Failure 500 {object} map[string]string "Failed to create interest rate policy"
// @Security BearerAuth
// @Router /interest-rates [post]
func (h *interestRateHandler) createInterestRatePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInterestRatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInterestRatePolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.interestRateService.CreateInterestRatePolicy(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create interest rate policy")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInterestRatePolicyResponse(policy))
}

// listInterestRatePolicies godoc
// @Summary List interest rate policies
// @Tags interest-rates
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.InterestRatePolicyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list interest rate policies"
// @Security BearerAuth
// @Router /interest-rates [get]
func (h *interestRateHandler) listInterestRatePolicies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInterestRatePoliciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInterestRatePolicies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	policies, err := h.interestRateService.ListInterestRatePolicies(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list interest rate policies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInterestRatePolicyResponse(policies))
}

// getInterestRatePolicy godoc
// @Summary Get an interest rate policy
// @Tags interest-rates
// @Produce  json
// @Param   policyID path string true "Policy ID"
// @Success 200 {object} dto.InterestRatePolicyResponse
// @Failure 404 {object} map[string]string "Policy not found"
// @Security BearerAuth
// @Router /interest-rates/{policyID} [get]
func (h *interestRateHandler) getInterestRatePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	policyID := c.Param("policyID")

	policy, err := h.interestRateService.GetInterestRatePolicy(c.Request.Context(), policyID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("policy_id", policyID)), err, "Failed to retrieve interest rate policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToInterestRatePolicyResponse(policy))
}

// updateInterestRatePolicy godoc
// @Summary Update an interest rate policy
// @Description Replaces all terms. The new terms go through the same validation as creation.
// @Tags interest-rates
// @Accept  json
// @Produce  json
// @Param   policyID path string true "Policy ID"
// @Param   policy body dto.UpdateInterestRatePolicyRequest true "Policy terms"
// @Success 200 {object} dto.InterestRatePolicyResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Policy not found"
// @Failure 409 {object} map[string]string "A policy with the same terms exists"
// @Security BearerAuth
// @Router /interest-rates/{policyID} [put]
func (h *interestRateHandler) updateInterestRatePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	policyID := c.Param("policyID")

	var req dto.UpdateInterestRatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInterestRatePolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.interestRateService.UpdateInterestRatePolicy(c.Request.Context(), policyID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("policy_id", policyID)), err, "Failed to update interest rate policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToInterestRatePolicyResponse(policy))
}

// deleteInterestRatePolicy godoc
// @Summary Delete an interest rate policy
// @Tags interest-rates
// @Param   policyID path string true "Policy ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Policy not found"
// @Failure 409 {object} map[string]string "Policy referenced by savings accounts"
// @Security BearerAuth
// @Router /interest-rates/{policyID} [delete]
func (h *interestRateHandler) deleteInterestRatePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	policyID := c.Param("policyID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.interestRateService.DeleteInterestRatePolicy(c.Request.Context(), policyID, userID); err != nil {
		respondServiceError(c, logger.With(slog.String("policy_id", policyID)), err, "Failed to delete interest rate policy")
		return
	}

	c.Status(http.StatusNoContent)
}
