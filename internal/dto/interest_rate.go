package dto

import (
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInterestRatePolicyRequest defines the data needed to create a new interest rate policy.
// Range checks beyond "positive" live in domain.ValidateInterestRatePolicy.
type CreateInterestRatePolicyRequest struct {
	TermMonths        int             `json:"termMonths" binding:"required"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" binding:"dgt0"`
	MinBalance        decimal.Decimal `json:"minBalance" binding:"dgt0"`
}

// UpdateInterestRatePolicyRequest replaces all terms of a policy. Updates are re-validated like creates.
type UpdateInterestRatePolicyRequest struct {
	TermMonths        int             `json:"termMonths" binding:"required"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" binding:"dgt0"`
	MinBalance        decimal.Decimal `json:"minBalance" binding:"dgt0"`
}

// ListInterestRatePoliciesParams defines query parameters for listing policies.
type ListInterestRatePoliciesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// InterestRatePolicyResponse defines the data returned for a policy.
type InterestRatePolicyResponse struct {
	PolicyID          string          `json:"policyID"`
	TermMonths        int             `json:"termMonths"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	MinBalance        decimal.Decimal `json:"minBalance"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy     string          `json:"lastUpdatedBy"`
}

// ToInterestRatePolicyResponse converts a domain.InterestRatePolicy to InterestRatePolicyResponse DTO
func ToInterestRatePolicyResponse(p *domain.InterestRatePolicy) InterestRatePolicyResponse {
	return InterestRatePolicyResponse{
		PolicyID:          p.PolicyID,
		TermMonths:        p.TermMonths,
		AnnualRatePercent: p.AnnualRatePercent,
		MinBalance:        p.MinBalance,
		CreatedAt:         p.CreatedAt,
		CreatedBy:         p.CreatedBy,
		LastUpdatedAt:     p.LastUpdatedAt,
		LastUpdatedBy:     p.LastUpdatedBy,
	}
}

// ToListInterestRatePolicyResponse converts a slice of domain policies to response DTOs
func ToListInterestRatePolicyResponse(policies []domain.InterestRatePolicy) []InterestRatePolicyResponse {
	res := make([]InterestRatePolicyResponse, len(policies))
	for i := range policies {
		res[i] = ToInterestRatePolicyResponse(&policies[i])
	}
	return res
}
