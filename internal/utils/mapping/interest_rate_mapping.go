package mapping

import (
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/SscSPs/online_banking_backend/internal/models"
)

// ToModelInterestRatePolicy converts a domain InterestRatePolicy to a model InterestRatePolicy
func ToModelInterestRatePolicy(d domain.InterestRatePolicy) models.InterestRatePolicy {
	return models.InterestRatePolicy{
		PolicyID:          d.PolicyID,
		TermMonths:        d.TermMonths,
		AnnualRatePercent: d.AnnualRatePercent,
		MinBalance:        d.MinBalance,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInterestRatePolicy converts a model InterestRatePolicy to a domain InterestRatePolicy
func ToDomainInterestRatePolicy(m models.InterestRatePolicy) domain.InterestRatePolicy {
	return domain.InterestRatePolicy{
		PolicyID:          m.PolicyID,
		TermMonths:        m.TermMonths,
		AnnualRatePercent: m.AnnualRatePercent,
		MinBalance:        m.MinBalance,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInterestRatePolicySlice converts a slice of model policies to domain policies
func ToDomainInterestRatePolicySlice(ms []models.InterestRatePolicy) []domain.InterestRatePolicy {
	ds := make([]domain.InterestRatePolicy, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInterestRatePolicy(m)
	}
	return ds
}
