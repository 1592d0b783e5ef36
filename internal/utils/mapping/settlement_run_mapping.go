package mapping

import (
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/SscSPs/online_banking_backend/internal/models"
)

// ToModelSettlementRun converts a domain SettlementReport to a model SettlementRun
func ToModelSettlementRun(d domain.SettlementReport) models.SettlementRun {
	failures := make([]models.SettlementRunFailure, len(d.Failures))
	for i, f := range d.Failures {
		failures[i] = models.SettlementRunFailure{SavingsAccountID: f.SavingsAccountID, Reason: f.Reason}
	}
	return models.SettlementRun{
		RunID:      d.RunID,
		RunDate:    d.RunDate,
		Processed:  d.Processed,
		Settled:    d.Settled,
		Accrued:    d.Accrued,
		Skipped:    d.Skipped,
		Failed:     d.Failed,
		Failures:   failures,
		StartedAt:  d.StartedAt,
		FinishedAt: d.FinishedAt,
	}
}

// ToDomainSettlementReport converts a model SettlementRun to a domain SettlementReport
func ToDomainSettlementReport(m models.SettlementRun) domain.SettlementReport {
	failures := make([]domain.SettlementFailure, len(m.Failures))
	for i, f := range m.Failures {
		failures[i] = domain.SettlementFailure{SavingsAccountID: f.SavingsAccountID, Reason: f.Reason}
	}
	return domain.SettlementReport{
		RunID:      m.RunID,
		RunDate:    m.RunDate,
		Processed:  m.Processed,
		Settled:    m.Settled,
		Accrued:    m.Accrued,
		Skipped:    m.Skipped,
		Failed:     m.Failed,
		Failures:   failures,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
	}
}
