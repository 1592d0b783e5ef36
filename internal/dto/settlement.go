package dto

import (
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
)

// ListSettlementRunsParams defines query parameters for listing settlement runs.
type ListSettlementRunsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// SettlementFailureResponse describes one account a run could not process.
type SettlementFailureResponse struct {
	SavingsAccountID string `json:"savingsAccountID"`
	Reason           string `json:"reason"`
}

// SettlementRunResponse is the API view of a domain.SettlementReport.
type SettlementRunResponse struct {
	RunID      string                      `json:"runID"`
	RunDate    string                      `json:"runDate"`
	Processed  int                         `json:"processed"`
	Settled    int                         `json:"settled"`
	Accrued    int                         `json:"accrued"`
	Skipped    int                         `json:"skipped"`
	Failed     int                         `json:"failed"`
	Failures   []SettlementFailureResponse `json:"failures"`
	StartedAt  time.Time                   `json:"startedAt"`
	FinishedAt time.Time                   `json:"finishedAt"`
}

// ToSettlementRunResponse converts a domain.SettlementReport to SettlementRunResponse DTO
func ToSettlementRunResponse(r *domain.SettlementReport) SettlementRunResponse {
	failures := make([]SettlementFailureResponse, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = SettlementFailureResponse{SavingsAccountID: f.SavingsAccountID, Reason: f.Reason}
	}
	return SettlementRunResponse{
		RunID:      r.RunID,
		RunDate:    r.RunDate.Format(DateLayout),
		Processed:  r.Processed,
		Settled:    r.Settled,
		Accrued:    r.Accrued,
		Skipped:    r.Skipped,
		Failed:     r.Failed,
		Failures:   failures,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// ToListSettlementRunResponse converts a slice of reports to response DTOs
func ToListSettlementRunResponse(reports []domain.SettlementReport) []SettlementRunResponse {
	res := make([]SettlementRunResponse, len(reports))
	for i := range reports {
		res[i] = ToSettlementRunResponse(&reports[i])
	}
	return res
}
