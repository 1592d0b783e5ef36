package repositories

import (
	"context"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
)

// SettlementRunRepository persists daily settlement reports
type SettlementRunRepository interface {
	SaveSettlementRun(ctx context.Context, report domain.SettlementReport) error
	ListSettlementRuns(ctx context.Context, limit int, offset int) ([]domain.SettlementReport, error)
}
