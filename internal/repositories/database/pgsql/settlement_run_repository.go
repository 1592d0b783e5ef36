package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	"github.com/SscSPs/online_banking_backend/internal/models"
	"github.com/SscSPs/online_banking_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettlementRunRepository struct {
	BaseRepository
}

func newPgxSettlementRunRepository(pool *pgxpool.Pool) portsrepo.SettlementRunRepository {
	return &PgxSettlementRunRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettlementRunRepository = (*PgxSettlementRunRepository)(nil)

// SaveSettlementRun stores a run report. Failures are kept as JSONB.
func (r *PgxSettlementRunRepository) SaveSettlementRun(ctx context.Context, report domain.SettlementReport) error {
	m := mapping.ToModelSettlementRun(report)
	query := `
		INSERT INTO settlement_runs (
			run_id, run_date, processed, settled, accrued, skipped, failed, failures, started_at, finished_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RunID,
		m.RunDate,
		m.Processed,
		m.Settled,
		m.Accrued,
		m.Skipped,
		m.Failed,
		m.Failures,
		m.StartedAt,
		m.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settlement run %s: %w", m.RunID, err)
	}
	return nil
}

// ListSettlementRuns retrieves run reports, most recent first.
func (r *PgxSettlementRunRepository) ListSettlementRuns(ctx context.Context, limit int, offset int) ([]domain.SettlementReport, error) {
	query := `
		SELECT run_id, run_date, processed, settled, accrued, skipped, failed, failures, started_at, finished_at
		FROM settlement_runs
		ORDER BY started_at DESC, run_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement runs: %w", err)
	}
	defer rows.Close()

	var reports []domain.SettlementReport
	for rows.Next() {
		var m models.SettlementRun
		if err := rows.Scan(
			&m.RunID,
			&m.RunDate,
			&m.Processed,
			&m.Settled,
			&m.Accrued,
			&m.Skipped,
			&m.Failed,
			&m.Failures,
			&m.StartedAt,
			&m.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement run row: %w", err)
		}
		reports = append(reports, mapping.ToDomainSettlementReport(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settlement run rows: %w", err)
	}
	return reports, nil
}
