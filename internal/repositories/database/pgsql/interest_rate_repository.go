package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	"github.com/SscSPs/online_banking_backend/internal/models"
	"github.com/SscSPs/online_banking_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const interestRateColumns = `policy_id, term_months, annual_rate_percent, min_balance,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInterestRateRepository struct {
	BaseRepository
}

func newPgxInterestRateRepository(pool *pgxpool.Pool) portsrepo.InterestRateRepositoryFacade {
	return &PgxInterestRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InterestRateRepositoryFacade = (*PgxInterestRateRepository)(nil)

func scanInterestRatePolicy(row pgx.Row) (models.InterestRatePolicy, error) {
	var m models.InterestRatePolicy
	err := row.Scan(
		&m.PolicyID,
		&m.TermMonths,
		&m.AnnualRatePercent,
		&m.MinBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInterestRatePolicy inserts a new policy.
func (r *PgxInterestRateRepository) SaveInterestRatePolicy(ctx context.Context, policy domain.InterestRatePolicy) error {
	m := mapping.ToModelInterestRatePolicy(policy)
	query := `
		INSERT INTO interest_rate_policies (` + interestRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PolicyID,
		m.TermMonths,
		m.AnnualRatePercent,
		m.MinBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrPolicyDuplicate
		}
		return fmt.Errorf("failed to save interest rate policy %s: %w", m.PolicyID, err)
	}
	return nil
}

// FindInterestRatePolicyByID retrieves a policy by its ID.
func (r *PgxInterestRateRepository) FindInterestRatePolicyByID(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error) {
	query := `SELECT ` + interestRateColumns + ` FROM interest_rate_policies WHERE policy_id = $1;`
	m, err := scanInterestRatePolicy(r.Pool.QueryRow(ctx, query, policyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interest rate policy %s: %w", policyID, err)
	}
	p := mapping.ToDomainInterestRatePolicy(m)
	return &p, nil
}

// FindInterestRatePolicyByTerms retrieves the policy with exactly these terms.
// NUMERIC equality ignores scale, so 6 and 6.00 match.
func (r *PgxInterestRateRepository) FindInterestRatePolicyByTerms(ctx context.Context, termMonths int, annualRatePercent, minBalance decimal.Decimal) (*domain.InterestRatePolicy, error) {
	query := `
		SELECT ` + interestRateColumns + `
		FROM interest_rate_policies
		WHERE term_months = $1 AND annual_rate_percent = $2 AND min_balance = $3;
	`
	m, err := scanInterestRatePolicy(r.Pool.QueryRow(ctx, query, termMonths, annualRatePercent, minBalance))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interest rate policy by terms: %w", err)
	}
	p := mapping.ToDomainInterestRatePolicy(m)
	return &p, nil
}

// ListInterestRatePolicies retrieves a page of policies ordered by term, rate and minimum balance.
func (r *PgxInterestRateRepository) ListInterestRatePolicies(ctx context.Context, limit int, offset int) ([]domain.InterestRatePolicy, error) {
	query := `
		SELECT ` + interestRateColumns + `
		FROM interest_rate_policies
		ORDER BY term_months, annual_rate_percent, min_balance, policy_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list interest rate policies: %w", err)
	}
	defer rows.Close()

	var ms []models.InterestRatePolicy
	for rows.Next() {
		m, err := scanInterestRatePolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interest rate policy row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interest rate policy rows: %w", err)
	}
	return mapping.ToDomainInterestRatePolicySlice(ms), nil
}

// UpdateInterestRatePolicy replaces the terms of an existing policy.
func (r *PgxInterestRateRepository) UpdateInterestRatePolicy(ctx context.Context, policy domain.InterestRatePolicy) error {
	m := mapping.ToModelInterestRatePolicy(policy)
	query := `
		UPDATE interest_rate_policies
		SET term_months = $2, annual_rate_percent = $3, min_balance = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE policy_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PolicyID,
		m.TermMonths,
		m.AnnualRatePercent,
		m.MinBalance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrPolicyDuplicate
		}
		return fmt.Errorf("failed to update interest rate policy %s: %w", m.PolicyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInterestRatePolicy removes a policy. The savings_accounts foreign key
// refuses the delete while any account references it.
func (r *PgxInterestRateRepository) DeleteInterestRatePolicy(ctx context.Context, policyID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM interest_rate_policies WHERE policy_id = $1;`, policyID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.ErrPolicyInUse
		}
		return fmt.Errorf("failed to delete interest rate policy %s: %w", policyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
