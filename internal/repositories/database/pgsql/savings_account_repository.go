package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	"github.com/SscSPs/online_banking_backend/internal/models"
	"github.com/SscSPs/online_banking_backend/internal/utils/mapping"
	"github.com/SscSPs/online_banking_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const savingsAccountColumns = `savings_account_id, account_number, status, opened_at, closed_at, last_accrued_on,
	current_balance, initial_balance, linked_payment_account_id, interest_rate_policy_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSavingsAccountRepository struct {
	BaseRepository
	now func() time.Time
}

func newPgxSavingsAccountRepository(pool *pgxpool.Pool) portsrepo.SavingsAccountRepositoryFacade {
	return &PgxSavingsAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
		now:            time.Now,
	}
}

var _ portsrepo.SavingsAccountRepositoryFacade = (*PgxSavingsAccountRepository)(nil)

func scanSavingsAccount(row pgx.Row) (models.SavingsAccount, error) {
	var m models.SavingsAccount
	err := row.Scan(
		&m.SavingsAccountID,
		&m.AccountNumber,
		&m.Status,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.LastAccruedOn,
		&m.CurrentBalance,
		&m.InitialBalance,
		&m.LinkedPaymentAccountID,
		&m.InterestRatePolicyID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectSavingsAccounts(rows pgx.Rows) ([]models.SavingsAccount, error) {
	defer rows.Close()
	var ms []models.SavingsAccount
	for rows.Next() {
		m, err := scanSavingsAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings account rows: %w", err)
	}
	return ms, nil
}

func toDomainSavingsAccounts(ms []models.SavingsAccount) []domain.SavingsAccount {
	out := make([]domain.SavingsAccount, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainSavingsAccount(m)
	}
	return out
}

// FindSavingsAccountByID retrieves a savings account by its ID.
func (r *PgxSavingsAccountRepository) FindSavingsAccountByID(ctx context.Context, savingsAccountID string) (*domain.SavingsAccount, error) {
	query := `SELECT ` + savingsAccountColumns + ` FROM savings_accounts WHERE savings_account_id = $1;`
	m, err := scanSavingsAccount(r.Pool.QueryRow(ctx, query, savingsAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find savings account %s: %w", savingsAccountID, err)
	}
	acc := mapping.ToDomainSavingsAccount(m)
	return &acc, nil
}

// ListActiveSavingsAccounts retrieves every ACTIVE account.
func (r *PgxSavingsAccountRepository) ListActiveSavingsAccounts(ctx context.Context) ([]domain.SavingsAccount, error) {
	query := `
		SELECT ` + savingsAccountColumns + `
		FROM savings_accounts
		WHERE status = 'ACTIVE'
		ORDER BY savings_account_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active savings accounts: %w", err)
	}
	ms, err := collectSavingsAccounts(rows)
	if err != nil {
		return nil, err
	}
	return toDomainSavingsAccounts(ms), nil
}

// ListSavingsAccounts retrieves a page of accounts, newest first, using keyset pagination
// on (opened_at, savings_account_id).
func (r *PgxSavingsAccountRepository) ListSavingsAccounts(ctx context.Context, status *domain.SavingsAccountStatus, limit int, nextToken *string) ([]domain.SavingsAccount, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + savingsAccountColumns + ` FROM savings_accounts WHERE TRUE`
	args := []interface{}{}

	if status != nil {
		args = append(args, string(*status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastOpenedAt, lastID, decodeErr := pagination.DecodeDateIDToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		args = append(args, lastOpenedAt, lastID)
		query += ` AND (opened_at, savings_account_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY opened_at DESC, savings_account_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query savings accounts", err)
	}
	ms, err := collectSavingsAccounts(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		newToken := pagination.EncodeDateIDToken(last.OpenedAt, last.SavingsAccountID)
		nextTokenVal = &newToken
		ms = ms[:limit]
	}
	return toDomainSavingsAccounts(ms), nextTokenVal, nil
}

// CountSavingsAccountsByPolicy counts accounts of any status referencing a policy.
func (r *PgxSavingsAccountRepository) CountSavingsAccountsByPolicy(ctx context.Context, policyID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM savings_accounts WHERE interest_rate_policy_id = $1;`, policyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count savings accounts for policy %s: %w", policyID, err)
	}
	return count, nil
}

type lockedSavingsRow struct {
	status         string
	lastAccruedOn  *time.Time
	currentBalance decimal.Decimal
}

// lockSavingsAccount takes a row lock on the savings account for the rest of tx.
func lockSavingsAccount(ctx context.Context, tx pgx.Tx, savingsAccountID string) (lockedSavingsRow, error) {
	var row lockedSavingsRow
	err := tx.QueryRow(ctx, `
		SELECT status, last_accrued_on, current_balance
		FROM savings_accounts
		WHERE savings_account_id = $1
		FOR UPDATE;
	`, savingsAccountID).Scan(&row.status, &row.lastAccruedOn, &row.currentBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, apperrors.ErrSavingsAccountNotFound
		}
		return row, fmt.Errorf("failed to lock savings account %s: %w", savingsAccountID, err)
	}
	return row, nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := tx.Exec(ctx, `
		INSERT INTO savings_transactions (
			transaction_id, savings_account_id, payment_account_id, amount, transaction_type,
			value_date, notes, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		m.TransactionID,
		m.SavingsAccountID,
		m.PaymentAccountID,
		m.Amount,
		m.TransactionType,
		m.ValueDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func systemAudit(now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     domain.SystemUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: domain.SystemUserID,
	}
}

// RecordDailyAccrual stores one day's interest and the matching ledger entry.
// A second call for the same or an earlier date returns ErrAlreadyAccrued, and
// a balance that moved since PreviousBalance was read returns ErrBalanceChanged.
func (r *PgxSavingsAccountRepository) RecordDailyAccrual(ctx context.Context, accrual domain.DailyAccrual) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockSavingsAccount(ctx, tx, accrual.SavingsAccountID)
	if err != nil {
		return err
	}
	if locked.status != string(domain.SavingsActive) {
		return apperrors.ErrAlreadySettled
	}
	day := domain.CivilDate(accrual.AccrualDate)
	if locked.lastAccruedOn != nil && !domain.CivilDate(*locked.lastAccruedOn).Before(day) {
		return apperrors.ErrAlreadyAccrued
	}
	if !locked.currentBalance.Equal(accrual.PreviousBalance) {
		return fmt.Errorf("%w: expected %s, found %s", apperrors.ErrBalanceChanged, accrual.PreviousBalance, locked.currentBalance)
	}
	if accrual.NewBalance.LessThan(locked.currentBalance) {
		return fmt.Errorf("%w: accrual for %s would lower balance %s to %s",
			apperrors.ErrAccrualComputation, accrual.SavingsAccountID, locked.currentBalance, accrual.NewBalance)
	}

	now := r.now()
	_, err = tx.Exec(ctx, `
		UPDATE savings_accounts
		SET current_balance = $2, last_accrued_on = $3, last_updated_at = $4, last_updated_by = $5
		WHERE savings_account_id = $1;
	`, accrual.SavingsAccountID, accrual.NewBalance, day, now, domain.SystemUserID)
	if err != nil {
		return fmt.Errorf("failed to update savings balance for %s: %w", accrual.SavingsAccountID, err)
	}

	if err := insertTransaction(ctx, tx, domain.Transaction{
		TransactionID:    accrual.TransactionID,
		SavingsAccountID: accrual.SavingsAccountID,
		Amount:           accrual.NewBalance.Sub(locked.currentBalance),
		TransactionType:  domain.SavingsInterest,
		ValueDate:        day,
		Notes:            "daily interest " + accrual.Increment.String(),
		AuditFields:      systemAudit(now),
	}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SettleSavingsAccount credits the linked payment account with the settlement
// amount and closes the savings account, all in one transaction.
func (r *PgxSavingsAccountRepository) SettleSavingsAccount(ctx context.Context, settlement domain.Settlement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockSavingsAccount(ctx, tx, settlement.SavingsAccountID)
	if err != nil {
		return err
	}
	if locked.status != string(domain.SavingsActive) {
		return apperrors.ErrAlreadySettled
	}
	if !locked.currentBalance.Equal(settlement.Amount) {
		return fmt.Errorf("%w: expected %s, found %s", apperrors.ErrBalanceChanged, settlement.Amount, locked.currentBalance)
	}

	now := r.now()
	day := domain.CivilDate(settlement.SettlementDate)

	// The row lock taken by UPDATE serializes concurrent credits to one payment account.
	cmdTag, err := tx.Exec(ctx, `
		UPDATE payment_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE payment_account_id = $1 AND is_active;
	`, settlement.PaymentAccountID, settlement.Amount, now, domain.SystemUserID)
	if err != nil {
		return fmt.Errorf("failed to credit payment account %s: %w", settlement.PaymentAccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrPaymentAccountNotFound, settlement.PaymentAccountID)
	}

	_, err = tx.Exec(ctx, `
		UPDATE savings_accounts
		SET status = 'CLOSED', closed_at = $2, last_updated_at = $3, last_updated_by = $4
		WHERE savings_account_id = $1;
	`, settlement.SavingsAccountID, day, now, domain.SystemUserID)
	if err != nil {
		return fmt.Errorf("failed to close savings account %s: %w", settlement.SavingsAccountID, err)
	}

	if err := insertTransaction(ctx, tx, domain.Transaction{
		TransactionID:    settlement.TransactionID,
		SavingsAccountID: settlement.SavingsAccountID,
		PaymentAccountID: settlement.PaymentAccountID,
		Amount:           settlement.Amount,
		TransactionType:  domain.SavingsSettlement,
		ValueDate:        day,
		Notes:            "term settlement",
		AuditFields:      systemAudit(now),
	}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
