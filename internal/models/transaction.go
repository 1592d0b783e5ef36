package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of savings_transactions.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	SavingsAccountID string          `db:"savings_account_id"`
	PaymentAccountID *string         `db:"payment_account_id"` // Nullable
	Amount           decimal.Decimal `db:"amount"`
	TransactionType  string          `db:"transaction_type"`
	ValueDate        time.Time       `db:"value_date"`
	Notes            string          `db:"notes"`
	AuditFields
}
