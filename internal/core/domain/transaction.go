package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies ledger entries written by the savings core.
type TransactionType string

const (
	SavingsInterest   TransactionType = "SAVINGS_INTEREST"
	SavingsSettlement TransactionType = "SAVINGS_SETTLEMENT"
)

// Transaction is a ledger entry moving money into or out of a savings account.
type Transaction struct {
	TransactionID    string          `json:"transactionID"`
	SavingsAccountID string          `json:"savingsAccountID"`
	PaymentAccountID string          `json:"paymentAccountID"` // empty for interest entries
	Amount           decimal.Decimal `json:"amount"`
	TransactionType  TransactionType `json:"transactionType"`
	ValueDate        time.Time       `json:"valueDate"`
	Notes            string          `json:"notes"`
	AuditFields
}
