package domain

import "github.com/shopspring/decimal"

// PaymentAccount is the customer's current account that receives matured savings.
// It is owned by the account CRUD layer; settlement only credits it.
type PaymentAccount struct {
	PaymentAccountID string          `json:"paymentAccountID"`
	AccountNumber    string          `json:"accountNumber"`
	Balance          decimal.Decimal `json:"balance"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}
