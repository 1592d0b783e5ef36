package mapping

import (
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/SscSPs/online_banking_backend/internal/models"
)

// ToModelSavingsAccount converts a domain SavingsAccount to a model SavingsAccount
func ToModelSavingsAccount(d domain.SavingsAccount) models.SavingsAccount {
	return models.SavingsAccount{
		SavingsAccountID:       d.SavingsAccountID,
		AccountNumber:          d.AccountNumber,
		Status:                 string(d.Status),
		OpenedAt:               d.OpenedAt,
		ClosedAt:               d.ClosedAt,
		LastAccruedOn:          d.LastAccruedOn,
		CurrentBalance:         d.CurrentBalance,
		InitialBalance:         d.InitialBalance,
		LinkedPaymentAccountID: d.LinkedPaymentAccountID,
		InterestRatePolicyID:   d.InterestRatePolicyID,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSavingsAccount converts a model SavingsAccount to a domain SavingsAccount
func ToDomainSavingsAccount(m models.SavingsAccount) domain.SavingsAccount {
	return domain.SavingsAccount{
		SavingsAccountID:       m.SavingsAccountID,
		AccountNumber:          m.AccountNumber,
		Status:                 domain.SavingsAccountStatus(m.Status),
		OpenedAt:               m.OpenedAt,
		ClosedAt:               m.ClosedAt,
		LastAccruedOn:          m.LastAccruedOn,
		CurrentBalance:         m.CurrentBalance,
		InitialBalance:         m.InitialBalance,
		LinkedPaymentAccountID: m.LinkedPaymentAccountID,
		InterestRatePolicyID:   m.InterestRatePolicyID,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var paymentAccountID *string
	if d.PaymentAccountID != "" {
		id := d.PaymentAccountID
		paymentAccountID = &id
	}
	return models.Transaction{
		TransactionID:    d.TransactionID,
		SavingsAccountID: d.SavingsAccountID,
		PaymentAccountID: paymentAccountID,
		Amount:           d.Amount,
		TransactionType:  string(d.TransactionType),
		ValueDate:        d.ValueDate,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}
