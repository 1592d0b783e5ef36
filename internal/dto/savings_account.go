package dto

import (
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListSavingsAccountsParams defines query parameters for listing savings accounts.
type ListSavingsAccountsParams struct {
	Status    string  `form:"status" binding:"omitempty,oneof=ACTIVE CLOSED"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// SavingsAccountResponse mirrors domain.SavingsAccount for API responses.
type SavingsAccountResponse struct {
	SavingsAccountID       string                      `json:"savingsAccountID"`
	AccountNumber          string                      `json:"accountNumber"`
	Status                 domain.SavingsAccountStatus `json:"status"`
	OpenedAt               string                      `json:"openedAt"`
	ClosedAt               *string                     `json:"closedAt,omitempty"`
	LastAccruedOn          *string                     `json:"lastAccruedOn,omitempty"`
	CurrentBalance         decimal.Decimal             `json:"currentBalance"`
	InitialBalance         decimal.Decimal             `json:"initialBalance"`
	LinkedPaymentAccountID string                      `json:"linkedPaymentAccountID"`
	InterestRatePolicyID   string                      `json:"interestRatePolicyID"`
	LastUpdatedAt          time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy          string                      `json:"lastUpdatedBy"`
}

// ListSavingsAccountsResponse is a page of savings accounts.
type ListSavingsAccountsResponse struct {
	Accounts  []SavingsAccountResponse `json:"accounts"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// TermEndResponse answers whether an account has matured on a date.
type TermEndResponse struct {
	SavingsAccountID string `json:"savingsAccountID"`
	Date             string `json:"date"`
	IsEndOfTerm      bool   `json:"isEndOfTerm"`
}

// DateLayout is the civil date format used on the wire.
const DateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ToSavingsAccountResponse converts a domain.SavingsAccount to SavingsAccountResponse DTO
func ToSavingsAccountResponse(acc *domain.SavingsAccount) SavingsAccountResponse {
	return SavingsAccountResponse{
		SavingsAccountID:       acc.SavingsAccountID,
		AccountNumber:          acc.AccountNumber,
		Status:                 acc.Status,
		OpenedAt:               acc.OpenedAt.Format(DateLayout),
		ClosedAt:               formatDatePtr(acc.ClosedAt),
		LastAccruedOn:          formatDatePtr(acc.LastAccruedOn),
		CurrentBalance:         acc.CurrentBalance,
		InitialBalance:         acc.InitialBalance,
		LinkedPaymentAccountID: acc.LinkedPaymentAccountID,
		InterestRatePolicyID:   acc.InterestRatePolicyID,
		LastUpdatedAt:          acc.LastUpdatedAt,
		LastUpdatedBy:          acc.LastUpdatedBy,
	}
}

// ToListSavingsAccountResponse converts a slice of domain accounts to response DTOs
func ToListSavingsAccountResponse(accounts []domain.SavingsAccount) []SavingsAccountResponse {
	res := make([]SavingsAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToSavingsAccountResponse(&accounts[i])
	}
	return res
}
