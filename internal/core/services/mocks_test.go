package services_test

import (
	"context"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockInterestRateRepository is a mock type for the InterestRateRepositoryFacade interface
type MockInterestRateRepository struct {
	mock.Mock
}

func (m *MockInterestRateRepository) FindInterestRatePolicyByID(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRatePolicy), args.Error(1)
}

func (m *MockInterestRateRepository) FindInterestRatePolicyByTerms(ctx context.Context, termMonths int, annualRatePercent, minBalance decimal.Decimal) (*domain.InterestRatePolicy, error) {
	args := m.Called(ctx, termMonths, annualRatePercent, minBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRatePolicy), args.Error(1)
}

func (m *MockInterestRateRepository) ListInterestRatePolicies(ctx context.Context, limit int, offset int) ([]domain.InterestRatePolicy, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestRatePolicy), args.Error(1)
}

func (m *MockInterestRateRepository) SaveInterestRatePolicy(ctx context.Context, policy domain.InterestRatePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockInterestRateRepository) UpdateInterestRatePolicy(ctx context.Context, policy domain.InterestRatePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockInterestRateRepository) DeleteInterestRatePolicy(ctx context.Context, policyID string) error {
	args := m.Called(ctx, policyID)
	return args.Error(0)
}

// MockSavingsAccountRepository is a mock type for the SavingsAccountRepositoryFacade interface
type MockSavingsAccountRepository struct {
	mock.Mock
}

func (m *MockSavingsAccountRepository) FindSavingsAccountByID(ctx context.Context, savingsAccountID string) (*domain.SavingsAccount, error) {
	args := m.Called(ctx, savingsAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsAccount), args.Error(1)
}

func (m *MockSavingsAccountRepository) ListActiveSavingsAccounts(ctx context.Context) ([]domain.SavingsAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsAccount), args.Error(1)
}

func (m *MockSavingsAccountRepository) ListSavingsAccounts(ctx context.Context, status *domain.SavingsAccountStatus, limit int, nextToken *string) ([]domain.SavingsAccount, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.SavingsAccount), token, args.Error(2)
}

func (m *MockSavingsAccountRepository) CountSavingsAccountsByPolicy(ctx context.Context, policyID string) (int, error) {
	args := m.Called(ctx, policyID)
	return args.Int(0), args.Error(1)
}

func (m *MockSavingsAccountRepository) RecordDailyAccrual(ctx context.Context, accrual domain.DailyAccrual) error {
	args := m.Called(ctx, accrual)
	return args.Error(0)
}

func (m *MockSavingsAccountRepository) SettleSavingsAccount(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

// MockSettlementRunRepository is a mock type for the SettlementRunRepository interface
type MockSettlementRunRepository struct {
	mock.Mock
}

func (m *MockSettlementRunRepository) SaveSettlementRun(ctx context.Context, report domain.SettlementReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockSettlementRunRepository) ListSettlementRuns(ctx context.Context, limit int, offset int) ([]domain.SettlementReport, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementReport), args.Error(1)
}
