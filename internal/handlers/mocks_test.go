package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InterestRateService ---
type MockInterestRateService struct {
	mock.Mock
}

func (m *MockInterestRateService) CreateInterestRatePolicy(ctx context.Context, req dto.CreateInterestRatePolicyRequest, creatorUserID string) (*domain.InterestRatePolicy, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRatePolicy), args.Error(1)
}
func (m *MockInterestRateService) GetInterestRatePolicy(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRatePolicy), args.Error(1)
}
func (m *MockInterestRateService) ListInterestRatePolicies(ctx context.Context, limit int, offset int) ([]domain.InterestRatePolicy, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterestRatePolicy), args.Error(1)
}
func (m *MockInterestRateService) UpdateInterestRatePolicy(ctx context.Context, policyID string, req dto.UpdateInterestRatePolicyRequest, userID string) (*domain.InterestRatePolicy, error) {
	args := m.Called(ctx, policyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterestRatePolicy), args.Error(1)
}
func (m *MockInterestRateService) DeleteInterestRatePolicy(ctx context.Context, policyID string, userID string) error {
	args := m.Called(ctx, policyID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.InterestRateSvcFacade = (*MockInterestRateService)(nil)

// --- Mock SavingsService ---
type MockSavingsService struct {
	mock.Mock
}

func (m *MockSavingsService) GetSavingsAccount(ctx context.Context, savingsAccountID string) (*domain.SavingsAccount, error) {
	args := m.Called(ctx, savingsAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsAccount), args.Error(1)
}
func (m *MockSavingsService) ListSavingsAccounts(ctx context.Context, params dto.ListSavingsAccountsParams) (*dto.ListSavingsAccountsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSavingsAccountsResponse), args.Error(1)
}
func (m *MockSavingsService) RunDailySettlement(ctx context.Context, today time.Time) (*domain.SettlementReport, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementReport), args.Error(1)
}
func (m *MockSavingsService) IsAccountAtTermEnd(ctx context.Context, savingsAccountID string, today time.Time) (bool, error) {
	args := m.Called(ctx, savingsAccountID, today)
	return args.Bool(0), args.Error(1)
}
func (m *MockSavingsService) ApplyDailyAccrual(ctx context.Context, savingsAccountID string, today time.Time) (*domain.SavingsAccount, error) {
	args := m.Called(ctx, savingsAccountID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsAccount), args.Error(1)
}
func (m *MockSavingsService) ListSettlementRuns(ctx context.Context, limit int, offset int) ([]domain.SettlementReport, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementReport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SavingsSvcFacade = (*MockSavingsService)(nil)
