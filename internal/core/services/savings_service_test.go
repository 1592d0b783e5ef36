package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/core/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type SavingsServiceTestSuite struct {
	suite.Suite
	store    *fakeSavingsStore
	rates    *fakeRateStore
	runs     *fakeRunStore
	observer *recordingObserver
	clockAt  time.Time
	service  portssvc.SavingsSvcFacade
}

// tick advances the suite clock one second per reading.
func (suite *SavingsServiceTestSuite) tick() time.Time {
	suite.clockAt = suite.clockAt.Add(time.Second)
	return suite.clockAt
}

func (suite *SavingsServiceTestSuite) SetupTest() {
	suite.store = newFakeSavingsStore()
	suite.rates = &fakeRateStore{policies: map[string]domain.InterestRatePolicy{
		"twelve-month": {
			PolicyID:          "twelve-month",
			TermMonths:        12,
			AnnualRatePercent: decimal.NewFromInt(6),
			MinBalance:        decimal.NewFromInt(1000000),
		},
	}}
	suite.runs = &fakeRunStore{}
	suite.observer = &recordingObserver{}
	suite.clockAt = time.Date(2024, 1, 14, 17, 0, 0, 0, time.UTC)
	suite.service = services.NewSavingsService(suite.store, suite.rates, suite.runs,
		services.WithSettlementWorkers(3),
		services.WithSettlementObserver(suite.observer),
		services.WithSavingsClock(suite.tick),
	)
}

func (suite *SavingsServiceTestSuite) newAccount(id string, openedAt time.Time, balance int64, paymentID string) domain.SavingsAccount {
	return domain.SavingsAccount{
		SavingsAccountID:       id,
		AccountNumber:          "SA-" + id,
		Status:                 domain.SavingsActive,
		OpenedAt:               openedAt,
		CurrentBalance:         decimal.NewFromInt(balance),
		InitialBalance:         decimal.NewFromInt(balance),
		LinkedPaymentAccountID: paymentID,
		InterestRatePolicyID:   "twelve-month",
	}
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_SettlesMaturedAccount() {
	ctx := context.Background()
	today := civil(2024, 1, 15)
	suite.store.addAccount(suite.newAccount("matured", civil(2023, 1, 15), 5000000, "pay-1"))
	suite.store.addPayment("pay-1", decimal.NewFromInt(200000))

	report, err := suite.service.RunDailySettlement(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(1, report.Processed)
	suite.Equal(1, report.Settled)
	suite.Equal(0, report.Failed)

	closed := suite.store.account("matured")
	suite.Equal(domain.SavingsClosed, closed.Status)
	suite.Require().NotNil(closed.ClosedAt)
	suite.Equal(today, *closed.ClosedAt)
	suite.True(closed.CurrentBalance.Equal(decimal.NewFromInt(5000000)), "closing snapshot kept, got %s", closed.CurrentBalance)
	suite.True(suite.store.payment("pay-1").Equal(decimal.NewFromInt(5200000)), "got %s", suite.store.payment("pay-1"))

	// Second run on the same day must not touch the CLOSED account.
	again, err := suite.service.RunDailySettlement(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(0, again.Processed)
	suite.True(suite.store.payment("pay-1").Equal(decimal.NewFromInt(5200000)))
	suite.Len(suite.runs.runs, 2)
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_AccruesOncePerDay() {
	ctx := context.Background()
	today := civil(2023, 6, 1)
	suite.store.addAccount(suite.newAccount("young", civil(2023, 5, 1), 1000000, "pay-1"))
	suite.store.addPayment("pay-1", decimal.Zero)

	report, err := suite.service.RunDailySettlement(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(1, report.Accrued)

	acc := suite.store.account("young")
	suite.True(acc.CurrentBalance.Equal(decimal.RequireFromString("1000164.38")), "got %s", acc.CurrentBalance)
	suite.Require().NotNil(acc.LastAccruedOn)
	suite.Equal(today, *acc.LastAccruedOn)

	again, err := suite.service.RunDailySettlement(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(1, again.Skipped)
	suite.Equal(0, again.Accrued)
	suite.True(suite.store.account("young").CurrentBalance.Equal(decimal.RequireFromString("1000164.38")))

	next, err := suite.service.RunDailySettlement(ctx, today.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Equal(1, next.Accrued)
	suite.True(suite.store.account("young").CurrentBalance.GreaterThan(decimal.RequireFromString("1000164.38")))
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_IsolatesFailures() {
	ctx := context.Background()
	today := civil(2024, 1, 15)
	suite.store.addAccount(suite.newAccount("a-accrues", civil(2023, 6, 1), 1000000, "pay-a"))
	suite.store.addAccount(suite.newAccount("b-broken", civil(2023, 1, 15), 3000000, "pay-missing"))
	suite.store.addAccount(suite.newAccount("c-settles", civil(2022, 12, 1), 2000000, "pay-c"))
	suite.store.addPayment("pay-a", decimal.Zero)
	suite.store.addPayment("pay-c", decimal.NewFromInt(10))

	report, err := suite.service.RunDailySettlement(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(3, report.Processed)
	suite.Equal(1, report.Accrued)
	suite.Equal(1, report.Settled)
	suite.Equal(1, report.Failed)
	suite.Require().Len(report.Failures, 1)
	suite.Equal("b-broken", report.Failures[0].SavingsAccountID)
	suite.Contains(report.Failures[0].Reason, apperrors.ErrSettlementFailure.Error())

	// 2024 is a leap year: 1,000,000 * 6% / 366.
	suite.True(suite.store.account("a-accrues").CurrentBalance.Equal(decimal.RequireFromString("1000163.93")))
	suite.Equal(domain.SavingsActive, suite.store.account("b-broken").Status)
	suite.True(suite.store.account("b-broken").CurrentBalance.Equal(decimal.NewFromInt(3000000)))
	suite.True(suite.store.payment("pay-c").Equal(decimal.NewFromInt(2000010)))

	suite.Equal(1, suite.observer.outcomes[domain.OutcomeFailed])
	suite.Equal(1, suite.observer.runs)
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_ReportTimestampsComeFromClock() {
	report, err := suite.service.RunDailySettlement(context.Background(), civil(2024, 1, 15))

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 1, 14, 17, 0, 1, 0, time.UTC), report.StartedAt)
	suite.Equal(time.Date(2024, 1, 14, 17, 0, 2, 0, time.UTC), report.FinishedAt)
	suite.Require().Len(suite.runs.runs, 1)
	suite.Equal(report.FinishedAt, suite.runs.runs[0].FinishedAt)
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_BalanceMovedBeforeWriteIsReaccrued() {
	ctx := context.Background()
	today := civil(2023, 6, 1)
	suite.store.addAccount(suite.newAccount("young", civil(2023, 5, 1), 1000000, "pay-1"))
	// Yesterday's accrual commits after the run listed the account.
	suite.store.beforeAccrual = func(f *fakeSavingsStore) {
		f.mu.Lock()
		defer f.mu.Unlock()
		a := f.accounts["young"]
		yesterday := civil(2023, 5, 31)
		a.CurrentBalance = decimal.RequireFromString("1000164.38")
		a.LastAccruedOn = &yesterday
		f.accounts["young"] = a
	}

	report, err := suite.service.RunDailySettlement(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(1, report.Accrued)
	suite.Equal(0, report.Failed)

	acc := suite.store.account("young")
	// 1,000,164.38 * 6% / 365 = 164.4105...
	suite.True(acc.CurrentBalance.Equal(decimal.RequireFromString("1000328.79")), "got %s", acc.CurrentBalance)
	suite.Require().NotNil(acc.LastAccruedOn)
	suite.Equal(today, *acc.LastAccruedOn)

	interest := suite.store.interestTransactions("young")
	suite.Require().Len(interest, 1)
	suite.True(interest[0].Amount.Equal(decimal.RequireFromString("164.41")), "got %s", interest[0].Amount)
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_SameDayAccrualBeforeWriteIsSkipped() {
	ctx := context.Background()
	today := civil(2023, 6, 1)
	suite.store.addAccount(suite.newAccount("young", civil(2023, 5, 1), 1000000, "pay-1"))
	suite.store.beforeAccrual = func(f *fakeSavingsStore) {
		f.mu.Lock()
		defer f.mu.Unlock()
		a := f.accounts["young"]
		a.CurrentBalance = decimal.RequireFromString("1000164.38")
		a.LastAccruedOn = &today
		f.accounts["young"] = a
	}

	report, err := suite.service.RunDailySettlement(ctx, today)

	suite.Require().NoError(err)
	suite.Equal(1, report.Skipped)
	suite.True(suite.store.account("young").CurrentBalance.Equal(decimal.RequireFromString("1000164.38")))
}

func (suite *SavingsServiceTestSuite) TestApplyDailyAccrual_BalanceMovedBeforeWrite() {
	ctx := context.Background()
	suite.store.addAccount(suite.newAccount("young", civil(2023, 5, 1), 1000000, "pay-1"))
	suite.store.beforeAccrual = func(f *fakeSavingsStore) {
		f.mu.Lock()
		defer f.mu.Unlock()
		a := f.accounts["young"]
		a.CurrentBalance = decimal.NewFromInt(2000000)
		f.accounts["young"] = a
	}

	acc, err := suite.service.ApplyDailyAccrual(ctx, "young", civil(2023, 6, 1))

	suite.Require().NoError(err)
	// 2,000,000 * 6% / 365 = 328.767...
	suite.True(acc.CurrentBalance.Equal(decimal.RequireFromString("2000328.77")), "got %s", acc.CurrentBalance)
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_SlowPolicyLookupDoesNotBlockOthers() {
	ctx := context.Background()
	release := make(chan struct{})
	rates := &blockingRateStore{
		fakeRateStore: fakeRateStore{policies: map[string]domain.InterestRatePolicy{
			"slow": {PolicyID: "slow", TermMonths: 12, AnnualRatePercent: decimal.NewFromInt(6)},
			"fast": {PolicyID: "fast", TermMonths: 12, AnnualRatePercent: decimal.NewFromInt(6)},
		}},
		blockID: "slow",
		release: release,
	}
	slow := suite.newAccount("a-slow", civil(2023, 5, 1), 1000000, "pay-1")
	slow.InterestRatePolicyID = "slow"
	fast := suite.newAccount("b-fast", civil(2023, 5, 1), 1000000, "pay-1")
	fast.InterestRatePolicyID = "fast"
	suite.store.addAccount(slow)
	suite.store.addAccount(fast)
	// The fast account reaching its write unblocks the slow lookup.
	suite.store.beforeAccrual = func(*fakeSavingsStore) { close(release) }

	service := services.NewSavingsService(suite.store, rates, suite.runs, services.WithSettlementWorkers(2))
	report, err := service.RunDailySettlement(ctx, civil(2023, 6, 1))

	suite.Require().NoError(err)
	suite.Equal(2, report.Accrued, "failures: %v", report.Failures)
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_MissingPolicyFailsOnlyThatAccount() {
	ctx := context.Background()
	orphan := suite.newAccount("orphan", civil(2023, 5, 1), 1000000, "pay-1")
	orphan.InterestRatePolicyID = "gone"
	suite.store.addAccount(orphan)
	suite.store.addAccount(suite.newAccount("ok", civil(2023, 5, 1), 1000000, "pay-1"))

	report, err := suite.service.RunDailySettlement(ctx, civil(2023, 6, 1))

	suite.Require().NoError(err)
	suite.Equal(1, report.Accrued)
	suite.Equal(1, report.Failed)
	suite.Contains(report.Failures[0].Reason, apperrors.ErrPolicyNotFound.Error())
}

func (suite *SavingsServiceTestSuite) TestRunDailySettlement_CancelledBeforeStart() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.store.addAccount(suite.newAccount("young", civil(2023, 5, 1), 1000000, "pay-1"))

	report, err := suite.service.RunDailySettlement(ctx, civil(2023, 6, 1))

	suite.ErrorIs(err, context.Canceled)
	suite.Require().NotNil(report)
	suite.Equal(0, report.Processed)
	suite.True(suite.store.account("young").CurrentBalance.Equal(decimal.NewFromInt(1000000)))
	suite.Len(suite.runs.runs, 1, "partial reports are still persisted")
}

func (suite *SavingsServiceTestSuite) TestApplyDailyAccrual() {
	ctx := context.Background()
	today := civil(2023, 6, 1)
	suite.store.addAccount(suite.newAccount("young", civil(2023, 5, 1), 1000000, "pay-1"))

	acc, err := suite.service.ApplyDailyAccrual(ctx, "young", today)
	suite.Require().NoError(err)
	suite.True(acc.CurrentBalance.Equal(decimal.RequireFromString("1000164.38")))

	again, err := suite.service.ApplyDailyAccrual(ctx, "young", today)
	suite.Require().NoError(err)
	suite.True(again.CurrentBalance.Equal(acc.CurrentBalance), "same-day re-application is a no-op")
}

func (suite *SavingsServiceTestSuite) TestApplyDailyAccrual_Rejections() {
	ctx := context.Background()
	closed := suite.newAccount("closed", civil(2022, 1, 1), 1000000, "pay-1")
	closed.Status = domain.SavingsClosed
	suite.store.addAccount(closed)
	suite.store.addAccount(suite.newAccount("matured", civil(2023, 1, 15), 1000000, "pay-1"))

	_, err := suite.service.ApplyDailyAccrual(ctx, "closed", civil(2024, 1, 15))
	suite.ErrorIs(err, apperrors.ErrAlreadySettled)

	_, err = suite.service.ApplyDailyAccrual(ctx, "matured", civil(2024, 1, 15))
	suite.ErrorIs(err, apperrors.ErrTermEnded)
	suite.True(suite.store.account("matured").CurrentBalance.Equal(decimal.NewFromInt(1000000)))

	_, err = suite.service.ApplyDailyAccrual(ctx, "nope", civil(2024, 1, 15))
	suite.ErrorIs(err, apperrors.ErrSavingsAccountNotFound)
}

func (suite *SavingsServiceTestSuite) TestIsAccountAtTermEnd() {
	ctx := context.Background()
	suite.store.addAccount(suite.newAccount("acc", civil(2023, 1, 15), 1000000, "pay-1"))

	atEnd, err := suite.service.IsAccountAtTermEnd(ctx, "acc", civil(2024, 1, 14))
	suite.Require().NoError(err)
	suite.False(atEnd)

	atEnd, err = suite.service.IsAccountAtTermEnd(ctx, "acc", civil(2024, 1, 15))
	suite.Require().NoError(err)
	suite.True(atEnd)
}

func TestSavingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}

// SavingsServiceMockTestSuite covers paths that need precise control over repository results.
type SavingsServiceMockTestSuite struct {
	suite.Suite
	mockSavingsRepo *MockSavingsAccountRepository
	mockRateRepo    *MockInterestRateRepository
	mockRunRepo     *MockSettlementRunRepository
	service         portssvc.SavingsSvcFacade
}

func (suite *SavingsServiceMockTestSuite) SetupTest() {
	suite.mockSavingsRepo = new(MockSavingsAccountRepository)
	suite.mockRateRepo = new(MockInterestRateRepository)
	suite.mockRunRepo = new(MockSettlementRunRepository)
	suite.service = services.NewSavingsService(suite.mockSavingsRepo, suite.mockRateRepo, suite.mockRunRepo)
}

func (suite *SavingsServiceMockTestSuite) TestRunDailySettlement_ListError() {
	ctx := context.Background()
	dbErr := errors.New("db down")
	suite.mockSavingsRepo.On("ListActiveSavingsAccounts", ctx).Return(nil, dbErr).Once()

	report, err := suite.service.RunDailySettlement(ctx, civil(2024, 1, 1))

	suite.Nil(report)
	suite.ErrorIs(err, dbErr)
	suite.mockRunRepo.AssertNotCalled(suite.T(), "SaveSettlementRun", mock.Anything, mock.Anything)
}

func (suite *SavingsServiceMockTestSuite) TestRunDailySettlement_ConcurrentSettleCountsAsSkipped() {
	ctx := context.Background()
	account := domain.SavingsAccount{
		SavingsAccountID:       "acc",
		Status:                 domain.SavingsActive,
		OpenedAt:               civil(2023, 1, 15),
		CurrentBalance:         decimal.NewFromInt(5000000),
		LinkedPaymentAccountID: "pay",
		InterestRatePolicyID:   "p",
	}
	policy := &domain.InterestRatePolicy{PolicyID: "p", TermMonths: 12, AnnualRatePercent: decimal.NewFromInt(6)}

	suite.mockSavingsRepo.On("ListActiveSavingsAccounts", ctx).Return([]domain.SavingsAccount{account}, nil).Once()
	suite.mockRateRepo.On("FindInterestRatePolicyByID", ctx, "p").Return(policy, nil).Once()
	suite.mockSavingsRepo.On("SettleSavingsAccount", ctx, mock.MatchedBy(func(s domain.Settlement) bool {
		return s.SavingsAccountID == "acc" && s.PaymentAccountID == "pay" && s.Amount.Equal(decimal.NewFromInt(5000000))
	})).Return(apperrors.ErrAlreadySettled).Once()
	suite.mockRunRepo.On("SaveSettlementRun", mock.Anything, mock.AnythingOfType("domain.SettlementReport")).Return(nil).Once()

	report, err := suite.service.RunDailySettlement(ctx, civil(2024, 1, 15))

	suite.Require().NoError(err)
	suite.Equal(1, report.Skipped)
	suite.Equal(0, report.Failed)
	suite.mockSavingsRepo.AssertExpectations(suite.T())
	suite.mockRunRepo.AssertExpectations(suite.T())
}

func (suite *SavingsServiceMockTestSuite) TestRunDailySettlement_AccrualFailureIsWrapped() {
	ctx := context.Background()
	account := domain.SavingsAccount{
		SavingsAccountID:     "acc",
		Status:               domain.SavingsActive,
		OpenedAt:             civil(2023, 5, 1),
		CurrentBalance:       decimal.NewFromInt(1000000),
		InterestRatePolicyID: "p",
	}
	policy := &domain.InterestRatePolicy{PolicyID: "p", TermMonths: 12, AnnualRatePercent: decimal.NewFromInt(6)}

	suite.mockSavingsRepo.On("ListActiveSavingsAccounts", ctx).Return([]domain.SavingsAccount{account}, nil).Once()
	suite.mockRateRepo.On("FindInterestRatePolicyByID", ctx, "p").Return(policy, nil).Once()
	suite.mockSavingsRepo.On("RecordDailyAccrual", ctx, mock.MatchedBy(func(a domain.DailyAccrual) bool {
		return a.SavingsAccountID == "acc" && a.PreviousBalance.Equal(decimal.NewFromInt(1000000))
	})).Return(apperrors.ErrBalanceChanged).Twice()
	suite.mockSavingsRepo.On("FindSavingsAccountByID", ctx, "acc").Return(&account, nil).Once()
	suite.mockRunRepo.On("SaveSettlementRun", mock.Anything, mock.Anything).Return(nil).Once()

	report, err := suite.service.RunDailySettlement(ctx, civil(2023, 6, 1))

	suite.Require().NoError(err)
	suite.Equal(1, report.Failed)
	suite.Require().Len(report.Failures, 1)
	suite.Contains(report.Failures[0].Reason, apperrors.ErrSettlementFailure.Error())
	suite.Contains(report.Failures[0].Reason, apperrors.ErrBalanceChanged.Error())
	suite.mockSavingsRepo.AssertExpectations(suite.T())
}

func (suite *SavingsServiceMockTestSuite) TestRunDailySettlement_ReportSaveErrorIsNotFatal() {
	ctx := context.Background()
	suite.mockSavingsRepo.On("ListActiveSavingsAccounts", ctx).Return([]domain.SavingsAccount{}, nil).Once()
	suite.mockRunRepo.On("SaveSettlementRun", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	report, err := suite.service.RunDailySettlement(ctx, civil(2024, 1, 15))

	suite.Require().NoError(err)
	suite.Equal(0, report.Processed)
}

func (suite *SavingsServiceMockTestSuite) TestListSavingsAccounts_MapsStatusAndLimit() {
	ctx := context.Background()
	token := "next"
	status := domain.SavingsClosed
	suite.mockSavingsRepo.On("ListSavingsAccounts", ctx, &status, 20, (*string)(nil)).
		Return([]domain.SavingsAccount{{SavingsAccountID: "a", OpenedAt: civil(2023, 1, 1)}}, &token, nil).Once()

	resp, err := suite.service.ListSavingsAccounts(ctx, dto.ListSavingsAccountsParams{Status: "CLOSED"})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("2023-01-01", resp.Accounts[0].OpenedAt)
	suite.Equal(&token, resp.NextToken)
}

func (suite *SavingsServiceMockTestSuite) TestGetSavingsAccount_NotFound() {
	ctx := context.Background()
	suite.mockSavingsRepo.On("FindSavingsAccountByID", ctx, "x").Return(nil, apperrors.ErrNotFound).Once()

	acc, err := suite.service.GetSavingsAccount(ctx, "x")

	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrSavingsAccountNotFound)
}

func TestSavingsServiceMockTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceMockTestSuite))
}
