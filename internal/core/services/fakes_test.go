package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fakeSavingsStore is an in-memory savings and payment ledger with the same
// conflict semantics as the postgres repository.
type fakeSavingsStore struct {
	mu           sync.Mutex
	accounts     map[string]domain.SavingsAccount
	payments     map[string]decimal.Decimal
	transactions []domain.Transaction
	// beforeAccrual runs once, ahead of the next RecordDailyAccrual, to
	// simulate a writer that commits between the run's read and its write.
	beforeAccrual func(f *fakeSavingsStore)
}

func newFakeSavingsStore() *fakeSavingsStore {
	return &fakeSavingsStore{
		accounts: make(map[string]domain.SavingsAccount),
		payments: make(map[string]decimal.Decimal),
	}
}

func (f *fakeSavingsStore) addAccount(a domain.SavingsAccount) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[a.SavingsAccountID] = a
}

func (f *fakeSavingsStore) addPayment(id string, balance decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[id] = balance
}

func (f *fakeSavingsStore) account(id string) domain.SavingsAccount {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[id]
}

func (f *fakeSavingsStore) payment(id string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payments[id]
}

func (f *fakeSavingsStore) FindSavingsAccountByID(_ context.Context, id string) (*domain.SavingsAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (f *fakeSavingsStore) ListActiveSavingsAccounts(_ context.Context) ([]domain.SavingsAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.SavingsAccount
	for _, a := range f.accounts {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavingsAccountID < out[j].SavingsAccountID })
	return out, nil
}

func (f *fakeSavingsStore) ListSavingsAccounts(_ context.Context, _ *domain.SavingsAccountStatus, _ int, _ *string) ([]domain.SavingsAccount, *string, error) {
	return nil, nil, nil
}

func (f *fakeSavingsStore) CountSavingsAccountsByPolicy(_ context.Context, policyID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.accounts {
		if a.InterestRatePolicyID == policyID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSavingsStore) RecordDailyAccrual(_ context.Context, accrual domain.DailyAccrual) error {
	f.mu.Lock()
	hook := f.beforeAccrual
	f.beforeAccrual = nil
	f.mu.Unlock()
	if hook != nil {
		hook(f)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[accrual.SavingsAccountID]
	if !ok {
		return apperrors.ErrSavingsAccountNotFound
	}
	if !a.IsActive() {
		return apperrors.ErrAlreadySettled
	}
	if a.AccruedOn(accrual.AccrualDate) {
		return apperrors.ErrAlreadyAccrued
	}
	if !a.CurrentBalance.Equal(accrual.PreviousBalance) {
		return apperrors.ErrBalanceChanged
	}
	day := accrual.AccrualDate
	previous := a.CurrentBalance
	a.CurrentBalance = accrual.NewBalance
	a.LastAccruedOn = &day
	f.accounts[a.SavingsAccountID] = a
	f.transactions = append(f.transactions, domain.Transaction{
		TransactionID:    accrual.TransactionID,
		SavingsAccountID: a.SavingsAccountID,
		Amount:           accrual.NewBalance.Sub(previous),
		TransactionType:  domain.SavingsInterest,
		ValueDate:        day,
	})
	return nil
}

func (f *fakeSavingsStore) SettleSavingsAccount(_ context.Context, s domain.Settlement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[s.SavingsAccountID]
	if !ok {
		return apperrors.ErrSavingsAccountNotFound
	}
	if !a.IsActive() {
		return apperrors.ErrAlreadySettled
	}
	if !a.CurrentBalance.Equal(s.Amount) {
		return apperrors.ErrBalanceChanged
	}
	balance, ok := f.payments[s.PaymentAccountID]
	if !ok {
		return apperrors.ErrPaymentAccountNotFound
	}
	day := s.SettlementDate
	f.payments[s.PaymentAccountID] = balance.Add(s.Amount)
	a.Status = domain.SavingsClosed
	a.ClosedAt = &day
	f.accounts[a.SavingsAccountID] = a
	f.transactions = append(f.transactions, domain.Transaction{
		TransactionID:    s.TransactionID,
		SavingsAccountID: a.SavingsAccountID,
		PaymentAccountID: s.PaymentAccountID,
		Amount:           s.Amount,
		TransactionType:  domain.SavingsSettlement,
		ValueDate:        day,
	})
	return nil
}

// fakeRateStore serves policies by ID.
type fakeRateStore struct {
	policies map[string]domain.InterestRatePolicy
}

func (f *fakeRateStore) FindInterestRatePolicyByID(_ context.Context, id string) (*domain.InterestRatePolicy, error) {
	p, ok := f.policies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRateStore) FindInterestRatePolicyByTerms(_ context.Context, termMonths int, rate, minBalance decimal.Decimal) (*domain.InterestRatePolicy, error) {
	want := domain.InterestRatePolicy{TermMonths: termMonths, AnnualRatePercent: rate, MinBalance: minBalance}
	for _, p := range f.policies {
		if p.SameTerms(want) {
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeRateStore) ListInterestRatePolicies(_ context.Context, _ int, _ int) ([]domain.InterestRatePolicy, error) {
	return nil, nil
}

// blockingRateStore holds lookups of blockID until release is closed.
type blockingRateStore struct {
	fakeRateStore
	blockID string
	release <-chan struct{}
}

func (b *blockingRateStore) FindInterestRatePolicyByID(ctx context.Context, id string) (*domain.InterestRatePolicy, error) {
	if id == b.blockID {
		select {
		case <-b.release:
		case <-time.After(2 * time.Second):
			return nil, errors.New("policy lookup held too long")
		}
	}
	return b.fakeRateStore.FindInterestRatePolicyByID(ctx, id)
}

// fakeRunStore keeps saved reports in order.
type fakeRunStore struct {
	mu   sync.Mutex
	runs []domain.SettlementReport
}

func (f *fakeRunStore) SaveSettlementRun(_ context.Context, report domain.SettlementReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, report)
	return nil
}

func (f *fakeRunStore) ListSettlementRuns(_ context.Context, _ int, _ int) ([]domain.SettlementReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SettlementReport(nil), f.runs...), nil
}

func (f *fakeSavingsStore) interestTransactions(accountID string) []domain.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Transaction
	for _, t := range f.transactions {
		if t.SavingsAccountID == accountID && t.TransactionType == domain.SavingsInterest {
			out = append(out, t)
		}
	}
	return out
}

// recordingObserver counts outcomes reported by a run.
type recordingObserver struct {
	mu       sync.Mutex
	outcomes map[domain.AccrualOutcome]int
	runs     int
}

func (o *recordingObserver) ObserveAccountOutcome(outcome domain.AccrualOutcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcomes == nil {
		o.outcomes = make(map[domain.AccrualOutcome]int)
	}
	o.outcomes[outcome]++
}

func (o *recordingObserver) ObserveRun(domain.SettlementReport, time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.runs++
}
