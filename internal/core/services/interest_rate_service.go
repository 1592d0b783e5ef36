package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// interestRateService implements the InterestRateSvcFacade interface
type interestRateService struct {
	BaseService
	rateRepo    portsrepo.InterestRateRepositoryFacade
	savingsRepo portsrepo.SavingsAccountReader
	now         func() time.Time
}

// InterestRateOption is a functional option for configuring the interest rate service
type InterestRateOption func(*interestRateService)

// WithInterestRateClock overrides the clock used for audit timestamps.
func WithInterestRateClock(now func() time.Time) InterestRateOption {
	return func(s *interestRateService) {
		s.now = now
	}
}

// NewInterestRateService creates a new interest rate service.
// savingsRepo is used to refuse deleting policies that accounts still reference.
func NewInterestRateService(rateRepo portsrepo.InterestRateRepositoryFacade, savingsRepo portsrepo.SavingsAccountReader, options ...InterestRateOption) portssvc.InterestRateSvcFacade {
	svc := &interestRateService{
		rateRepo:    rateRepo,
		savingsRepo: savingsRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InterestRateSvcFacade = (*interestRateService)(nil)

func (s *interestRateService) CreateInterestRatePolicy(ctx context.Context, req dto.CreateInterestRatePolicyRequest, creatorUserID string) (*domain.InterestRatePolicy, error) {
	if err := domain.ValidateInterestRatePolicy(req.TermMonths, req.AnnualRatePercent, req.MinBalance); err != nil {
		s.LogDebug(ctx, "Interest rate policy rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.ensureUniqueTerms(ctx, "", req.TermMonths, req.AnnualRatePercent, req.MinBalance); err != nil {
		return nil, err
	}

	now := s.now()
	policy := domain.InterestRatePolicy{
		PolicyID:          uuid.NewString(),
		TermMonths:        req.TermMonths,
		AnnualRatePercent: req.AnnualRatePercent,
		MinBalance:        req.MinBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveInterestRatePolicy(ctx, policy); err != nil {
		s.LogError(ctx, err, "Failed to save interest rate policy", slog.String("policy_id", policy.PolicyID))
		return nil, err
	}

	s.LogInfo(ctx, "Interest rate policy created",
		slog.String("policy_id", policy.PolicyID),
		slog.Int("term_months", policy.TermMonths),
		slog.String("annual_rate_percent", policy.AnnualRatePercent.String()))
	return &policy, nil
}

func (s *interestRateService) GetInterestRatePolicy(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error) {
	policy, err := s.rateRepo.FindInterestRatePolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		s.LogError(ctx, err, "Failed to get interest rate policy", slog.String("policy_id", policyID))
		return nil, err
	}
	return policy, nil
}

func (s *interestRateService) ListInterestRatePolicies(ctx context.Context, limit int, offset int) ([]domain.InterestRatePolicy, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	policies, err := s.rateRepo.ListInterestRatePolicies(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list interest rate policies")
		return nil, err
	}
	if policies == nil {
		return []domain.InterestRatePolicy{}, nil
	}
	return policies, nil
}

func (s *interestRateService) UpdateInterestRatePolicy(ctx context.Context, policyID string, req dto.UpdateInterestRatePolicyRequest, userID string) (*domain.InterestRatePolicy, error) {
	policy, err := s.GetInterestRatePolicy(ctx, policyID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateInterestRatePolicy(req.TermMonths, req.AnnualRatePercent, req.MinBalance); err != nil {
		s.LogDebug(ctx, "Interest rate policy update rejected",
			slog.String("policy_id", policyID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	candidate := domain.InterestRatePolicy{
		TermMonths:        req.TermMonths,
		AnnualRatePercent: req.AnnualRatePercent,
		MinBalance:        req.MinBalance,
	}
	if !policy.SameTerms(candidate) {
		if err := s.ensureUniqueTerms(ctx, policyID, req.TermMonths, req.AnnualRatePercent, req.MinBalance); err != nil {
			return nil, err
		}
	}

	policy.TermMonths = req.TermMonths
	policy.AnnualRatePercent = req.AnnualRatePercent
	policy.MinBalance = req.MinBalance
	policy.LastUpdatedAt = s.now()
	policy.LastUpdatedBy = userID

	if err := s.rateRepo.UpdateInterestRatePolicy(ctx, *policy); err != nil {
		s.LogError(ctx, err, "Failed to update interest rate policy", slog.String("policy_id", policyID))
		return nil, err
	}

	s.LogInfo(ctx, "Interest rate policy updated", slog.String("policy_id", policyID))
	return policy, nil
}

func (s *interestRateService) DeleteInterestRatePolicy(ctx context.Context, policyID string, userID string) error {
	if _, err := s.GetInterestRatePolicy(ctx, policyID); err != nil {
		return err
	}

	count, err := s.savingsRepo.CountSavingsAccountsByPolicy(ctx, policyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count savings accounts for policy", slog.String("policy_id", policyID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d account(s)", apperrors.ErrPolicyInUse, count)
	}

	if err := s.rateRepo.DeleteInterestRatePolicy(ctx, policyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrPolicyNotFound
		}
		s.LogError(ctx, err, "Failed to delete interest rate policy", slog.String("policy_id", policyID))
		return err
	}

	s.LogInfo(ctx, "Interest rate policy deleted",
		slog.String("policy_id", policyID),
		slog.String("user_id", userID))
	return nil
}

// ensureUniqueTerms fails when another policy already has these exact terms.
func (s *interestRateService) ensureUniqueTerms(ctx context.Context, selfID string, termMonths int, rate, minBalance decimal.Decimal) error {
	existing, err := s.rateRepo.FindInterestRatePolicyByTerms(ctx, termMonths, rate, minBalance)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to look up interest rate policy by terms")
		return err
	}
	if existing != nil && existing.PolicyID != selfID {
		return apperrors.ErrPolicyDuplicate
	}
	return nil
}
