package services

import (
	"context"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/SscSPs/online_banking_backend/internal/dto"
)

// InterestRateReaderSvc defines read operations for interest rate policies
type InterestRateReaderSvc interface {
	// GetInterestRatePolicy retrieves a specific policy by its ID.
	GetInterestRatePolicy(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error)

	// ListInterestRatePolicies retrieves a page of policies.
	ListInterestRatePolicies(ctx context.Context, limit int, offset int) ([]domain.InterestRatePolicy, error)
}

// InterestRateWriterSvc defines administrative write operations for interest rate policies
type InterestRateWriterSvc interface {
	// CreateInterestRatePolicy validates and persists a new policy.
	CreateInterestRatePolicy(ctx context.Context, req dto.CreateInterestRatePolicyRequest, creatorUserID string) (*domain.InterestRatePolicy, error)

	// UpdateInterestRatePolicy re-validates and replaces the terms of an existing policy.
	UpdateInterestRatePolicy(ctx context.Context, policyID string, req dto.UpdateInterestRatePolicyRequest, userID string) (*domain.InterestRatePolicy, error)

	// DeleteInterestRatePolicy removes a policy that no savings account references.
	DeleteInterestRatePolicy(ctx context.Context, policyID string, userID string) error
}

// InterestRateSvcFacade combines all interest rate service interfaces
type InterestRateSvcFacade interface {
	InterestRateReaderSvc
	InterestRateWriterSvc
}
