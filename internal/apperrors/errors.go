package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("resource state conflict")

// Interest rate policy errors.
var (
	ErrInvalidTerm       = fmt.Errorf("%w: term must be between 1 and 99 months", ErrValidation)
	ErrInvalidRate       = fmt.Errorf("%w: annual rate must be greater than 0 and at most 99 percent", ErrValidation)
	ErrInvalidMinBalance = fmt.Errorf("%w: minimum balance must be greater than 100000 and at most 999999999", ErrValidation)
	ErrPolicyNotFound    = fmt.Errorf("%w: interest rate policy", ErrNotFound)
	ErrPolicyDuplicate   = fmt.Errorf("%w: interest rate policy with the same term, rate and minimum balance", ErrDuplicate)
	ErrPolicyInUse       = fmt.Errorf("%w: interest rate policy is referenced by savings accounts", ErrConflict)
)

// Savings settlement errors.
var (
	ErrSavingsAccountNotFound = fmt.Errorf("%w: savings account", ErrNotFound)
	ErrPaymentAccountNotFound = fmt.Errorf("%w: linked payment account", ErrNotFound)
	ErrAlreadySettled         = fmt.Errorf("%w: savings account is not active", ErrConflict)
	ErrAlreadyAccrued         = fmt.Errorf("%w: interest already accrued for this date", ErrConflict)
	ErrTermEnded              = fmt.Errorf("%w: savings account reached end of term and must be settled", ErrConflict)
	ErrBalanceChanged         = fmt.Errorf("%w: savings balance changed since it was read", ErrConflict)
	ErrSettlementFailure      = errors.New("savings settlement failed")
	// ErrAccrualComputation signals broken invariants in the accrual math.
	ErrAccrualComputation = errors.New("unexpected accrual computation state")
)

// AppError carries an HTTP status alongside an infrastructure failure.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
