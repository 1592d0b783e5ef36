package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of decimal places stored for balances.
const MinorUnitPlaces = 2

var hundred = decimal.NewFromInt(100)

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthsElapsed counts whole calendar months between two civil dates.
// A month completes when today reaches the opening day-of-month, or when today
// is the last day of a month too short to contain it (Jan 31 -> Feb 28).
func MonthsElapsed(openedAt, today time.Time) int {
	oy, om, od := openedAt.Date()
	ty, tm, td := today.Date()

	months := (ty-oy)*12 + int(tm-om)
	if td < od && td != daysInMonth(ty, tm) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// IsEndOfTerm reports whether the account has been open for at least the policy term.
// today must already be expressed in the settlement time zone.
func IsEndOfTerm(account domain.SavingsAccount, policy domain.InterestRatePolicy, today time.Time) bool {
	return MonthsElapsed(account.OpenedAt, today) >= policy.TermMonths
}

// DailyIncrement computes one day of interest at full precision:
// balance * rate / 100 / DaysInYear(year of today).
// The minimum balance of the policy does not gate accrual.
func DailyIncrement(account domain.SavingsAccount, policy domain.InterestRatePolicy, today time.Time) (decimal.Decimal, error) {
	if account.CurrentBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: account %s has negative balance %s",
			apperrors.ErrAccrualComputation, account.SavingsAccountID, account.CurrentBalance.String())
	}
	if !policy.AnnualRatePercent.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: policy %s has non-positive rate %s",
			apperrors.ErrAccrualComputation, policy.PolicyID, policy.AnnualRatePercent.String())
	}

	days := decimal.NewFromInt(int64(DaysInYear(today.Year())))
	return account.CurrentBalance.Mul(policy.AnnualRatePercent).Div(hundred).Div(days), nil
}

// ApplyIncrement adds a full-precision increment to a stored balance and
// rounds half-up to minor units. Rounding happens only here.
func ApplyIncrement(balance, increment decimal.Decimal) decimal.Decimal {
	return balance.Add(increment).Round(MinorUnitPlaces)
}
