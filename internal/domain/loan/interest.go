package loan

import (
	"math"
	"time"
)

// DaysUntil is the day count used for interest accrual: the remaining
// duration from now to due, rounded up to whole days.
func DaysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// TotalRepayable computes the repayable amount for the given terms.
//
//	simple:   p + p*rate*days/36500
//	compound: p * (1 + rate/36500)^days   (daily compounding)
//
// rate is the annual rate in percent. days must be positive.
func TotalRepayable(principal, rate float64, typ InterestType, days int) (float64, error) {
	if days <= 0 {
		return 0, ErrInvalidTerms
	}
	if principal <= 0 || rate < 0 || math.IsNaN(principal) || math.IsNaN(rate) {
		return 0, ErrInvalidTerms
	}
	switch typ {
	case InterestSimple:
		return principal + principal*rate*float64(days)/36500, nil
	case InterestCompound:
		return principal * math.Pow(1+rate/36500, float64(days)), nil
	}
	return 0, ErrInvalidTerms
}
