// Package calculator holds the stateless loan calculators: EMI, borrower
// eligibility, and the heuristic credit-score analog. Nothing here touches
// storage.
package calculator

import (
	"errors"
	"math"
)

var ErrInvalidInput = errors.New("invalid calculator input")

type EMIInput struct {
	Principal    float64 `json:"principal" validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"required,gt=0"` // annual percent
	TenureMonths int     `json:"tenure_months" validate:"required,gt=0"`
}

type EMIResult struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// EMI computes the equated monthly installment:
//
//	emi = P × r × (1 + r)^n / ((1 + r)^n − 1), r = annual/12/100
//
// Results are rounded to whole rupees.
func EMI(in EMIInput) (*EMIResult, error) {
	if in.Principal <= 0 || in.InterestRate <= 0 || in.TenureMonths <= 0 {
		return nil, ErrInvalidInput
	}
	r := in.InterestRate / 12 / 100
	n := float64(in.TenureMonths)
	factor := math.Pow(1+r, n)
	emi := in.Principal * r * factor / (factor - 1)
	total := emi * n
	return &EMIResult{
		EMI:           math.Round(emi),
		TotalPayment:  math.Round(total),
		TotalInterest: math.Round(total - in.Principal),
	}, nil
}

type EligibilityInput struct {
	Age           int     `json:"age" validate:"required,gt=0"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0"`
	LoanAmount    float64 `json:"loan_amount" validate:"required,gt=0"`
	InterestRate  float64 `json:"interest_rate" validate:"required,gt=0"`
	TenureMonths  int     `json:"tenure_months" validate:"required,gt=0"`
	ExistingEMI   float64 `json:"existing_emi" validate:"gte=0"`
}

type EligibilityResult struct {
	Eligible      bool     `json:"eligible"`
	Reasons       []string `json:"reasons,omitempty"`
	MaxLoanAmount float64  `json:"max_loan_amount,omitempty"`
	SuggestedEMI  float64  `json:"suggested_emi,omitempty"`
}

const (
	minAge           = 18
	maxAge           = 60
	minMonthlyIncome = 10000
	maxDTIRatio      = 0.40
)

// Eligibility applies the marketplace's screening rules: age band, income
// floor, and a debt-to-income cap of 40% including existing EMIs. When the
// requested amount fails the DTI check, the maximum affordable loan is derived
// from the remaining EMI headroom via the inverse annuity formula.
func Eligibility(in EligibilityInput) (*EligibilityResult, error) {
	if in.MonthlyIncome <= 0 || in.LoanAmount <= 0 || in.InterestRate <= 0 || in.TenureMonths <= 0 {
		return nil, ErrInvalidInput
	}

	res := &EligibilityResult{Eligible: true}

	if in.Age < minAge || in.Age > maxAge {
		res.Eligible = false
		res.Reasons = append(res.Reasons, "Age must be between 18 and 60 years")
	}
	if in.MonthlyIncome < minMonthlyIncome {
		res.Eligible = false
		res.Reasons = append(res.Reasons, "Monthly income must be at least ₹10,000")
	}

	emi, err := EMI(EMIInput{Principal: in.LoanAmount, InterestRate: in.InterestRate, TenureMonths: in.TenureMonths})
	if err != nil {
		return nil, err
	}
	if in.ExistingEMI+emi.EMI > maxDTIRatio*in.MonthlyIncome {
		res.Eligible = false
		res.Reasons = append(res.Reasons, "Total EMI exceeds 40% of monthly income")
	}

	if availableEMI := maxDTIRatio*in.MonthlyIncome - in.ExistingEMI; availableEMI > 0 {
		r := in.InterestRate / 12 / 100
		n := float64(in.TenureMonths)
		factor := math.Pow(1+r, n)
		res.MaxLoanAmount = math.Round(availableEMI * (factor - 1) / (r * factor))
		res.SuggestedEMI = math.Round(availableEMI)
	}

	return res, nil
}

type CreditScoreInput struct {
	MonthlyIncome    float64 `json:"monthly_income" validate:"required,gt=0"`
	CardUsage        string  `json:"card_usage" validate:"required,oneof=low moderate high"`
	RepaymentHistory string  `json:"repayment_history" validate:"required,oneof=good average poor"`
	ExistingLoans    int     `json:"existing_loans" validate:"gte=0"`
	CreditAgeYears   int     `json:"credit_age_years" validate:"gte=0"`
}

// CreditScore is a heuristic CIBIL-style score in [300, 900]. It is not a
// bureau integration; the bands mirror the marketplace's advisory widget.
func CreditScore(in CreditScoreInput) (int, error) {
	if in.MonthlyIncome <= 0 {
		return 0, ErrInvalidInput
	}

	score := 300

	switch {
	case in.MonthlyIncome >= 50000:
		score += 100
	case in.MonthlyIncome >= 30000:
		score += 50
	case in.MonthlyIncome >= 15000:
		score += 25
	}

	switch in.CardUsage {
	case "low":
		score += 150
	case "moderate":
		score += 75
	case "high":
		score -= 100
	default:
		return 0, ErrInvalidInput
	}

	switch in.RepaymentHistory {
	case "good":
		score += 200
	case "average":
		score += 100
	case "poor":
		score -= 50
	default:
		return 0, ErrInvalidInput
	}

	switch {
	case in.ExistingLoans == 0:
		score += 100
	case in.ExistingLoans == 1:
		score += 50
	default:
		score -= 50
	}

	switch {
	case in.CreditAgeYears >= 5:
		score += 100
	case in.CreditAgeYears >= 3:
		score += 50
	case in.CreditAgeYears >= 1:
		score += 25
	}

	if score < 300 {
		score = 300
	}
	if score > 900 {
		score = 900
	}
	return score, nil
}
