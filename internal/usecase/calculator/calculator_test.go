package calculator

import (
	"errors"
	"testing"
)

func TestEMI(t *testing.T) {
	res, err := EMI(EMIInput{Principal: 100000, InterestRate: 12, TenureMonths: 12})
	if err != nil {
		t.Fatalf("EMI: %v", err)
	}
	// Standard annuity result for 1L @ 12% over 12 months.
	if res.EMI != 8885 {
		t.Fatalf("emi = %v, want 8885", res.EMI)
	}
	if res.TotalPayment != res.EMI*12 && res.TotalPayment != 106619 {
		t.Fatalf("total = %v", res.TotalPayment)
	}
	if res.TotalInterest != res.TotalPayment-100000 {
		t.Fatalf("interest = %v, want total minus principal", res.TotalInterest)
	}
}

func TestEMIInvalid(t *testing.T) {
	tests := []EMIInput{
		{Principal: 0, InterestRate: 12, TenureMonths: 12},
		{Principal: 100000, InterestRate: 0, TenureMonths: 12},
		{Principal: 100000, InterestRate: 12, TenureMonths: 0},
		{Principal: -1, InterestRate: 12, TenureMonths: 12},
	}
	for _, in := range tests {
		if _, err := EMI(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("EMI(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestEligibilityPass(t *testing.T) {
	res, err := Eligibility(EligibilityInput{
		Age:           30,
		MonthlyIncome: 60000,
		LoanAmount:    200000,
		InterestRate:  12,
		TenureMonths:  24,
	})
	if err != nil {
		t.Fatalf("Eligibility: %v", err)
	}
	if !res.Eligible {
		t.Fatalf("should be eligible, reasons: %v", res.Reasons)
	}
	if res.MaxLoanAmount <= 0 {
		t.Fatal("headroom should yield a positive max loan amount")
	}
}

func TestEligibilityRejections(t *testing.T) {
	base := EligibilityInput{
		Age:           30,
		MonthlyIncome: 60000,
		LoanAmount:    200000,
		InterestRate:  12,
		TenureMonths:  24,
	}

	t.Run("under age", func(t *testing.T) {
		in := base
		in.Age = 17
		res, err := Eligibility(in)
		if err != nil {
			t.Fatal(err)
		}
		if res.Eligible {
			t.Fatal("17 year old should not be eligible")
		}
	})

	t.Run("over age", func(t *testing.T) {
		in := base
		in.Age = 61
		res, err := Eligibility(in)
		if err != nil {
			t.Fatal(err)
		}
		if res.Eligible {
			t.Fatal("61 year old should not be eligible")
		}
	})

	t.Run("income floor", func(t *testing.T) {
		in := base
		in.MonthlyIncome = 9999
		res, err := Eligibility(in)
		if err != nil {
			t.Fatal(err)
		}
		if res.Eligible {
			t.Fatal("income below floor should not be eligible")
		}
	})

	t.Run("dti cap", func(t *testing.T) {
		in := base
		in.ExistingEMI = 23000
		res, err := Eligibility(in)
		if err != nil {
			t.Fatal(err)
		}
		if res.Eligible {
			t.Fatal("existing EMI above 40% of income should fail the DTI check")
		}
	})
}

func TestEligibilityInvalidInput(t *testing.T) {
	if _, err := Eligibility(EligibilityInput{Age: 30}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreditScore(t *testing.T) {
	tests := []struct {
		name string
		in   CreditScoreInput
		want int
	}{
		{
			"best profile caps at 900",
			CreditScoreInput{MonthlyIncome: 80000, CardUsage: "low", RepaymentHistory: "good", ExistingLoans: 0, CreditAgeYears: 10},
			900,
		},
		{
			"worst profile floors at 300",
			CreditScoreInput{MonthlyIncome: 5000, CardUsage: "high", RepaymentHistory: "poor", ExistingLoans: 4, CreditAgeYears: 0},
			300,
		},
		{
			"middling profile",
			CreditScoreInput{MonthlyIncome: 30000, CardUsage: "moderate", RepaymentHistory: "average", ExistingLoans: 1, CreditAgeYears: 3},
			625,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreditScore(tt.in)
			if err != nil {
				t.Fatalf("CreditScore: %v", err)
			}
			if got != tt.want {
				t.Fatalf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCreditScoreInvalid(t *testing.T) {
	tests := []CreditScoreInput{
		{MonthlyIncome: 0, CardUsage: "low", RepaymentHistory: "good"},
		{MonthlyIncome: 30000, CardUsage: "maxed", RepaymentHistory: "good"},
		{MonthlyIncome: 30000, CardUsage: "low", RepaymentHistory: "spotty"},
	}
	for _, in := range tests {
		if _, err := CreditScore(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CreditScore(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}
