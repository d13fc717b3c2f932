package loan

import (
	"time"

	domain "peerlend/internal/domain/loan"
)

type CreateLoanInput struct {
	PrincipalAmount float64   `json:"principal_amount"`
	InterestRate    float64   `json:"interest_rate"`
	InterestType    string    `json:"interest_type"`
	DueDate         time.Time `json:"due_date"`
	DocumentImage   string    `json:"document_image,omitempty"`
}

type ApplyInput struct {
	LoanID        string
	BorrowerID    string
	AadhaarNumber string
	PANNumber     string
	DocumentImage string
}

type PaymentDTO struct {
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
}

type LoanDTO struct {
	LoanID          string       `json:"loan_id"`
	LenderID        string       `json:"lender_id"`
	BorrowerID      string       `json:"borrower_id,omitempty"`
	AadhaarNumber   string       `json:"aadhaar_number,omitempty"`
	PANNumber       string       `json:"pan_number,omitempty"`
	DocumentImage   string       `json:"document_image,omitempty"`
	PrincipalAmount float64      `json:"principal_amount"`
	InterestRate    float64      `json:"interest_rate"`
	InterestType    string       `json:"interest_type"`
	TotalRepayable  float64      `json:"total_repayable_amount"`
	AmountRepaid    float64      `json:"amount_repaid"`
	DueDate         time.Time    `json:"due_date"`
	Status          string       `json:"status"`
	Payments        []PaymentDTO `json:"payments"`
	CreatedAt       time.Time    `json:"created_at"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:          l.LoanID,
		LenderID:        l.LenderID,
		BorrowerID:      l.BorrowerID,
		AadhaarNumber:   l.AadhaarNumber,
		PANNumber:       l.PANNumber,
		DocumentImage:   l.DocumentImage,
		PrincipalAmount: l.PrincipalAmount,
		InterestRate:    l.InterestRate,
		InterestType:    string(l.InterestType),
		TotalRepayable:  l.TotalRepayable,
		AmountRepaid:    l.AmountRepaid,
		DueDate:         l.DueDate,
		Status:          string(l.Status),
		Payments:        make([]PaymentDTO, 0, len(l.Payments)),
		CreatedAt:       l.CreatedAt,
	}
	for _, p := range l.Payments {
		dto.Payments = append(dto.Payments, PaymentDTO{Amount: p.Amount, PaymentDate: p.PaymentDate})
	}
	return dto
}

func toDTOs(ls []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}
