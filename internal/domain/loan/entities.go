package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusDefaulted:
		return true
	}
	return false
}

// CanTransitionTo enforces the lifecycle: pending → active → {completed,
// defaulted}. completed and defaulted are terminal. Re-entering pending on a
// borrower application is handled by Apply, not here.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusActive
	case StatusActive:
		return next == StatusCompleted || next == StatusDefaulted
	}
	return false
}

type InterestType string

const (
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

func (t InterestType) Valid() bool { return t == InterestSimple || t == InterestCompound }

// Payment is an append-only child row of a loan.
type Payment struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID      uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	Amount      float64   `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentDate time.Time `gorm:"column:payment_date" json:"payment_date"`
}

func (Payment) TableName() string { return "payments" }

// BorrowerID stays empty while the loan is an open marketplace offer; it is
// set exactly once when a borrower applies. AmountRepaid is a monotonically
// non-decreasing accumulator kept in sync with the payments rows.
type Loan struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	LenderID        string         `gorm:"size:32;not null;index:idx_loans_lender" json:"lender_id"`
	BorrowerID      string         `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id,omitempty"`
	AadhaarNumber   string         `gorm:"size:12" json:"aadhaar_number,omitempty"`
	PANNumber       string         `gorm:"size:10" json:"pan_number,omitempty"`
	DocumentImage   string         `gorm:"type:text" json:"document_image,omitempty"`
	PrincipalAmount float64        `gorm:"type:decimal(18,2)" json:"principal_amount"`
	InterestRate    float64        `gorm:"type:decimal(6,2)" json:"interest_rate"`
	InterestType    InterestType   `gorm:"type:enum('simple','compound');default:'simple'" json:"interest_type"`
	TotalRepayable  float64        `gorm:"type:decimal(18,2)" json:"total_repayable_amount"`
	AmountRepaid    float64        `gorm:"type:decimal(18,2);default:0" json:"amount_repaid"`
	DueDate         time.Time      `gorm:"column:due_date" json:"due_date"`
	Status          Status         `gorm:"type:enum('pending','active','completed','defaulted');default:'pending'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at" json:"status_updated_at"`
	Payments        []Payment      `gorm:"foreignKey:LoanID;references:ID" json:"payments"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy       string         `gorm:"size:32" json:"-"`
}

func (Loan) TableName() string { return "loans" }
