package alert

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("alert not found")
	ErrNotRecipient = errors.New("alert belongs to another user")
)

type Type string

const (
	TypeLoanCreated     Type = "loan_created"
	TypeLoanUpdated     Type = "loan_updated"
	TypePaymentReceived Type = "payment_received"
	TypeLoanCompleted   Type = "loan_completed"
	TypeLoanDefaulted   Type = "loan_defaulted"
	TypeLoanApplied     Type = "loan_applied"
)

// Alert is a persisted in-app notification. Rows are never deleted; the
// recipient only flips the read flag.
type Alert struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	AlertID   string    `gorm:"size:32;uniqueIndex:ux_alerts_alert_id" json:"alert_id"`
	UserID    string    `gorm:"size:32;not null;index:idx_alerts_user" json:"user_id"`
	LoanID    string    `gorm:"size:32;not null;index:idx_alerts_loan" json:"loan_id"`
	Type      Type      `gorm:"type:enum('loan_created','loan_updated','payment_received','loan_completed','loan_defaulted','loan_applied')" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Alert) TableName() string { return "alerts" }
