package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	LenderID        string         `gorm:"size:32;column:lender_id"`
	BorrowerID      string         `gorm:"size:32;column:borrower_id"`
	AadhaarNumber   string         `gorm:"size:12;column:aadhaar_number"`
	PANNumber       string         `gorm:"size:10;column:pan_number"`
	DocumentImage   string         `gorm:"type:text;column:document_image"`
	PrincipalAmount float64        `gorm:"column:principal_amount"`
	InterestRate    float64        `gorm:"column:interest_rate"`
	InterestType    string         `gorm:"type:text;column:interest_type"` // ← no enum
	TotalRepayable  float64        `gorm:"column:total_repayable"`
	AmountRepaid    float64        `gorm:"column:amount_repaid"`
	DueDate         time.Time      `gorm:"column:due_date"`
	Status          string         `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy       string         `gorm:"size:32;column:deleted_by"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	LoanID      uint64    `gorm:"column:loan_id;index"`
	Amount      float64   `gorm:"column:amount"`
	PaymentDate time.Time `gorm:"column:payment_date"`
}

func (paymentSQLite) TableName() string { return "payments" }

type userSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	UserID       string         `gorm:"size:32;column:user_id"`
	Name         string         `gorm:"column:name"`
	Email        *string        `gorm:"column:email;uniqueIndex"`
	Phone        *string        `gorm:"column:phone;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash"`
	Role         string         `gorm:"type:text;column:role"` // ← no enum
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type alertSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	AlertID   string    `gorm:"size:32;column:alert_id"`
	UserID    string    `gorm:"size:32;column:user_id"`
	LoanID    string    `gorm:"size:32;column:loan_id"`
	Type      string    `gorm:"type:text;column:type"` // ← no enum
	Message   string    `gorm:"type:text;column:message"`
	Read      bool      `gorm:"column:read"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (alertSQLite) TableName() string { return "alerts" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &paymentSQLite{}, &userSQLite{}, &alertSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
