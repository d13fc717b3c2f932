package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
)

func (r Role) Valid() bool { return r == RoleLender || r == RoleBorrower }

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateIdentity = errors.New("user already exists with this email or phone")
)

// Email and Phone are pointers so that unset identities stay NULL and do not
// collide on the unique indexes. At least one of the two must be present.
type User struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID       string         `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name         string         `gorm:"size:255" json:"name"`
	Email        *string        `gorm:"size:255;uniqueIndex:ux_users_email" json:"email,omitempty"`
	Phone        *string        `gorm:"size:32;uniqueIndex:ux_users_phone" json:"phone,omitempty"`
	PasswordHash string         `gorm:"size:72" json:"-"`
	Role         Role           `gorm:"type:enum('lender','borrower')" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
