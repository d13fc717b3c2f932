package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByIdentifier looks a user up by email or phone.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
