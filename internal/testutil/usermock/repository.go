package usermock

import (
	"context"
	"errors"

	domain "peerlend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: not implemented")

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	GetByIdentifierFn func(ctx context.Context, identifier string) (*domain.User, error)
	ListByRoleFn      func(ctx context.Context, role domain.Role) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if m.GetByIdentifierFn != nil {
		return m.GetByIdentifierFn(ctx, identifier)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}
