package alertmock

import (
	"context"
	"errors"

	domain "peerlend/internal/domain/alert"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("alertmock: not implemented")

// Repo is a function-backed mock that satisfies alert.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, a *domain.Alert) error
	GetByAlertIDFn func(ctx context.Context, alertID string) (*domain.Alert, error)
	ListByUserIDFn func(ctx context.Context, userID string, limit int) ([]domain.Alert, error)
	SaveFn         func(ctx context.Context, a *domain.Alert) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Alert) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAlertID(ctx context.Context, alertID string) (*domain.Alert, error) {
	if m.GetByAlertIDFn != nil {
		return m.GetByAlertIDFn(ctx, alertID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.Alert, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, limit)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Alert) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
