package loanmock

import (
	"context"
	"errors"

	domain "peerlend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	AddPaymentFn           func(ctx context.Context, p *domain.Payment) error
	ListByPartyFn          func(ctx context.Context, userID string) ([]domain.Loan, error)
	ListUnassignedFn       func(ctx context.Context) ([]domain.Loan, error)
	SoftDeleteFn           func(ctx context.Context, l *domain.Loan, deletedBy string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) AddPayment(ctx context.Context, p *domain.Payment) error {
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByParty(ctx context.Context, userID string) ([]domain.Loan, error) {
	if m.ListByPartyFn != nil {
		return m.ListByPartyFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListUnassigned(ctx context.Context) ([]domain.Loan, error) {
	if m.ListUnassignedFn != nil {
		return m.ListUnassignedFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) SoftDelete(ctx context.Context, l *domain.Loan, deletedBy string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, l, deletedBy)
	}
	return nil
}
