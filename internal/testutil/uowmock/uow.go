package uowmock

import (
	"context"
	"errors"

	"peerlend/internal/domain/loan"
	"peerlend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: not implemented")

// UoW is a function-backed mock for uow.UnitOfWork. Tests commonly wire
// WithinLoanTxFn to look the loan up in a mock repo and run fn against it
// without any real transaction.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithWithinTx(fn func(ctx context.Context, fn func(r uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinLoanTx(fn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error) *UoW {
	m.WithinLoanTxFn = fn
	return m
}

func (m *UoW) Reset() *UoW {
	m.WithinTxFn = nil
	m.WithinLoanTxFn = nil
	return m
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

// Passthrough builds a UoW whose loan tx resolves the loan from the given
// repos and runs fn directly. Good enough for usecase tests that only need
// the locking callback shape, not isolation.
func Passthrough(r uow.Repos) *UoW {
	return New().WithWithinLoanTx(func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	}).WithWithinTx(func(ctx context.Context, fn func(r uow.Repos) error) error {
		return fn(r)
	})
}
