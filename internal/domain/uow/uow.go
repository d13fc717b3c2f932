package uow

import (
	"context"

	"peerlend/internal/domain/alert"
	"peerlend/internal/domain/loan"
	"peerlend/internal/domain/user"
)

type Repos struct {
	Users  user.Repository
	Loans  loan.Repository
	Alerts alert.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
