package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row (SELECT ... FOR UPDATE) so that
	// concurrent payment submissions serialize on the same loan.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	AddPayment(ctx context.Context, p *Payment) error
	// ListByParty returns loans where the user is lender or borrower.
	ListByParty(ctx context.Context, userID string) ([]Loan, error)
	ListUnassigned(ctx context.Context) ([]Loan, error)
	SoftDelete(ctx context.Context, l *Loan, deletedBy string) error
}
