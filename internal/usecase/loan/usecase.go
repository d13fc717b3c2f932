package loan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"peerlend/internal/domain/alert"
	domain "peerlend/internal/domain/loan"
	"peerlend/internal/domain/user"
	"peerlend/internal/domain/uow"
	"peerlend/pkg/id"

	"gorm.io/gorm"
)

// Notifier appends in-app alerts. Delivery is best-effort: implementations
// must swallow their own errors so a failed alert never rolls back a ledger
// mutation.
type Notifier interface {
	Notify(ctx context.Context, userID, loanID string, typ alert.Type, message string)
}

type Usecase struct {
	loans    domain.Repository
	users    user.Repository
	uow      uow.UnitOfWork
	notifier Notifier
	now      func() time.Time
}

func NewUsecase(loans domain.Repository, users user.Repository, tx uow.UnitOfWork, n Notifier) *Usecase {
	return &Usecase{
		loans:    loans,
		users:    users,
		uow:      tx,
		notifier: n,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock used for interest day counts and payment
// timestamps. Tests use this to make accrual deterministic.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Create(ctx context.Context, lenderID string, in CreateLoanInput) (*LoanDTO, error) {
	typ := domain.InterestType(in.InterestType)
	if !typ.Valid() {
		return nil, domain.ErrInvalidTerms
	}
	now := u.now()
	days := domain.DaysUntil(now, in.DueDate)
	total, err := domain.TotalRepayable(in.PrincipalAmount, in.InterestRate, typ, days)
	if err != nil {
		return nil, err
	}

	l := &domain.Loan{
		LoanID:          id.NewID32(),
		LenderID:        lenderID,
		PrincipalAmount: in.PrincipalAmount,
		InterestRate:    in.InterestRate,
		InterestType:    typ,
		TotalRepayable:  math.Round(total*100) / 100,
		DueDate:         in.DueDate,
		DocumentImage:   in.DocumentImage,
		Status:          domain.StatusPending,
		StatusUpdatedAt: now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, lenderID, l.LoanID, alert.TypeLoanCreated,
		fmt.Sprintf("You have created a new loan of ₹%.2f", l.PrincipalAmount))
	u.announceToBorrowers(ctx, l)

	return toDTO(l), nil
}

// announceToBorrowers tells every borrower-role user about a fresh offer.
func (u *Usecase) announceToBorrowers(ctx context.Context, l *domain.Loan) {
	borrowers, err := u.users.ListByRole(ctx, user.RoleBorrower)
	if err != nil {
		return
	}
	msg := fmt.Sprintf("A new loan of ₹%.2f is available for application", l.PrincipalAmount)
	for _, b := range borrowers {
		u.notifier.Notify(ctx, b.UserID, l.LoanID, alert.TypeLoanCreated, msg)
	}
}

func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if !domain.ValidAadhaar(in.AadhaarNumber) {
		return nil, domain.ErrInvalidAadhaar
	}
	pan, err := domain.NormalizePAN(in.PANNumber)
	if err != nil {
		return nil, err
	}

	var updated *domain.Loan
	err = u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if l.BorrowerID != "" {
			return domain.ErrAlreadyAssigned
		}
		if l.LenderID == in.BorrowerID {
			return domain.ErrOwnLoan
		}
		l.BorrowerID = in.BorrowerID
		l.AadhaarNumber = in.AadhaarNumber
		l.PANNumber = pan
		l.DocumentImage = in.DocumentImage
		l.Status = domain.StatusPending
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Notify(ctx, updated.LenderID, updated.LoanID, alert.TypeLoanApplied,
		fmt.Sprintf("A borrower has applied for your loan of ₹%.2f", updated.PrincipalAmount))
	u.notifier.Notify(ctx, updated.BorrowerID, updated.LoanID, alert.TypeLoanApplied,
		fmt.Sprintf("You have successfully applied for the loan of ₹%.2f", updated.PrincipalAmount))

	return toDTO(updated), nil
}

// RecordPayment is the single payment entry point. The row lock taken by
// WithinLoanTx serializes concurrent submissions against the same loan, so the
// overpayment check always sees a fresh accumulator.
func (u *Usecase) RecordPayment(ctx context.Context, loanID string, amount float64) (*LoanDTO, error) {
	if math.IsNaN(amount) || amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var (
		updated   *domain.Loan
		completed bool
	)
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.AmountRepaid+amount > l.TotalRepayable {
			return domain.ErrOverpayment
		}
		p := &domain.Payment{LoanID: l.ID, Amount: amount, PaymentDate: u.now()}
		if err := r.Loans.AddPayment(ctx, p); err != nil {
			return err
		}
		l.AmountRepaid += amount
		l.Payments = append(l.Payments, *p)
		if l.AmountRepaid >= l.TotalRepayable && l.Status.CanTransitionTo(domain.StatusCompleted) {
			l.Status = domain.StatusCompleted
			l.StatusUpdatedAt = u.now()
			completed = true
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifier.Notify(ctx, updated.LenderID, updated.LoanID, alert.TypePaymentReceived,
		fmt.Sprintf("Payment of ₹%.2f received for loan", amount))
	if updated.BorrowerID != "" {
		u.notifier.Notify(ctx, updated.BorrowerID, updated.LoanID, alert.TypePaymentReceived,
			fmt.Sprintf("Your payment of ₹%.2f has been recorded", amount))
	}
	if completed {
		u.notifyStatus(ctx, updated, "Loan has been fully repaid")
	}

	return toDTO(updated), nil
}

var statusMessages = map[domain.Status]string{
	domain.StatusActive:    "Loan has been activated",
	domain.StatusCompleted: "Loan has been marked as completed",
	domain.StatusDefaulted: "Loan has been marked as defaulted",
}

func statusAlertType(s domain.Status) alert.Type {
	switch s {
	case domain.StatusCompleted:
		return alert.TypeLoanCompleted
	case domain.StatusDefaulted:
		return alert.TypeLoanDefaulted
	}
	return alert.TypeLoanUpdated
}

// UpdateStatus moves a loan along the lifecycle. Only the lender may do this,
// and only transitions allowed by the table are accepted.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID, callerID string, next domain.Status) (*LoanDTO, error) {
	if !next.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	var updated *domain.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.LenderID != callerID {
			return domain.ErrNotLender
		}
		if !l.Status.CanTransitionTo(next) {
			return domain.ErrInvalidTransition
		}
		l.Status = next
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	u.notifyStatus(ctx, updated, statusMessages[next])
	return toDTO(updated), nil
}

func (u *Usecase) notifyStatus(ctx context.Context, l *domain.Loan, msg string) {
	typ := statusAlertType(l.Status)
	u.notifier.Notify(ctx, l.LenderID, l.LoanID, typ, msg)
	if l.BorrowerID != "" {
		u.notifier.Notify(ctx, l.BorrowerID, l.LoanID, typ, msg)
	}
}

// Delete soft-deletes an unassigned loan. Only the owning lender may delete.
func (u *Usecase) Delete(ctx context.Context, loanID, requesterID string) error {
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.LenderID != requesterID {
			return domain.ErrNotLender
		}
		if l.BorrowerID != "" {
			return domain.ErrHasBorrower
		}
		return r.Loans.SoftDelete(ctx, l, requesterID)
	})
	return mapNotFound(err)
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toDTO(l), nil
}

func (u *Usecase) ListMine(ctx context.Context, userID string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByParty(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListUnassigned(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
