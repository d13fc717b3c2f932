package alert

import (
	"context"
	"errors"
	"log"
	"time"

	domain "peerlend/internal/domain/alert"
	"peerlend/pkg/id"

	"gorm.io/gorm"
)

const listLimit = 50

type Usecase struct{ alerts domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{alerts: r} }

type AlertDTO struct {
	AlertID   string    `json:"alert_id"`
	UserID    string    `json:"user_id"`
	LoanID    string    `json:"loan_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Notify appends an alert. Failures are logged and dropped: notification
// delivery must never fail the ledger mutation that triggered it.
func (u *Usecase) Notify(ctx context.Context, userID, loanID string, typ domain.Type, message string) {
	a := &domain.Alert{
		AlertID: id.NewID32(),
		UserID:  userID,
		LoanID:  loanID,
		Type:    typ,
		Message: message,
	}
	if err := u.alerts.Create(ctx, a); err != nil {
		log.Printf("alert: create failed (user=%s loan=%s type=%s): %v", userID, loanID, typ, err)
	}
}

func (u *Usecase) ListFor(ctx context.Context, userID string) ([]AlertDTO, error) {
	as, err := u.alerts.ListByUserID(ctx, userID, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]AlertDTO, 0, len(as))
	for i := range as {
		out = append(out, toDTO(&as[i]))
	}
	return out, nil
}

// MarkRead flips the read flag for the recipient. Already-read alerts are a
// no-op success.
func (u *Usecase) MarkRead(ctx context.Context, alertID, callerID string) (*AlertDTO, error) {
	a, err := u.alerts.GetByAlertID(ctx, alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if a.UserID != callerID {
		return nil, domain.ErrNotRecipient
	}
	if !a.Read {
		a.Read = true
		if err := u.alerts.Save(ctx, a); err != nil {
			return nil, err
		}
	}
	dto := toDTO(a)
	return &dto, nil
}

func toDTO(a *domain.Alert) AlertDTO {
	return AlertDTO{
		AlertID:   a.AlertID,
		UserID:    a.UserID,
		LoanID:    a.LoanID,
		Type:      string(a.Type),
		Message:   a.Message,
		Read:      a.Read,
		CreatedAt: a.CreatedAt,
	}
}
