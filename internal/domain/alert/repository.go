package alert

import "context"

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	GetByAlertID(ctx context.Context, alertID string) (*Alert, error)
	// ListByUserID returns the newest alerts first, capped at limit.
	ListByUserID(ctx context.Context, userID string, limit int) ([]Alert, error)
	Save(ctx context.Context, a *Alert) error
}
