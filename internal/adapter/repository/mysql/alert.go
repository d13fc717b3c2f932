package mysql

import (
	"context"

	alertDomain "peerlend/internal/domain/alert"

	"gorm.io/gorm"
)

type AlertRepository struct{ db *gorm.DB }

func NewAlertRepository(db *gorm.DB) *AlertRepository { return &AlertRepository{db: db} }

func (r *AlertRepository) Create(ctx context.Context, a *alertDomain.Alert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AlertRepository) GetByAlertID(ctx context.Context, alertID string) (*alertDomain.Alert, error) {
	var out alertDomain.Alert
	res := r.db.WithContext(ctx).Where("alert_id = ?", alertID).First(&out)
	return &out, res.Error
}

func (r *AlertRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]alertDomain.Alert, error) {
	var out []alertDomain.Alert
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *AlertRepository) Save(ctx context.Context, a *alertDomain.Alert) error {
	return r.db.WithContext(ctx).Save(a).Error
}
