package mysql

import (
	"context"

	userDomain "peerlend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListByRole(ctx context.Context, role userDomain.Role) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Where("role = ?", role).Find(&out)
	return out, res.Error
}
