package repository

import (
	"context"
	"errors"

	"github.com/minimalism94/notification-svc/internal/domain"
	"gorm.io/gorm"
)

type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Preference, error)
	Save(ctx context.Context, p *domain.Preference) error
}

type GormPreferenceRepo struct {
	db *gorm.DB
}

func NewGormPreferenceRepo(db *gorm.DB) *GormPreferenceRepo {
	return &GormPreferenceRepo{db: db}
}

func (r *GormPreferenceRepo) GetByUserID(ctx context.Context, userID string) (*domain.Preference, error) {
	var model PreferenceModel
	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return preferenceModelToDomain(&model), nil
}

// Save inserts a new preference or fully updates an existing one by primary
// key. Duplicate-preference races on first-time upserts are caught by the
// unique index on user_id, not by application locking.
func (r *GormPreferenceRepo) Save(ctx context.Context, p *domain.Preference) error {
	model := preferenceModelFromDomain(p)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	if p != nil {
		*p = *preferenceModelToDomain(model)
	}
	return nil
}
