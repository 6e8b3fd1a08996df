package repository

import (
	"context"

	"gorm.io/gorm"

	"policyhub/internal/model"
)

// ActivityRepository defines the append-only audit trail operations.
// There is deliberately no update or delete.
type ActivityRepository interface {
	Append(ctx context.Context, activity *model.Activity) error
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Append stores one audit line.
func (r *activityRepository) Append(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// Recent lists the latest audit lines, newest first, truncated to limit.
func (r *activityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
