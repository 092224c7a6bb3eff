// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
	"github.com/docuintelli/backend/internal/integration/persistence/model"
)

// manualActivityRepository implements the adapter.ManualActivityRepository interface.
type manualActivityRepository struct {
	db *gorm.DB
}

// NewManualActivityRepository creates a new manual activity repository instance.
func NewManualActivityRepository(db *gorm.DB) adapter.ManualActivityRepository {
	return &manualActivityRepository{
		db: db,
	}
}

// Create creates a new manual activity in the database.
func (r *manualActivityRepository) Create(ctx context.Context, activity *entity.ManualActivity) error {
	return r.db.WithContext(ctx).Create(model.ManualActivityFromEntity(activity)).Error
}

// FindByGoalIDs retrieves all manual activities for the given goals.
func (r *manualActivityRepository) FindByGoalIDs(ctx context.Context, goalIDs []uuid.UUID) ([]*entity.ManualActivity, error) {
	if len(goalIDs) == 0 {
		return []*entity.ManualActivity{}, nil
	}

	var activityModels []model.ManualActivityModel
	result := r.db.WithContext(ctx).
		Where("goal_id IN ?", goalIDs).
		Order("activity_date ASC").
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.ManualActivity, len(activityModels))
	for i, am := range activityModels {
		activities[i] = am.ToEntity()
	}
	return activities, nil
}

// DeleteByGoalID removes all manual activities for a goal.
func (r *manualActivityRepository) DeleteByGoalID(ctx context.Context, goalID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Delete(&model.ManualActivityModel{}).Error
}
