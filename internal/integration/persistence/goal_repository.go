// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
	"github.com/docuintelli/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal and its account links in one transaction.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.GoalFromEntity(goal)).Error; err != nil {
			return err
		}
		return replaceLinks(tx, goal.ID, goal.LinkedAccountIDs)
	})
}

// FindByID retrieves a goal by its ID, links included.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}

	goal := goalModel.ToEntity()
	links, err := r.FindLinkedAccountIDs(ctx, []uuid.UUID{goal.ID})
	if err != nil {
		return nil, err
	}
	goal.LinkedAccountIDs = links[goal.ID]
	return goal, nil
}

// FindByUserID retrieves all goals for a given user, links included.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.findGoals(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindActiveByUserID retrieves the user's active goals, links included.
func (r *goalRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.findGoals(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.GoalStatusActive)))
}

func (r *goalRepository) findGoals(ctx context.Context, query *gorm.DB) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	if err := query.Order("created_at DESC").Find(&goalModels).Error; err != nil {
		return nil, err
	}
	if len(goalModels) == 0 {
		return []*entity.Goal{}, nil
	}

	goalIDs := make([]uuid.UUID, len(goalModels))
	for i, gm := range goalModels {
		goalIDs[i] = gm.ID
	}
	links, err := r.FindLinkedAccountIDs(ctx, goalIDs)
	if err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
		goals[i].LinkedAccountIDs = links[gm.ID]
	}
	return goals, nil
}

// ExpireOverdue marks the user's active goals whose target date has passed as
// expired and returns them.
func (r *goalRepository) ExpireOverdue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND target_date IS NOT NULL AND target_date < ?",
			userID, string(entity.GoalStatusActive), now).
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(goalModels) == 0 {
		return []*entity.Goal{}, nil
	}

	goalIDs := make([]uuid.UUID, len(goalModels))
	for i, gm := range goalModels {
		goalIDs[i] = gm.ID
	}

	update := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id IN ?", goalIDs).
		Updates(map[string]interface{}{
			"status":     string(entity.GoalStatusExpired),
			"expired_at": now,
			"updated_at": now,
		})
	if update.Error != nil {
		return nil, update.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
		goals[i].Status = entity.GoalStatusExpired
		expiredAt := now
		goals[i].ExpiredAt = &expiredAt
		goals[i].UpdatedAt = now
	}
	return goals, nil
}

// Update updates a goal's user-editable fields and replaces its links.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.GoalFromEntity(goal)).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&model.GoalAccountLinkModel{}).Error; err != nil {
			return err
		}
		return replaceLinks(tx, goal.ID, goal.LinkedAccountIDs)
	})
}

// UpdateProgress persists the engine-derived fields in a single update, so a
// milestone crossing can never land with half its state missing.
func (r *goalRepository) UpdateProgress(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"current_amount": goal.CurrentAmount,
			"status":         string(goal.Status),
			"notified_half":  goal.Milestones.Half,
			"notified_three": goal.Milestones.ThreeQuarters,
			"notified_full":  goal.Milestones.Full,
			"completed_at":   goal.CompletedAt,
			"updated_at":     goal.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal and its account links from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&model.GoalAccountLinkModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GoalModel{}, "id = ?", id).Error
	})
}

// FindLinkedAccountIDs retrieves the account links for the given goals in one
// query, keyed by goal ID.
func (r *goalRepository) FindLinkedAccountIDs(ctx context.Context, goalIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	links := make(map[uuid.UUID][]uuid.UUID, len(goalIDs))
	if len(goalIDs) == 0 {
		return links, nil
	}

	var linkModels []model.GoalAccountLinkModel
	result := r.db.WithContext(ctx).Where("goal_id IN ?", goalIDs).Find(&linkModels)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, link := range linkModels {
		links[link.GoalID] = append(links[link.GoalID], link.AccountID)
	}
	return links, nil
}

func replaceLinks(tx *gorm.DB, goalID uuid.UUID, accountIDs []uuid.UUID) error {
	if len(accountIDs) == 0 {
		return nil
	}
	linkModels := make([]model.GoalAccountLinkModel, len(accountIDs))
	for i, accountID := range accountIDs {
		linkModels[i] = model.GoalAccountLinkModel{GoalID: goalID, AccountID: accountID}
	}
	return tx.Create(&linkModels).Error
}
