// Package progress implements the goal-progress computation engine.
package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docuintelli/backend/internal/domain/entity"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// The fakes below mimic the persistence contracts closely enough for
// orchestrator tests: reads hand out copies (like rows scanned from the
// database) and writes are the only way state changes.

type fakeGoalRepository struct {
	mu              sync.Mutex
	goals           map[uuid.UUID]*entity.Goal
	links           map[uuid.UUID][]uuid.UUID
	progressUpdates int
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{
		goals: make(map[uuid.UUID]*entity.Goal),
		links: make(map[uuid.UUID][]uuid.UUID),
	}
}

func copyGoal(goal *entity.Goal) *entity.Goal {
	clone := *goal
	clone.LinkedAccountIDs = append([]uuid.UUID(nil), goal.LinkedAccountIDs...)
	return &clone
}

func (r *fakeGoalRepository) add(goal *entity.Goal) {
	r.goals[goal.ID] = copyGoal(goal)
	r.links[goal.ID] = append([]uuid.UUID(nil), goal.LinkedAccountIDs...)
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(goal)
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return copyGoal(goal), nil
}

func (r *fakeGoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var goals []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			goals = append(goals, copyGoal(goal))
		}
	}
	return goals, nil
}

func (r *fakeGoalRepository) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var goals []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID && goal.Status == entity.GoalStatusActive {
			goals = append(goals, copyGoal(goal))
		}
	}
	return goals, nil
}

func (r *fakeGoalRepository) ExpireOverdue(_ context.Context, userID uuid.UUID, now time.Time) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID != userID || !goal.IsOverdue(now) {
			continue
		}
		goal.Status = entity.GoalStatusExpired
		expiredAt := now
		goal.ExpiredAt = &expiredAt
		goal.UpdatedAt = now
		expired = append(expired, copyGoal(goal))
	}
	return expired, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	r.add(goal)
	return nil
}

func (r *fakeGoalRepository) UpdateProgress(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.goals[goal.ID]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	stored.CurrentAmount = goal.CurrentAmount
	stored.Status = goal.Status
	stored.Milestones = goal.Milestones
	stored.CompletedAt = goal.CompletedAt
	stored.UpdatedAt = goal.UpdatedAt
	r.progressUpdates++
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.goals, id)
	delete(r.links, id)
	return nil
}

func (r *fakeGoalRepository) FindLinkedAccountIDs(_ context.Context, goalIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[uuid.UUID][]uuid.UUID, len(goalIDs))
	for _, id := range goalIDs {
		result[id] = append([]uuid.UUID(nil), r.links[id]...)
	}
	return result, nil
}

type fakeAccountRepository struct {
	accounts []*entity.Account
}

func (r *fakeAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accounts []*entity.Account
	for _, account := range r.accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (r *fakeAccountRepository) FindByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Account, error) {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var accounts []*entity.Account
	for _, account := range r.accounts {
		if account.UserID == userID && wanted[account.ID] {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindPostedByAccountIDs(_ context.Context, userID uuid.UUID, accountIDs []uuid.UUID) ([]*entity.Transaction, error) {
	wanted := make(map[uuid.UUID]bool, len(accountIDs))
	for _, id := range accountIDs {
		wanted[id] = true
	}
	var transactions []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID && wanted[tx.AccountID] && !tx.Pending {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

type fakeActivityRepository struct {
	activities []*entity.ManualActivity
}

func (r *fakeActivityRepository) Create(_ context.Context, activity *entity.ManualActivity) error {
	r.activities = append(r.activities, activity)
	return nil
}

func (r *fakeActivityRepository) FindByGoalIDs(_ context.Context, goalIDs []uuid.UUID) ([]*entity.ManualActivity, error) {
	wanted := make(map[uuid.UUID]bool, len(goalIDs))
	for _, id := range goalIDs {
		wanted[id] = true
	}
	var activities []*entity.ManualActivity
	for _, activity := range r.activities {
		if wanted[activity.GoalID] {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

func (r *fakeActivityRepository) DeleteByGoalID(_ context.Context, goalID uuid.UUID) error {
	kept := r.activities[:0]
	for _, activity := range r.activities {
		if activity.GoalID != goalID {
			kept = append(kept, activity)
		}
	}
	r.activities = kept
	return nil
}

// fakeNotificationRepository enforces the same (goal, milestone, type)
// uniqueness the real table does.
type fakeNotificationRepository struct {
	notifications []*entity.Notification
	seen          map[string]bool
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{seen: make(map[string]bool)}
}

func (r *fakeNotificationRepository) InsertBatch(_ context.Context, notifications []*entity.Notification) error {
	for _, notification := range notifications {
		key := fmt.Sprintf("%s/%d/%s", notification.GoalID, notification.Milestone, notification.Type)
		if r.seen[key] {
			continue
		}
		r.seen[key] = true
		r.notifications = append(r.notifications, notification)
	}
	return nil
}

func (r *fakeNotificationRepository) FindByUserID(_ context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.Read {
			continue
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (r *fakeNotificationRepository) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for _, notification := range r.notifications {
		if notification.ID == id && notification.UserID == userID {
			notification.Read = true
			return nil
		}
	}
	return domainerror.ErrNotificationNotFound
}

func (r *fakeNotificationRepository) FindUnemailed(_ context.Context, limit int) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	for _, notification := range r.notifications {
		if notification.EmailedAt == nil {
			notifications = append(notifications, notification)
		}
		if len(notifications) == limit {
			break
		}
	}
	return notifications, nil
}

func (r *fakeNotificationRepository) MarkEmailed(_ context.Context, id uuid.UUID) error {
	for _, notification := range r.notifications {
		if notification.ID == id {
			now := time.Now().UTC()
			notification.EmailedAt = &now
			return nil
		}
	}
	return domainerror.ErrNotificationNotFound
}

func (r *fakeNotificationRepository) byType(notificationType entity.NotificationType) []*entity.Notification {
	var matched []*entity.Notification
	for _, notification := range r.notifications {
		if notification.Type == notificationType {
			matched = append(matched, notification)
		}
	}
	return matched
}

type fakeRecalculationLock struct {
	busy     bool
	acquires int
	releases int
}

func (l *fakeRecalculationLock) Acquire(_ context.Context, _ uuid.UUID) (bool, error) {
	if l.busy {
		return false, nil
	}
	l.busy = true
	l.acquires++
	return true, nil
}

func (l *fakeRecalculationLock) Release(_ context.Context, _ uuid.UUID) error {
	l.busy = false
	l.releases++
	return nil
}
