// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/application/usecase/goal"
	"github.com/docuintelli/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name             string          `json:"name" binding:"required"`
	Type             string          `json:"type" binding:"required,oneof=savings spending_limit debt_paydown income_target ad_hoc"`
	TargetAmount     decimal.Decimal `json:"target_amount" binding:"required"`
	Period           *string         `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate        *string         `json:"start_date,omitempty"`
	TargetDate       *string         `json:"target_date,omitempty"`
	LinkedAccountIDs []string        `json:"linked_account_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdateGoalRequest represents the request body for goal update. Absent
// fields are left unchanged; linked_account_ids set to an empty array
// unlinks all accounts.
type UpdateGoalRequest struct {
	Name             *string          `json:"name,omitempty"`
	TargetAmount     *decimal.Decimal `json:"target_amount,omitempty"`
	TargetDate       *string          `json:"target_date,omitempty"`
	ClearTargetDate  bool             `json:"clear_target_date,omitempty"`
	Period           *string          `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	LinkedAccountIDs *[]string        `json:"linked_account_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// MilestoneResponse represents the milestone notification flags of a goal.
type MilestoneResponse struct {
	Half          bool `json:"half"`
	ThreeQuarters bool `json:"three_quarters"`
	Full          bool `json:"full"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	TargetAmount     decimal.Decimal   `json:"target_amount"`
	CurrentAmount    decimal.Decimal   `json:"current_amount"`
	ProgressPct      float64           `json:"progress_pct"`
	Period           string            `json:"period,omitempty"`
	StartDate        string            `json:"start_date"`
	TargetDate       *string           `json:"target_date,omitempty"`
	Status           string            `json:"status"`
	Milestones       MilestoneResponse `json:"milestones"`
	LinkedAccountIDs []string          `json:"linked_account_ids"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	ExpiredAt        *time.Time        `json:"expired_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, progressPct float64) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		Type:          string(g.Type),
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		ProgressPct:   progressPct,
		StartDate:     g.StartDate.Format("2006-01-02"),
		Status:        string(g.Status),
		Milestones: MilestoneResponse{
			Half:          g.Milestones.Half,
			ThreeQuarters: g.Milestones.ThreeQuarters,
			Full:          g.Milestones.Full,
		},
		LinkedAccountIDs: make([]string, 0, len(g.LinkedAccountIDs)),
		CompletedAt:      g.CompletedAt,
		ExpiredAt:        g.ExpiredAt,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}

	if g.Type == entity.GoalTypeSpendingLimit {
		response.Period = string(g.Period)
	}

	if g.TargetDate != nil {
		dateStr := g.TargetDate.Format("2006-01-02")
		response.TargetDate = &dateStr
	}

	for _, id := range g.LinkedAccountIDs {
		response.LinkedAccountIDs = append(response.LinkedAccountIDs, id.String())
	}

	return response
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, 0, len(outputs)),
	}
	for _, output := range outputs {
		response.Goals = append(response.Goals, ToGoalResponse(output.Goal, output.ProgressPct))
	}
	return response
}

// LogActivityRequest represents the request body for logging a manual
// activity against an ad-hoc goal. Negative amounts correct earlier entries.
type LogActivityRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description,omitempty"`
	ActivityDate *string         `json:"activity_date,omitempty"`
}

// ActivityResponse represents a manual activity entry in API responses.
type ActivityResponse struct {
	ID           string          `json:"id"`
	GoalID       string          `json:"goal_id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	ActivityDate string          `json:"activity_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToActivityResponse converts a domain ManualActivity entity to an ActivityResponse DTO.
func ToActivityResponse(a *entity.ManualActivity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID.String(),
		GoalID:       a.GoalID.String(),
		Amount:       a.Amount,
		Description:  a.Description,
		ActivityDate: a.ActivityDate.Format("2006-01-02"),
		CreatedAt:    a.CreatedAt,
	}
}

// ParseAccountIDs parses the request's account ID strings. Binding already
// validated the format, so parse failures surface as uuid.Nil entries that
// the ownership check rejects.
func ParseAccountIDs(ids []string) []uuid.UUID {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		accountID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		parsed = append(parsed, accountID)
	}
	return parsed
}
