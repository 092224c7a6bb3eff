// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/application/usecase/loan"
)

// PayoffRequest represents the request body for loan payoff analysis.
type PayoffRequest struct {
	Balance        decimal.Decimal `json:"balance" binding:"required"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment" binding:"required"`
	ExtraPayment   decimal.Decimal `json:"extra_payment,omitempty"`
}

// TimelineRowResponse represents one month of an amortization schedule.
type TimelineRowResponse struct {
	Month            int             `json:"month"`
	InterestPaid     decimal.Decimal `json:"interest_paid"`
	PrincipalPaid    decimal.Decimal `json:"principal_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScenarioResponse represents the outcome of one payment plan.
type ScenarioResponse struct {
	Months        int                   `json:"months"`
	TotalInterest decimal.Decimal       `json:"total_interest"`
	Timeline      []TimelineRowResponse `json:"timeline"`
}

// PayoffResponse represents the response for loan payoff analysis.
// ExtraScenario is present only when an extra payment was requested.
type PayoffResponse struct {
	Base          ScenarioResponse  `json:"base"`
	ExtraScenario *ScenarioResponse `json:"extra_scenario,omitempty"`
	MonthsSaved   int               `json:"months_saved"`
	InterestSaved decimal.Decimal   `json:"interest_saved"`
}

// ToPayoffResponse converts a payoff output to a PayoffResponse DTO.
func ToPayoffResponse(output *loan.PayoffOutput) PayoffResponse {
	response := PayoffResponse{
		Base:          toScenarioResponse(output.Base),
		MonthsSaved:   output.MonthsSaved,
		InterestSaved: output.InterestSaved,
	}
	if output.ExtraScenario != nil {
		scenario := toScenarioResponse(*output.ExtraScenario)
		response.ExtraScenario = &scenario
	}
	return response
}

func toScenarioResponse(s loan.Scenario) ScenarioResponse {
	response := ScenarioResponse{
		Months:        s.Months,
		TotalInterest: s.TotalInterest,
		Timeline:      make([]TimelineRowResponse, 0, len(s.Timeline)),
	}
	for _, row := range s.Timeline {
		response.Timeline = append(response.Timeline, TimelineRowResponse{
			Month:            row.Month,
			InterestPaid:     row.InterestPaid,
			PrincipalPaid:    row.PrincipalPaid,
			RemainingBalance: row.RemainingBalance,
		})
	}
	return response
}
