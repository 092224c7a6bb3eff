// Package loan contains loan payoff analysis use cases.
package loan

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// maxPayoffMonths bounds the amortization loop. 100 years of payments means
// the loan effectively never pays off.
const maxPayoffMonths = 1200

var monthsPerYear = decimal.NewFromInt(12)

// PayoffInput represents the input for loan payoff analysis.
type PayoffInput struct {
	Balance        decimal.Decimal
	AnnualRate     decimal.Decimal // e.g. 0.065 for 6.5% APR
	MonthlyPayment decimal.Decimal
	ExtraPayment   decimal.Decimal // Optional what-if scenario, zero to skip
}

// TimelineRow represents one month of the amortization schedule.
type TimelineRow struct {
	Month            int
	InterestPaid     decimal.Decimal
	PrincipalPaid    decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Scenario represents the outcome of one payment plan.
type Scenario struct {
	Months        int
	TotalInterest decimal.Decimal
	Timeline      []TimelineRow
}

// PayoffOutput represents the output of loan payoff analysis. ExtraScenario
// is nil when no extra payment was requested.
type PayoffOutput struct {
	Base          Scenario
	ExtraScenario *Scenario
	MonthsSaved   int
	InterestSaved decimal.Decimal
}

// PayoffUseCase handles loan payoff analysis.
type PayoffUseCase struct{}

// NewPayoffUseCase creates a new PayoffUseCase instance.
func NewPayoffUseCase() *PayoffUseCase {
	return &PayoffUseCase{}
}

// Execute performs the payoff analysis.
func (uc *PayoffUseCase) Execute(_ context.Context, input PayoffInput) (*PayoffOutput, error) {
	if !input.Balance.IsPositive() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanBalance,
			"loan balance must be greater than zero",
			domainerror.ErrInvalidLoanBalance,
		)
	}
	if input.AnnualRate.IsNegative() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidInterestRate,
			"annual interest rate cannot be negative",
			domainerror.ErrInvalidInterestRate,
		)
	}

	monthlyRate := input.AnnualRate.Div(monthsPerYear)

	// Payment must beat the first month's interest or the balance never shrinks
	firstMonthInterest := input.Balance.Mul(monthlyRate)
	if input.MonthlyPayment.LessThanOrEqual(firstMonthInterest) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodePaymentTooLow,
			"monthly payment does not cover the first month's interest",
			domainerror.ErrPaymentTooLow,
		)
	}

	base := amortize(input.Balance, monthlyRate, input.MonthlyPayment)

	output := &PayoffOutput{
		Base:          base,
		InterestSaved: decimal.Zero,
	}

	if input.ExtraPayment.IsPositive() {
		extra := amortize(input.Balance, monthlyRate, input.MonthlyPayment.Add(input.ExtraPayment))
		output.ExtraScenario = &extra
		output.MonthsSaved = base.Months - extra.Months
		output.InterestSaved = base.TotalInterest.Sub(extra.TotalInterest)
	}

	return output, nil
}

// amortize runs the month-by-month schedule until the balance reaches zero or
// the month cap is hit. The caller has already ruled out a payment below the
// interest accrual, so the loop always terminates with a shrinking balance.
func amortize(balance, monthlyRate, payment decimal.Decimal) Scenario {
	scenario := Scenario{
		TotalInterest: decimal.Zero,
		Timeline:      make([]TimelineRow, 0, 64),
	}

	remaining := balance
	for month := 1; month <= maxPayoffMonths && remaining.IsPositive(); month++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)
		if principal.GreaterThan(remaining) {
			// Final partial payment
			principal = remaining
		}
		remaining = remaining.Sub(principal)

		scenario.TotalInterest = scenario.TotalInterest.Add(interest)
		scenario.Timeline = append(scenario.Timeline, TimelineRow{
			Month:            month,
			InterestPaid:     interest,
			PrincipalPaid:    principal.Round(2),
			RemainingBalance: remaining.Round(2),
		})
		scenario.Months = month
	}

	return scenario
}
