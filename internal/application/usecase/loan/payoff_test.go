// Package loan contains loan payoff analysis use cases.
package loan

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestPayoffValidation(t *testing.T) {
	tests := []struct {
		name        string
		input       PayoffInput
		expectedErr error
	}{
		{
			name:        "zero balance is rejected",
			input:       PayoffInput{Balance: d("0"), AnnualRate: d("0.05"), MonthlyPayment: d("100")},
			expectedErr: domainerror.ErrInvalidLoanBalance,
		},
		{
			name:        "negative rate is rejected",
			input:       PayoffInput{Balance: d("1000"), AnnualRate: d("-0.01"), MonthlyPayment: d("100")},
			expectedErr: domainerror.ErrInvalidInterestRate,
		},
		{
			name:        "payment equal to first month interest never amortizes",
			input:       PayoffInput{Balance: d("10000"), AnnualRate: d("0.12"), MonthlyPayment: d("100")},
			expectedErr: domainerror.ErrPaymentTooLow,
		},
		{
			name:        "payment below first month interest never amortizes",
			input:       PayoffInput{Balance: d("10000"), AnnualRate: d("0.12"), MonthlyPayment: d("50")},
			expectedErr: domainerror.ErrPaymentTooLow,
		},
	}

	useCase := NewPayoffUseCase()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestPayoffZeroInterest(t *testing.T) {
	useCase := NewPayoffUseCase()

	output, err := useCase.Execute(context.Background(), PayoffInput{
		Balance:        d("1200"),
		AnnualRate:     d("0"),
		MonthlyPayment: d("100"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Base.Months != 12 {
		t.Errorf("expected 12 months, got %d", output.Base.Months)
	}
	if !output.Base.TotalInterest.IsZero() {
		t.Errorf("expected zero interest, got %s", output.Base.TotalInterest)
	}
	if len(output.Base.Timeline) != 12 {
		t.Fatalf("expected 12 timeline rows, got %d", len(output.Base.Timeline))
	}

	last := output.Base.Timeline[11]
	if !last.RemainingBalance.IsZero() {
		t.Errorf("expected final balance 0, got %s", last.RemainingBalance)
	}
	if output.ExtraScenario != nil {
		t.Error("expected no extra scenario without an extra payment")
	}
}

func TestPayoffWithInterest(t *testing.T) {
	useCase := NewPayoffUseCase()

	// 1000 at 1% per month, paying 500: 10 + 5.10 + 0.15 interest over 3 months.
	output, err := useCase.Execute(context.Background(), PayoffInput{
		Balance:        d("1000"),
		AnnualRate:     d("0.12"),
		MonthlyPayment: d("500"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Base.Months != 3 {
		t.Fatalf("expected 3 months, got %d", output.Base.Months)
	}
	if !output.Base.TotalInterest.Equal(d("15.25")) {
		t.Errorf("expected total interest 15.25, got %s", output.Base.TotalInterest)
	}

	first := output.Base.Timeline[0]
	if !first.InterestPaid.Equal(d("10")) || !first.PrincipalPaid.Equal(d("490")) {
		t.Errorf("expected 10 interest / 490 principal, got %s / %s", first.InterestPaid, first.PrincipalPaid)
	}
	if !first.RemainingBalance.Equal(d("510")) {
		t.Errorf("expected 510 remaining, got %s", first.RemainingBalance)
	}

	last := output.Base.Timeline[2]
	if !last.PrincipalPaid.Equal(d("15.10")) {
		t.Errorf("expected final partial principal 15.10, got %s", last.PrincipalPaid)
	}
	if !last.RemainingBalance.IsZero() {
		t.Errorf("expected final balance 0, got %s", last.RemainingBalance)
	}
}

func TestPayoffExtraPaymentScenario(t *testing.T) {
	useCase := NewPayoffUseCase()

	output, err := useCase.Execute(context.Background(), PayoffInput{
		Balance:        d("10000"),
		AnnualRate:     d("0.12"),
		MonthlyPayment: d("200"),
		ExtraPayment:   d("100"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.ExtraScenario == nil {
		t.Fatal("expected an extra payment scenario")
	}
	if output.ExtraScenario.Months >= output.Base.Months {
		t.Errorf("extra payments must shorten the loan: %d vs %d months",
			output.ExtraScenario.Months, output.Base.Months)
	}
	if output.MonthsSaved != output.Base.Months-output.ExtraScenario.Months {
		t.Errorf("expected months saved %d, got %d",
			output.Base.Months-output.ExtraScenario.Months, output.MonthsSaved)
	}
	if !output.InterestSaved.IsPositive() {
		t.Errorf("expected positive interest saved, got %s", output.InterestSaved)
	}
	if !output.InterestSaved.Equal(output.Base.TotalInterest.Sub(output.ExtraScenario.TotalInterest)) {
		t.Error("interest saved must equal the difference between scenarios")
	}
}

func TestPayoffStopsAtMonthCap(t *testing.T) {
	useCase := NewPayoffUseCase()

	// Payment barely beats the interest accrual; a century is not enough.
	output, err := useCase.Execute(context.Background(), PayoffInput{
		Balance:        d("1000000"),
		AnnualRate:     d("0.12"),
		MonthlyPayment: d("10000.01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Base.Months != 1200 {
		t.Errorf("expected the 1200 month cap, got %d", output.Base.Months)
	}
	last := output.Base.Timeline[len(output.Base.Timeline)-1]
	if !last.RemainingBalance.IsPositive() {
		t.Errorf("expected a residual balance at the cap, got %s", last.RemainingBalance)
	}
}
