// Package insight contains AI financial insight use cases.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docuintelli/backend/internal/application/adapter"
	"github.com/docuintelli/backend/internal/application/usecase/progress"
	domainerror "github.com/docuintelli/backend/internal/domain/error"
)

// maxInsights caps how many insight texts one request asks for.
const maxInsights = 5

// cashFlowWindow is the lookback used for the money in/out summary lines.
const cashFlowWindow = 30 * 24 * time.Hour

// GenerateInsightsInput represents the input for insight generation.
type GenerateInsightsInput struct {
	UserID uuid.UUID
}

// GenerateInsightsOutput represents the output of insight generation.
type GenerateInsightsOutput struct {
	Insights []string
}

// GenerateInsightsUseCase aggregates the user's goals and recent cash flow
// into a compact summary and asks the AI service for insight texts. Only the
// summary leaves the backend, never raw transactions.
type GenerateInsightsUseCase struct {
	goalRepo        adapter.GoalRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	insightService  adapter.InsightService
	now             func() time.Time
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(
	goalRepo adapter.GoalRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	insightService adapter.InsightService,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		goalRepo:        goalRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		insightService:  insightService,
		now:             time.Now,
	}
}

// Execute performs the insight generation.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	if !uc.insightService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightUnavailable,
			"insight service is not configured",
			domainerror.ErrInsightServiceUnavailable,
		)
	}

	summary, err := uc.buildSummary(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	insights, err := uc.insightService.Generate(ctx, summary)
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightGenerationFailed,
			"failed to generate insights",
			err,
		)
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return &GenerateInsightsOutput{
		Insights: insights,
	}, nil
}

func (uc *GenerateInsightsUseCase) buildSummary(ctx context.Context, userID uuid.UUID) (*adapter.FinancialSummary, error) {
	goals, err := uc.goalRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	goalLines := make([]string, 0, len(goals))
	for _, goal := range goals {
		pct := progress.ProgressPercent(goal.CurrentAmount, goal.TargetAmount)
		goalLines = append(goalLines, fmt.Sprintf("%s (%s): %s of %s (%.1f%%)",
			goal.Name, goal.Type, goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2), pct))
	}

	moneyIn, moneyOut, err := uc.cashFlow(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &adapter.FinancialSummary{
		GoalLines:   goalLines,
		MoneyIn30d:  moneyIn.StringFixed(2),
		MoneyOut30d: moneyOut.StringFixed(2),
		ActiveGoals: len(goals),
		MaxInsights: maxInsights,
	}, nil
}

// cashFlow totals posted transactions across all of the user's accounts over
// the lookback window. Negative amounts are inflows.
func (uc *GenerateInsightsUseCase) cashFlow(ctx context.Context, userID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	accounts, err := uc.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load accounts: %w", err)
	}
	if len(accounts) == 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	accountIDs := make([]uuid.UUID, len(accounts))
	for i, account := range accounts {
		accountIDs[i] = account.ID
	}

	transactions, err := uc.transactionRepo.FindPostedByAccountIDs(ctx, userID, accountIDs)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load transactions: %w", err)
	}

	since := uc.now().Add(-cashFlowWindow)
	moneyIn := decimal.Zero
	moneyOut := decimal.Zero
	for _, tx := range transactions {
		if tx.Date.Before(since) {
			continue
		}
		if tx.Amount.IsNegative() {
			moneyIn = moneyIn.Add(tx.Amount.Abs())
		} else {
			moneyOut = moneyOut.Add(tx.Amount)
		}
	}

	return moneyIn.Round(2), moneyOut.Round(2), nil
}
