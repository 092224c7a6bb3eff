// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// FinancialSummary is the compact, already-aggregated view of a user's
// finances handed to the AI service. No raw transactions leave the backend.
type FinancialSummary struct {
	GoalLines   []string // One line per goal: name, type, progress
	MoneyIn30d  string   // Formatted inflow total for the last 30 days
	MoneyOut30d string   // Formatted outflow total for the last 30 days
	ActiveGoals int
	MaxInsights int
}

// InsightService generates short financial insight texts from a summary.
type InsightService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Generate returns up to MaxInsights short insight strings.
	Generate(ctx context.Context, summary *FinancialSummary) ([]string, error)
}
