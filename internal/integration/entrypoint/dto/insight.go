// Package dto defines data transfer objects for API requests and responses.
package dto

// InsightsResponse represents the response for AI insight generation.
type InsightsResponse struct {
	Insights []string `json:"insights"`
}
