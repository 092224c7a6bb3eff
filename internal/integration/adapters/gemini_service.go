// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/docuintelli/backend/internal/application/adapter"
)

// GeminiService implements the InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate asks Gemini for short financial insights based on the summary.
func (s *GeminiService) Generate(ctx context.Context, summary *adapter.FinancialSummary) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(summary)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	insights, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return insights, nil
}

// buildPrompt creates the prompt for Gemini. Only aggregated figures go in,
// never raw transactions.
func (s *GeminiService) buildPrompt(summary *adapter.FinancialSummary) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance coach. Based on the summary below, write short, actionable insights about the user's goals and cash flow.

RULES:
- At most `)
	sb.WriteString(fmt.Sprintf("%d", summary.MaxInsights))
	sb.WriteString(` insights, each a single sentence under 30 words.
- Be specific: reference the goal names and figures from the summary.
- Encouraging but honest; flag overspending and stalled goals.
- No greetings, no disclaimers, no financial product recommendations.

SUMMARY:
`)
	sb.WriteString(fmt.Sprintf("Active goals: %d\n", summary.ActiveGoals))
	for _, line := range summary.GoalLines {
		sb.WriteString("- " + line + "\n")
	}
	sb.WriteString(fmt.Sprintf("Money in (last 30 days): %s\n", summary.MoneyIn30d))
	sb.WriteString(fmt.Sprintf("Money out (last 30 days): %s\n", summary.MoneyOut30d))

	sb.WriteString(`
RESPONSE FORMAT: Return only a JSON array of strings, no additional text.
`)

	return sb.String()
}

// parseResponse parses the Gemini response into insight strings.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var insights []string
	if err := json.Unmarshal([]byte(textContent), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// Drop empty entries
	filtered := insights[:0]
	for _, insight := range insights {
		if strings.TrimSpace(insight) != "" {
			filtered = append(filtered, insight)
		}
	}

	return filtered, nil
}
