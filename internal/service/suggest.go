package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"omnicalc/internal/domain"
)

// suggestionModel is the Gemini model used for next-step tips.
const suggestionModel = "gemini-2.0-flash"

// suggestionTimeout caps the advisory call. The tip is never load-bearing:
// on timeout or error the page simply renders without it.
const suggestionTimeout = 5 * time.Second

// SuggestionService produces a short "next step" tip after a calculator is
// used. With no API key configured it falls back to static per-category tips.
type SuggestionService struct {
	client *genai.Client
	logger *slog.Logger
}

// NewSuggestionService creates a SuggestionService. An empty apiKey disables
// the Gemini call and leaves only the static fallback.
func NewSuggestionService(ctx context.Context, apiKey string, logger *slog.Logger) (*SuggestionService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &SuggestionService{logger: logger}
	if apiKey == "" {
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// NextStep returns a one-to-two line suggestion for what the user might do
// after using the named calculator. It always returns something usable.
func (s *SuggestionService) NextStep(ctx context.Context, calc *domain.Calculator) string {
	if s.client == nil {
		return fallbackTip(calc)
	}

	ctx, cancel := context.WithTimeout(ctx, suggestionTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"A user just finished using the %q calculator. Provide a helpful and concise "+
			"two-line suggestion for their next step: a practical tip related to their "+
			"result, or another relevant calculator to try. Keep the tone encouraging "+
			"and straightforward. Reply with the suggestion only.", calc.Name)

	result, err := s.client.Models.GenerateContent(ctx, suggestionModel,
		genai.Text(prompt), nil)
	if err != nil {
		s.logger.Warn("suggestion call failed, using fallback", "calculator", calc.Slug, "error", err)
		return fallbackTip(calc)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return fallbackTip(calc)
	}
	return text
}

func fallbackTip(calc *domain.Calculator) string {
	switch calc.CategorySlug {
	case "finance":
		return "Small rate changes compound over time. Try a few scenarios before you commit."
	case "health", "fitness":
		return "Estimates like this are a starting point, not a diagnosis. Track your trend over weeks."
	case "math":
		return "Double-check by working the result backwards through the inverse operation."
	case "construction":
		return "Order 5-10% extra material to cover spillage and uneven ground."
	default:
		return "Bookmark this calculator if you use it often — it keeps no state between visits."
	}
}
