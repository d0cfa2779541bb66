package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSummaryClient turns a finished plan into a short natural-language
// trip summary.
type GeminiSummaryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiSummaryClient(apiKey, model string) (*GeminiSummaryClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSummaryClient{
		client: client,
		model:  model,
	}, nil
}

// SummarizeTrip describes an itinerary in two or three sentences. stopNames
// is the ordered list of stops, provinces the corridor the trip traverses.
func (c *GeminiSummaryClient) SummarizeTrip(ctx context.Context, stopNames, provinces []string, totalKm float64) (string, error) {
	if len(stopNames) == 0 {
		return "", fmt.Errorf("no stops to summarize")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(300)

	prompt := fmt.Sprintf(`Write a 2-3 sentence travel summary for this road trip.
Stops in order: %s
Provinces traversed: %s
Total distance: %.0f km
Plain text only, no markdown, no lists.`,
		strings.Join(stopNames, " -> "), strings.Join(provinces, ", "), totalKm)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}
