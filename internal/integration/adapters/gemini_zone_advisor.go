// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// GeminiZoneAdvisor implements the adapter.ZoneAdvisor using Google Gemini.
type GeminiZoneAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiZoneAdvisor creates a new Gemini zone advisor instance.
func NewGeminiZoneAdvisor(apiKey string) *GeminiZoneAdvisor {
	return &GeminiZoneAdvisor{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the advisor is properly configured.
func (s *GeminiZoneAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestZone asks the model to place one transaction in a spending zone.
func (s *GeminiZoneAdvisor) SuggestZone(ctx context.Context, request adapter.ZoneAdvisorRequest) (*adapter.ZoneAdvisorResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini advisor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiZoneAdvisor) buildPrompt(request adapter.ZoneAdvisorRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Classify one purchase into a spending zone:
- "green": essentials and responsible spending (groceries, rent, utilities, healthcare, insurance, commuting)
- "yellow": discretionary but reasonable spending (dining out, streaming, hobbies, retail, fitness)
- "red": impulse or wasteful spending (fast food, food delivery fees, gambling, late-night shopping, penalty fees)

TRANSACTION:
`)
	sb.WriteString(fmt.Sprintf("- Merchant: %q\n", request.MerchantName))
	if request.Description != "" {
		sb.WriteString(fmt.Sprintf("- Description: %q\n", request.Description))
	}
	sb.WriteString(fmt.Sprintf("- Amount: $%s\n", request.Amount))

	sb.WriteString(`
Respond with a single JSON object:
{
  "zone": "green" | "yellow" | "red",
  "reasoning": "one short sentence"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiZoneSuggestion represents the raw response from Gemini.
type geminiZoneSuggestion struct {
	Zone      string `json:"zone"`
	Reasoning string `json:"reasoning"`
}

// parseResponse parses the Gemini response into a ZoneAdvisorResult.
func (s *GeminiZoneAdvisor) parseResponse(resp *genai.GenerateContentResponse) (*adapter.ZoneAdvisorResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}
	// Safety-blocked candidates come back with a nil Content.
	if resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content in gemini candidate")
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

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiZoneSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	zone, ok := entity.ParseZone(suggestion.Zone)
	if !ok || !zone.IsSubstantive() {
		return nil, fmt.Errorf("model returned invalid zone %q", suggestion.Zone)
	}

	return &adapter.ZoneAdvisorResult{
		Zone:      zone,
		Reasoning: suggestion.Reasoning,
	}, nil
}
