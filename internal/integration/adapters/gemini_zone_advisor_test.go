package adapters

import (
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

func TestGeminiZoneAdvisor_ParseResponse(t *testing.T) {
	advisor := &GeminiZoneAdvisor{}

	t.Run("parses a zone suggestion", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text(`{"zone": "yellow", "reasoning": "discretionary retail"}`)},
				},
			}},
		}

		result, err := advisor.parseResponse(resp)
		if err != nil {
			t.Fatalf("parseResponse() error = %v", err)
		}
		if result.Zone != entity.ZoneYellow {
			t.Errorf("Zone = %s, want yellow", result.Zone)
		}
		if result.Reasoning != "discretionary retail" {
			t.Errorf("Reasoning = %q", result.Reasoning)
		}
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("```json\n{\"zone\": \"green\", \"reasoning\": \"groceries\"}\n```")},
				},
			}},
		}

		result, err := advisor.parseResponse(resp)
		if err != nil {
			t.Fatalf("parseResponse() error = %v", err)
		}
		if result.Zone != entity.ZoneGreen {
			t.Errorf("Zone = %s, want green", result.Zone)
		}
	})

	t.Run("nil response and empty candidates error out", func(t *testing.T) {
		if _, err := advisor.parseResponse(nil); err == nil {
			t.Error("expected an error for a nil response")
		}
		if _, err := advisor.parseResponse(&genai.GenerateContentResponse{}); err == nil {
			t.Error("expected an error for empty candidates")
		}
	})

	t.Run("safety-blocked candidate with nil content errors instead of panicking", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
			}},
		}

		if _, err := advisor.parseResponse(resp); err == nil {
			t.Error("expected an error for a candidate without content")
		}
	})

	t.Run("rejects an invalid zone", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text(`{"zone": "purple", "reasoning": "made up"}`)},
				},
			}},
		}

		if _, err := advisor.parseResponse(resp); err == nil {
			t.Error("expected an error for an unknown zone")
		}
	})
}
