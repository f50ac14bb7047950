package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Oracle is the single AI capability the pipeline needs: one prompt in, one
// text completion out. Extraction and ranking both go through it, and tests
// substitute it freely.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiOracle implements Oracle against the Gemini API.
type GeminiOracle struct {
	client *genai.Client
	model  string
}

// NewGeminiOracle creates a Gemini-backed oracle for the given model name.
func NewGeminiOracle(ctx context.Context, apiKey, model string) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiOracle{
		client: client,
		model:  model,
	}, nil
}

// Generate runs a single synchronous completion. Cancellation and deadlines
// come from ctx; callers are expected to bound the call.
func (o *GeminiOracle) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(prompt), &genai.GenerateContentConfig{
		// Low temperature for consistent, parseable output
		Temperature: genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return textFromResponse(resp)
}

// textFromResponse joins the text parts of the first candidate. An empty or
// blocked response is an error, not an empty string.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			parts = append(parts, part.Text)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
