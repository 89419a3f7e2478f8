package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's
// Gemini models (free tier friendly).
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (CompletionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, system string, user string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
