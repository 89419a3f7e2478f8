package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAICompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICompletionClient(apiKey, model string) CompletionClientInterface {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, system string, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
