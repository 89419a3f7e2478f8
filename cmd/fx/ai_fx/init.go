// cmd/fx/ai_fx/init.go
package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"tripwise/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideCompletionClient)

// CompletionConfig holds configuration for chat-completion clients
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment variables
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAICompletionClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiCompletionClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// getCompletionConfig reads configuration from environment variables
func getCompletionConfig() CompletionConfig {
	provider := GetEnvWithDefault("COMPLETION_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = GetEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// GetEnvWithDefault returns environment variable or default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
