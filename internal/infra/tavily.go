package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const tavilyBaseURL = "https://api.tavily.com"

type SearchResult struct {
	Content string `json:"content"`
}

// SearchClientInterface issues one free-text web search and returns text
// snippets in relevance order.
type SearchClientInterface interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type TavilyClient struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

func NewTavilyClient(apiKey, baseURL string) SearchClientInterface {
	if baseURL == "" {
		baseURL = tavilyBaseURL
	}
	return &TavilyClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		maxResults: 5,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *TavilyClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"api_key":     c.apiKey,
		"query":       query,
		"max_results": c.maxResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Results []SearchResult `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("tavily search response: %w", err)
	}
	return result.Results, nil
}
