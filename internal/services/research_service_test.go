package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/infra"
)

type stubSearchClient struct {
	snippets []string
	err      error
	queries  []string
}

func (s *stubSearchClient) Search(ctx context.Context, query string) ([]infra.SearchResult, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	results := make([]infra.SearchResult, 0, len(s.snippets))
	for _, snippet := range s.snippets {
		results = append(results, infra.SearchResult{Content: snippet})
	}
	return results, nil
}

func TestCheckWeather_RainKeywords(t *testing.T) {
	cases := []struct {
		name     string
		snippets []string
		rainy    bool
	}{
		{"clear forecast", []string{"Sunny skies all week, highs around 25C"}, false},
		{"rain", []string{"Expect heavy RAIN on Tuesday"}, true},
		{"drizzle", []string{"light drizzle in the morning"}, true},
		{"thunderstorm across snippets", []string{"clear monday", "thunderstorm warning tuesday"}, true},
		{"wet as substring", []string{"wetlands tour recommended"}, true},
		{"no snippets", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewResearchService(&stubSearchClient{snippets: tc.snippets})
			rainy, err := svc.CheckWeather(context.Background(), "Paris", "2025-07-20", "2025-07-23")
			require.NoError(t, err)
			assert.Equal(t, tc.rainy, rainy)
		})
	}
}

func TestCheckWeather_SearchFailurePropagates(t *testing.T) {
	svc := NewResearchService(&stubSearchClient{err: errors.New("timeout")})
	_, err := svc.CheckWeather(context.Background(), "Paris", "2025-07-20", "2025-07-23")
	assert.Error(t, err)
}

func TestEstimateFee_Extraction(t *testing.T) {
	cases := []struct {
		name     string
		snippets []string
		want     float64
	}{
		{"free admission wins", []string{"Free admission on Sundays, otherwise $15"}, 0},
		{"dollar amount", []string{"tickets cost $12.50 per adult"}, 12.5},
		{"bare number", []string{"entry is 20 per person"}, 20},
		{"no signal", []string{"a lovely place to visit"}, 0},
		{"empty results", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewResearchService(&stubSearchClient{snippets: tc.snippets})
			fee := svc.EstimateFee(context.Background(), "Louvre", "Paris")
			assert.Equal(t, tc.want, fee)
		})
	}
}

func TestEstimateFee_SearchFailureDefaultsToZero(t *testing.T) {
	svc := NewResearchService(&stubSearchClient{err: errors.New("timeout")})
	fee := svc.EstimateFee(context.Background(), "Louvre", "Paris")
	assert.Zero(t, fee)
}

func TestEstimateFee_QueryMentionsActivityAndLocation(t *testing.T) {
	stub := &stubSearchClient{snippets: []string{"$10"}}
	svc := NewResearchService(stub)
	svc.EstimateFee(context.Background(), "Louvre", "Paris")
	require.Len(t, stub.queries, 1)
	assert.Contains(t, stub.queries[0], "Louvre")
	assert.Contains(t, stub.queries[0], "Paris")
}
