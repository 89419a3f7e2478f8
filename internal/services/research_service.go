package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"tripwise/internal/infra"
)

type ResearchServiceInterface interface {
	CheckWeather(ctx context.Context, location, startDate, endDate string) (bool, error)
	EstimateFee(ctx context.Context, activity, location string) float64
}

var rainKeywords = []string{"rain", "drizzle", "shower", "thunderstorm", "precipitation", "wet"}

var feePattern = regexp.MustCompile(`\$?(\d+(?:\.\d{1,2})?)`)

// ResearchService extracts weather and price signal from free-text search
// snippets.
type ResearchService struct {
	search infra.SearchClientInterface
}

func NewResearchService(search infra.SearchClientInterface) ResearchServiceInterface {
	return &ResearchService{search: search}
}

// CheckWeather reports whether the search snippets for the date range carry a
// rain keyword. Pure substring match, no numeric parsing.
func (s *ResearchService) CheckWeather(ctx context.Context, location, startDate, endDate string) (bool, error) {
	query := fmt.Sprintf("Weather in %s from %s to %s", location, startDate, endDate)
	results, err := s.search.Search(ctx, query)
	if err != nil {
		return false, err
	}

	content := joinSnippets(results)
	for _, word := range rainKeywords {
		if strings.Contains(content, word) {
			return true, nil
		}
	}
	return false, nil
}

// EstimateFee looks up an entrance fee for one activity. "free" wins over any
// number; a parse miss and a genuinely free activity both come back as 0,
// which downstream treats as no signal.
func (s *ResearchService) EstimateFee(ctx context.Context, activity, location string) float64 {
	query := fmt.Sprintf("USD entrance ticket cost for %s in %s", activity, location)
	results, err := s.search.Search(ctx, query)
	if err != nil {
		log.Printf("Fee lookup for %q failed: %v", activity, err)
		return 0
	}

	content := joinSnippets(results)
	if strings.Contains(content, "free") {
		return 0
	}

	match := feePattern.FindStringSubmatch(content)
	if match == nil {
		return 0
	}
	fee, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return fee
}

func joinSnippets(results []infra.SearchResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, strings.ToLower(r.Content))
	}
	return strings.Join(parts, " ")
}
