package services

import (
	"context"
	"fmt"

	"tripwise/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, location, startDate, endDate string) (string, error)
}

// The fee step splits itinerary lines on "|" and takes the third field, so
// the prompt pins that exact line shape.
const itinerarySystemPrompt = `You are a travel planner. Produce a day-by-day itinerary with exactly three activities per day: morning, afternoon and evening.

Format every activity as its own line:
Day <number> | <Morning/Afternoon/Evening> | <activity name>

Example:
Day 1 | Morning | Visit the National Museum
Day 1 | Afternoon | Walk the old town
Day 1 | Evening | Dinner at the harbour

Output only those lines, no extra prose.`

type ItineraryService struct {
	aiClient utils.CompletionClientInterface
}

func NewItineraryService(aiClient utils.CompletionClientInterface) ItineraryServiceInterface {
	return &ItineraryService{aiClient: aiClient}
}

func (s *ItineraryService) Generate(ctx context.Context, location, startDate, endDate string) (string, error) {
	prompt := fmt.Sprintf("Create an itinerary for %s from %s to %s. 3 activities/day: morning, afternoon, evening.",
		location, startDate, endDate)

	itinerary, err := s.aiClient.Complete(ctx, itinerarySystemPrompt, prompt)
	if err != nil {
		return "", utils.ErrProviderFailure
	}
	return itinerary, nil
}
