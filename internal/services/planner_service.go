package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/workflow"
	"tripwise/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.PlanTripRequest) (*response_models.TripPlanResponse, error)
}

const (
	NodeCheckWeather     workflow.NodeID = "check_weather"
	NodeSuggestAlternate workflow.NodeID = "suggest_alternate"
	NodeBuildItinerary   workflow.NodeID = "build_itinerary"
	NodeCalculateFees    workflow.NodeID = "calculate_fees"
	NodeFetchHotel       workflow.NodeID = "fetch_hotel"
	NodeCalculateTotal   workflow.NodeID = "calculate_total"
	NodeFinalSummary     workflow.NodeID = "final_summary"
)

const (
	// suggest_alternate pushes the start forward by this many days and ends
	// the shifted trip 6 days after the original start.
	dateShiftDays     = 3
	alternateTripDays = 6

	hotelAdults     = 2
	hotelRooms      = 1
	hotelMaxResults = 10
)

type PlannerService struct {
	research  ResearchServiceInterface
	itinerary ItineraryServiceInterface
	hotels    HotelServiceInterface
}

func NewPlannerService(
	research ResearchServiceInterface,
	itinerary ItineraryServiceInterface,
	hotels HotelServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		research:  research,
		itinerary: itinerary,
		hotels:    hotels,
	}
}

// PlanTrip validates the request, runs the planning workflow and packages the
// final state. Only input validation can fail; every workflow step degrades
// to a safe default instead of aborting.
func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.PlanTripRequest) (*response_models.TripPlanResponse, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, utils.ErrEmptyDestination
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidDateFormat
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidDateFormat
	}
	if !endDate.After(startDate) {
		return nil, utils.ErrInvalidDateRange
	}

	log.Printf("Planning trip to %s from %s to %s", location, req.StartDate, req.EndDate)

	initial := workflow.State{
		Location:  location,
		StartDate: startDate,
		EndDate:   endDate,
	}

	final, err := p.buildMachine().Run(ctx, initial)
	if err != nil {
		return nil, err
	}

	resp := &response_models.TripPlanResponse{
		Summary:       final.Summary,
		Location:      final.Location,
		StartDate:     utils.FormatDate(final.StartDate),
		EndDate:       utils.FormatDate(final.EndDate),
		WeatherStatus: string(final.WeatherStatus),
		DatesShifted:  final.LoopCount > 0,
		Itinerary:     final.Itinerary,
		EntranceFees:  final.EntranceFees,
	}
	if final.HotelInfo != nil {
		resp.Hotel = response_models.HotelSummary{
			Name:      final.HotelInfo.Name,
			TotalCost: final.HotelInfo.TotalCost,
		}
	}
	if final.TotalCost != nil {
		resp.TotalCost = *final.TotalCost
	}
	return resp, nil
}

// buildMachine assembles the fixed 7-node pipeline: a weather gate with one
// bounded date-shift cycle, then a straight line to the summary.
func (p *PlannerService) buildMachine() *workflow.Machine {
	m := workflow.NewMachine()

	m.AddNode(NodeCheckWeather, p.checkWeatherNode)
	m.AddNode(NodeSuggestAlternate, p.suggestAlternateNode)
	m.AddNode(NodeBuildItinerary, p.buildItineraryNode)
	m.AddNode(NodeCalculateFees, p.calculateFeesNode)
	m.AddNode(NodeFetchHotel, p.fetchHotelNode)
	m.AddNode(NodeCalculateTotal, p.calculateTotalNode)
	m.AddNode(NodeFinalSummary, p.finalSummaryNode)

	m.SetEntryPoint(NodeCheckWeather)
	m.AddConditionalEdge(NodeCheckWeather, func(s workflow.State) bool {
		return s.WeatherStatus == workflow.WeatherRainy && s.LoopCount < 1
	}, NodeSuggestAlternate)
	m.AddEdge(NodeCheckWeather, NodeBuildItinerary)
	m.AddEdge(NodeSuggestAlternate, NodeCheckWeather)
	m.AddEdge(NodeBuildItinerary, NodeCalculateFees)
	m.AddEdge(NodeCalculateFees, NodeFetchHotel)
	m.AddEdge(NodeFetchHotel, NodeCalculateTotal)
	m.AddEdge(NodeCalculateTotal, NodeFinalSummary)
	m.AddEdge(NodeFinalSummary, workflow.Done)

	return m
}

// checkWeatherNode skips the recheck once dates were already shifted: the
// loop bound deliberately ignores the second pass's weather.
func (p *PlannerService) checkWeatherNode(ctx context.Context, s workflow.State) workflow.Patch {
	if s.LoopCount >= 1 {
		// Leave the first pass's status in place: the shift already encoded
		// the decision and the report should not claim the weather cleared.
		log.Println("Skipping weather recheck, proceeding with shifted dates")
		return workflow.Patch{}
	}

	status := workflow.WeatherClear
	rainy, err := p.research.CheckWeather(ctx, s.Location,
		utils.FormatDate(s.StartDate), utils.FormatDate(s.EndDate))
	if err != nil {
		log.Printf("Weather check failed, assuming clear: %v", err)
	} else if rainy {
		log.Println("Rain detected in forecast")
		status = workflow.WeatherRainy
	}
	return workflow.Patch{WeatherStatus: &status}
}

// suggestAlternateNode computes both new dates from the original start, so a
// repeated shift would not compound. That is intentional.
func (p *PlannerService) suggestAlternateNode(ctx context.Context, s workflow.State) workflow.Patch {
	newStart := s.StartDate.AddDate(0, 0, dateShiftDays)
	newEnd := s.StartDate.AddDate(0, 0, alternateTripDays)
	loop := s.LoopCount + 1

	log.Printf("Shifting dates to %s - %s", utils.FormatDate(newStart), utils.FormatDate(newEnd))
	return workflow.Patch{
		StartDate: &newStart,
		EndDate:   &newEnd,
		LoopCount: &loop,
	}
}

func (p *PlannerService) buildItineraryNode(ctx context.Context, s workflow.State) workflow.Patch {
	text, err := p.itinerary.Generate(ctx, s.Location,
		utils.FormatDate(s.StartDate), utils.FormatDate(s.EndDate))
	if err != nil {
		log.Printf("Itinerary generation failed, using placeholder: %v", err)
		text = placeholderItinerary(s)
	}
	return workflow.Patch{Itinerary: &text}
}

func placeholderItinerary(s workflow.State) string {
	days := utils.TripNights(s.StartDate, s.EndDate)
	if days < 1 {
		days = 1
	}
	var b strings.Builder
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&b, "Day %d | Morning | Explore %s at your own pace\n", d, s.Location)
	}
	return b.String()
}

// calculateFeesNode estimates one fee per pipe-delimited itinerary line,
// taking the third field as the activity name.
func (p *PlannerService) calculateFeesNode(ctx context.Context, s workflow.State) workflow.Patch {
	fees := make([]float64, 0)
	for _, line := range strings.Split(s.Itinerary, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		activity := strings.TrimSpace(parts[2])
		if activity == "" {
			continue
		}
		fees = append(fees, p.research.EstimateFee(ctx, activity, s.Location))
	}
	log.Printf("Fetched fees for %d activities", len(fees))
	return workflow.Patch{EntranceFees: fees}
}

func (p *PlannerService) fetchHotelNode(ctx context.Context, s workflow.State) workflow.Patch {
	offer, err := p.hotels.FindCheapestHotel(ctx, s.Location,
		utils.FormatDate(s.StartDate), utils.FormatDate(s.EndDate),
		hotelAdults, hotelRooms, hotelMaxResults)
	if err != nil || offer == nil {
		// FindCheapestHotel falls back internally; this is belt and braces.
		fallback := FallbackHotel
		offer = &fallback
	}
	return workflow.Patch{HotelInfo: &workflow.HotelInfo{
		Name:      offer.Name,
		TotalCost: offer.PriceTotal,
	}}
}

func (p *PlannerService) calculateTotalNode(ctx context.Context, s workflow.State) workflow.Patch {
	total := 0.0
	for _, fee := range s.EntranceFees {
		total += fee
	}
	if s.HotelInfo != nil {
		total += s.HotelInfo.TotalCost
	}
	rounded := math.Round(total*100) / 100
	return workflow.Patch{TotalCost: &rounded}
}

func (p *PlannerService) finalSummaryNode(ctx context.Context, s workflow.State) workflow.Patch {
	summary := FormatSummary(s)
	return workflow.Patch{Summary: &summary}
}
