package workflow

import "time"

type WeatherStatus string

const (
	WeatherUnknown WeatherStatus = ""
	WeatherClear   WeatherStatus = "clear"
	WeatherRainy   WeatherStatus = "rainy"
)

// HotelInfo is the hotel pick carried in the trip state.
type HotelInfo struct {
	Name      string
	TotalCost float64
}

// State is the record threaded through one planning run. It is treated as a
// value: nodes never mutate it, they return a Patch which Apply merges into a
// fresh copy.
type State struct {
	Location      string
	StartDate     time.Time
	EndDate       time.Time
	LoopCount     int
	WeatherStatus WeatherStatus
	Itinerary     string
	EntranceFees  []float64
	HotelInfo     *HotelInfo
	TotalCost     *float64
	Summary       string
}

// Patch is a partial update to a State. Nil fields are left untouched; set
// fields overwrite the previous value.
type Patch struct {
	StartDate     *time.Time
	EndDate       *time.Time
	LoopCount     *int
	WeatherStatus *WeatherStatus
	Itinerary     *string
	EntranceFees  []float64
	HotelInfo     *HotelInfo
	TotalCost     *float64
	Summary       *string
}

// Apply merges the patch into s and returns the resulting state. s itself is
// left unchanged.
func (p Patch) Apply(s State) State {
	next := s
	if p.StartDate != nil {
		next.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		next.EndDate = *p.EndDate
	}
	if p.LoopCount != nil {
		next.LoopCount = *p.LoopCount
	}
	if p.WeatherStatus != nil {
		next.WeatherStatus = *p.WeatherStatus
	}
	if p.Itinerary != nil {
		next.Itinerary = *p.Itinerary
	}
	if p.EntranceFees != nil {
		next.EntranceFees = p.EntranceFees
	}
	if p.HotelInfo != nil {
		next.HotelInfo = p.HotelInfo
	}
	if p.TotalCost != nil {
		next.TotalCost = p.TotalCost
	}
	if p.Summary != nil {
		next.Summary = *p.Summary
	}
	return next
}
