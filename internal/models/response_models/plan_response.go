package response_models

type HotelSummary struct {
	Name      string  `json:"name"`
	TotalCost float64 `json:"total_cost"`
}

type TripPlanResponse struct {
	Summary       string       `json:"summary"`
	Location      string       `json:"location"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
	WeatherStatus string       `json:"weather_status"`
	DatesShifted  bool         `json:"dates_shifted"`
	Itinerary     string       `json:"itinerary"`
	EntranceFees  []float64    `json:"entrance_fees"`
	Hotel         HotelSummary `json:"hotel"`
	TotalCost     float64      `json:"total_cost"`
}

type CityCodeResponse struct {
	City string `json:"city"`
	Code string `json:"code"`
}
