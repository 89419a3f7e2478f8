package request_models

type PlanTripRequest struct {
	Location  string `json:"location" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type ResolveCitiesRequest struct {
	Names []string `json:"names" binding:"required"`
}
