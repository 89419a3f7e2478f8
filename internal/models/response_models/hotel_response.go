package response_models

import "tripwise/internal/infra"

type HotelOfferResponse struct {
	HotelID              string  `json:"hotel_id"`
	Name                 string  `json:"name"`
	Address              string  `json:"address"`
	City                 string  `json:"city"`
	Rating               string  `json:"rating"`
	RoomType             string  `json:"room_type"`
	RoomDescription      string  `json:"room_description"`
	PriceTotal           float64 `json:"price_total"`
	PriceBase            float64 `json:"price_base"`
	Currency             string  `json:"currency"`
	CancellationDeadline string  `json:"cancellation_deadline,omitempty"`
}

func FromHotelOffer(o infra.HotelOffer) HotelOfferResponse {
	return HotelOfferResponse{
		HotelID:              o.HotelID,
		Name:                 o.Name,
		Address:              o.Address,
		City:                 o.City,
		Rating:               o.Rating,
		RoomType:             o.RoomType,
		RoomDescription:      o.RoomDescription,
		PriceTotal:           o.PriceTotal,
		PriceBase:            o.PriceBase,
		Currency:             o.Currency,
		CancellationDeadline: o.CancellationDeadline,
	}
}
