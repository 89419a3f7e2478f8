package services

import (
	"context"
	"log"
	"sort"
	"time"

	"tripwise/internal/infra"
	"tripwise/pkg/utils"
)

type HotelServiceInterface interface {
	FindCheapestHotel(ctx context.Context, location, checkin, checkout string, adults, rooms, maxResults int) (*infra.HotelOffer, error)
	SearchOffers(ctx context.Context, location, checkin, checkout string, adults, rooms, maxResults int) ([]infra.HotelOffer, error)
}

// FallbackHotel is substituted whenever real pricing data cannot be obtained.
var FallbackHotel = infra.HotelOffer{
	Name:       "Fallback Hotel",
	PriceTotal: 200.0,
	Currency:   "USD",
}

type HotelService struct {
	catalog  infra.HotelCatalogInterface
	resolver CityResolverInterface
}

func NewHotelService(catalog infra.HotelCatalogInterface, resolver CityResolverInterface) HotelServiceInterface {
	return &HotelService{
		catalog:  catalog,
		resolver: resolver,
	}
}

// SearchOffers resolves the location, lists hotels around it and prices them,
// returning offers sorted by total price, cheapest first.
func (s *HotelService) SearchOffers(ctx context.Context, location, checkin, checkout string, adults, rooms, maxResults int) ([]infra.HotelOffer, error) {
	code, err := s.resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}

	checkinDate, err := utils.ParseDate(checkin)
	if err != nil {
		return nil, utils.ErrInvalidDateFormat
	}
	checkoutDate, err := utils.ParseDate(checkout)
	if err != nil {
		return nil, utils.ErrInvalidDateFormat
	}
	if !checkoutDate.After(checkinDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if checkinDate.Before(time.Now()) {
		log.Printf("Warning: check-in date %s is in the past", checkin)
	}

	ids, err := s.catalog.ListHotelsByCity(ctx, code, maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	offers, err := s.catalog.HotelOffers(ctx, ids, checkin, checkout, adults, rooms)
	if err != nil {
		return nil, err
	}

	sort.Slice(offers, func(i, j int) bool {
		return offers[i].PriceTotal < offers[j].PriceTotal
	})
	if len(offers) > 10 {
		offers = offers[:10]
	}
	return offers, nil
}

// FindCheapestHotel returns the minimum-priced offer, or the fixed fallback
// when the search yields nothing or any provider step fails. Callers never
// see a hard error from the pricing path.
func (s *HotelService) FindCheapestHotel(ctx context.Context, location, checkin, checkout string, adults, rooms, maxResults int) (*infra.HotelOffer, error) {
	offers, err := s.SearchOffers(ctx, location, checkin, checkout, adults, rooms, maxResults)
	if err != nil {
		log.Printf("Hotel search for %q failed, using fallback: %v", location, err)
		fallback := FallbackHotel
		return &fallback, nil
	}
	if len(offers) == 0 {
		log.Printf("No hotel offers found for %q, using fallback", location)
		fallback := FallbackHotel
		return &fallback, nil
	}

	cheapest := offers[0]
	return &cheapest, nil
}
