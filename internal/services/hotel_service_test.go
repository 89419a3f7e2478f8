package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/infra"
	"tripwise/pkg/utils"
)

type stubResolver struct {
	code string
	err  error
}

func (s *stubResolver) Resolve(ctx context.Context, name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.code, nil
}

func (s *stubResolver) ResolveBatch(ctx context.Context, names []string) (map[string]string, error) {
	return nil, errors.New("not used")
}

type stubCatalog struct {
	ids       []string
	offers    []infra.HotelOffer
	listErr   error
	offersErr error
}

func (s *stubCatalog) ListHotelsByCity(ctx context.Context, cityCode string, max int) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.ids, nil
}

func (s *stubCatalog) HotelOffers(ctx context.Context, hotelIDs []string, checkin, checkout string, adults, rooms int) ([]infra.HotelOffer, error) {
	if s.offersErr != nil {
		return nil, s.offersErr
	}
	return s.offers, nil
}

func someOffers() []infra.HotelOffer {
	return []infra.HotelOffer{
		{HotelID: "H1", Name: "Grand Plaza", PriceTotal: 320.00, Currency: "USD"},
		{HotelID: "H2", Name: "Budget Inn", PriceTotal: 145.50, Currency: "USD"},
		{HotelID: "H3", Name: "Mid Hotel", PriceTotal: 210.75, Currency: "USD"},
	}
}

func TestFindCheapestHotel_PicksMinimumPrice(t *testing.T) {
	svc := NewHotelService(
		&stubCatalog{ids: []string{"H1", "H2", "H3"}, offers: someOffers()},
		&stubResolver{code: "PAR"})

	offer, err := svc.FindCheapestHotel(context.Background(), "Paris", "2025-07-20", "2025-07-23", 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Budget Inn", offer.Name)
	assert.Equal(t, 145.50, offer.PriceTotal)
}

func TestFindCheapestHotel_ZeroHotelsFallsBack(t *testing.T) {
	svc := NewHotelService(&stubCatalog{}, &stubResolver{code: "PAR"})

	offer, err := svc.FindCheapestHotel(context.Background(), "Paris", "2025-07-20", "2025-07-23", 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Fallback Hotel", offer.Name)
	assert.Equal(t, 200.0, offer.PriceTotal)
}

func TestFindCheapestHotel_ResolutionFailureFallsBack(t *testing.T) {
	svc := NewHotelService(
		&stubCatalog{ids: []string{"H1"}, offers: someOffers()},
		&stubResolver{err: utils.ErrCityNotFound})

	offer, err := svc.FindCheapestHotel(context.Background(), "Nowhereville", "2025-07-20", "2025-07-23", 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Fallback Hotel", offer.Name)
}

func TestFindCheapestHotel_ProviderErrorsFallBack(t *testing.T) {
	cases := []struct {
		name    string
		catalog *stubCatalog
	}{
		{"listing fails", &stubCatalog{listErr: errors.New("502")}},
		{"offers fail", &stubCatalog{ids: []string{"H1"}, offersErr: errors.New("502")}},
		{"offers parse to nothing", &stubCatalog{ids: []string{"H1"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewHotelService(tc.catalog, &stubResolver{code: "PAR"})
			offer, err := svc.FindCheapestHotel(context.Background(), "Paris", "2025-07-20", "2025-07-23", 2, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, "Fallback Hotel", offer.Name)
			assert.Equal(t, 200.0, offer.PriceTotal)
		})
	}
}

func TestSearchOffers_SortedCheapestFirst(t *testing.T) {
	svc := NewHotelService(
		&stubCatalog{ids: []string{"H1", "H2", "H3"}, offers: someOffers()},
		&stubResolver{code: "PAR"})

	offers, err := svc.SearchOffers(context.Background(), "Paris", "2025-07-20", "2025-07-23", 2, 1, 10)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "Budget Inn", offers[0].Name)
	assert.Equal(t, "Mid Hotel", offers[1].Name)
	assert.Equal(t, "Grand Plaza", offers[2].Name)
}

func TestSearchOffers_RejectsInvertedDates(t *testing.T) {
	svc := NewHotelService(&stubCatalog{}, &stubResolver{code: "PAR"})

	_, err := svc.SearchOffers(context.Background(), "Paris", "2025-07-23", "2025-07-20", 2, 1, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	_, err = svc.SearchOffers(context.Background(), "Paris", "07/20/2025", "2025-07-23", 2, 1, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidDateFormat)
}
