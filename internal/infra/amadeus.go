package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripwise/pkg/memcache"
)

const (
	AmadeusTestURL = "https://test.api.amadeus.com"
	AmadeusProdURL = "https://api.amadeus.com"

	// Providers declare token expiry; renew this much earlier to avoid
	// racing the deadline.
	tokenSafetyMargin = 60 * time.Second

	// The offers endpoint takes hotel IDs in the query string; more than
	// this and the URL gets rejected.
	maxOfferIDs = 15
)

// HotelOffer is one priced room option at one hotel, parsed from the offers
// endpoint. Consumed mainly to pick the minimum price_total.
type HotelOffer struct {
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
	CancellationDeadline string  `json:"cancellation_deadline"`
}

// HotelCatalogInterface is what the hotel service needs from the pricing
// provider.
type HotelCatalogInterface interface {
	ListHotelsByCity(ctx context.Context, cityCode string, max int) ([]string, error)
	HotelOffers(ctx context.Context, hotelIDs []string, checkin, checkout string, adults, rooms int) ([]HotelOffer, error)
}

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	tokens       *memcache.TokenStore
	httpClient   *http.Client
}

func NewAmadeusClient(clientID, clientSecret, baseURL string, tokens *memcache.TokenStore) *AmadeusClient {
	if baseURL == "" {
		baseURL = AmadeusTestURL
	}
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		tokens:       tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// token returns a cached bearer token, requesting a new one only when none is
// cached or the cached one has passed its safety-adjusted expiry.
func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	if tok, ok := c.tokens.Peek(c.clientID); ok {
		return tok, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("amadeus token response: %w", err)
	}

	ttl := time.Duration(result.ExpiresIn)*time.Second - tokenSafetyMargin
	c.tokens.Set(c.clientID, result.AccessToken, ttl)

	return result.AccessToken, nil
}

// ListHotelsByCity returns up to max hotel IDs within a 20 km radius of the
// city code.
func (c *AmadeusClient) ListHotelsByCity(ctx context.Context, cityCode string, max int) ([]string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("cityCode", cityCode)
	params.Set("radius", "20")
	params.Set("radiusUnit", "KM")
	params.Set("hotelSource", "ALL")

	var result struct {
		Data []struct {
			HotelID string `json:"hotelId"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/v1/reference-data/locations/hotels/by-city", params, token, &result); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Data))
	for _, h := range result.Data {
		if len(ids) == max {
			break
		}
		ids = append(ids, h.HotelID)
	}
	return ids, nil
}

// HotelOffers fetches priced offers for the given hotel IDs in one batch call
// and flattens them into HotelOffer records, one per room type.
func (c *AmadeusClient) HotelOffers(ctx context.Context, hotelIDs []string, checkin, checkout string, adults, rooms int) ([]HotelOffer, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	if len(hotelIDs) > maxOfferIDs {
		hotelIDs = hotelIDs[:maxOfferIDs]
	}

	params := url.Values{}
	params.Set("hotelIds", strings.Join(hotelIDs, ","))
	params.Set("checkInDate", checkin)
	params.Set("checkOutDate", checkout)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("roomQuantity", strconv.Itoa(rooms))
	params.Set("currency", "USD")
	params.Set("lang", "EN")

	var result hotelOffersResponse
	if err := c.getJSON(ctx, "/v3/shopping/hotel-offers", params, token, &result); err != nil {
		return nil, err
	}

	return parseHotelOffers(result), nil
}

func (c *AmadeusClient) getJSON(ctx context.Context, path string, params url.Values, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("amadeus %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("Amadeus %s returned %d: %s", path, resp.StatusCode, string(body))
		return fmt.Errorf("amadeus %s failed with status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("amadeus %s response: %w", path, err)
	}
	return nil
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID string `json:"hotelId"`
			Name    string `json:"name"`
			Rating  string `json:"rating"`
			Address struct {
				Lines    []string `json:"lines"`
				CityName string   `json:"cityName"`
			} `json:"address"`
		} `json:"hotel"`
		Offers []struct {
			Price struct {
				Total    string `json:"total"`
				Base     string `json:"base"`
				Currency string `json:"currency"`
			} `json:"price"`
			Room struct {
				Type          string `json:"type"`
				TypeEstimated struct {
					Category string `json:"category"`
				} `json:"typeEstimated"`
			} `json:"room"`
			Policies struct {
				Cancellation struct {
					Deadline string `json:"deadline"`
				} `json:"cancellation"`
			} `json:"policies"`
		} `json:"offers"`
	} `json:"data"`
}

func parseHotelOffers(resp hotelOffersResponse) []HotelOffer {
	var offers []HotelOffer
	for _, h := range resp.Data {
		address := ""
		if len(h.Hotel.Address.Lines) > 0 {
			address = h.Hotel.Address.Lines[0]
		}
		for _, o := range h.Offers {
			total, err := strconv.ParseFloat(o.Price.Total, 64)
			if err != nil {
				continue
			}
			base, _ := strconv.ParseFloat(o.Price.Base, 64)
			offers = append(offers, HotelOffer{
				HotelID:              h.Hotel.HotelID,
				Name:                 h.Hotel.Name,
				Address:              address,
				City:                 h.Hotel.Address.CityName,
				Rating:               h.Hotel.Rating,
				RoomType:             o.Room.Type,
				RoomDescription:      o.Room.TypeEstimated.Category,
				PriceTotal:           total,
				PriceBase:            base,
				Currency:             o.Price.Currency,
				CancellationDeadline: o.Policies.Cancellation.Deadline,
			})
		}
	}
	return offers
}
