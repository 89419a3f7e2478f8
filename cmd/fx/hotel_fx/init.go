package hotel_fx

import (
	"log"
	"os"
	"tripwise/cmd/fx/ai_fx"
	"tripwise/internal/infra"
	"tripwise/internal/services"
	"tripwise/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideTokenStore,
	ProvideHotelCatalog,
	ProvideHotelService)

func ProvideTokenStore() *memcache.TokenStore {
	return memcache.NewTokenStore()
}

func ProvideHotelCatalog(tokens *memcache.TokenStore) infra.HotelCatalogInterface {
	clientID := os.Getenv("AMADEUS_CLIENT_ID")
	clientSecret := os.Getenv("AMADEUS_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Println("AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set, hotel search will use fallback data")
	}

	baseURL := infra.AmadeusTestURL
	if ai_fx.GetEnvWithDefault("AMADEUS_ENV", "test") == "production" {
		baseURL = infra.AmadeusProdURL
	}

	return infra.NewAmadeusClient(clientID, clientSecret, baseURL, tokens)
}

func ProvideHotelService(catalog infra.HotelCatalogInterface, resolver services.CityResolverInterface) services.HotelServiceInterface {
	return services.NewHotelService(catalog, resolver)
}
