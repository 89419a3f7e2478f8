package search_fx

import (
	"log"
	"os"
	"tripwise/internal/infra"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideSearchClient)

func ProvideSearchClient() infra.SearchClientInterface {
	apiKey := os.Getenv("TAVILY_API_KEY")
	if apiKey == "" {
		log.Println("TAVILY_API_KEY not set, weather and fee research will degrade to defaults")
	}
	return infra.NewTavilyClient(apiKey, "")
}
