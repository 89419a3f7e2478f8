package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"tripwise/pkg/utils"
)

type CityResolverInterface interface {
	Resolve(ctx context.Context, name string) (string, error)
	ResolveBatch(ctx context.Context, names []string) (map[string]string, error)
}

var cityCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

const resolverSystemPrompt = `You are a travel expert. Given a city name, return ONLY the 3-letter IATA city code.

Rules:
- Return only the 3-letter code in uppercase
- If multiple airports serve the city, return the main city code (not individual airport codes)
- For cities without IATA codes, return the closest major city code
- If unsure, return 'UNKNOWN'

Examples:
- New York -> NYC
- Los Angeles -> LAX
- London -> LON
- Paris -> PAR
- Tokyo -> TYO`

const resolverBatchSystemPrompt = `You are a travel expert. Given a list of city names, return their IATA city codes in JSON format.

Rules:
- Return a JSON object with city names as keys and 3-letter IATA codes as values
- Use uppercase for codes
- For cities without codes, use the closest major city
- If completely unsure, use null

Example format:
{"New York": "NYC", "Los Angeles": "LAX", "London": "LON"}`

// CityResolver maps city names to 3-letter city codes: seeded cache first,
// model query as fallback. The cache lives for the process only.
type CityResolver struct {
	aiClient utils.CompletionClientInterface
	cache    *gocache.Cache
}

func NewCityResolver(aiClient utils.CompletionClientInterface) CityResolverInterface {
	c := gocache.New(gocache.NoExpiration, 0)
	for city, code := range seedCityCodes {
		c.SetDefault(city, code)
	}
	return &CityResolver{
		aiClient: aiClient,
		cache:    c,
	}
}

func (r *CityResolver) Resolve(ctx context.Context, name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", utils.ErrCityNotFound
	}

	if cached, ok := r.cache.Get(key); ok {
		return cached.(string), nil
	}

	raw, err := r.aiClient.Complete(ctx, resolverSystemPrompt,
		fmt.Sprintf("What is the IATA city code for: %s", name))
	if err != nil {
		log.Printf("City code lookup for %q failed: %v", name, err)
		return "", utils.ErrCityNotFound
	}

	code := strings.ToUpper(strings.TrimSpace(raw))
	if !cityCodePattern.MatchString(code) || code == "UNKNOWN" {
		log.Printf("Could not determine city code for %q (got %q)", name, code)
		return "", utils.ErrCityNotFound
	}

	r.cache.SetDefault(key, code)
	return code, nil
}

// ResolveBatch resolves several cities with one model call. The returned map
// may be partial; unresolved names are simply absent.
func (r *CityResolver) ResolveBatch(ctx context.Context, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	raw, err := r.aiClient.Complete(ctx, resolverBatchSystemPrompt,
		fmt.Sprintf("Get IATA city codes for these cities: %s", strings.Join(names, ", ")))
	if err != nil {
		return nil, utils.ErrProviderFailure
	}

	var parsed map[string]*string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		log.Printf("Batch city code response was not valid JSON: %v", err)
		return nil, utils.ErrUnexpectedAIOutput
	}

	resolved := make(map[string]string)
	for city, code := range parsed {
		if code == nil {
			continue
		}
		upper := strings.ToUpper(strings.TrimSpace(*code))
		if !cityCodePattern.MatchString(upper) || upper == "UNKNOWN" {
			continue
		}
		r.cache.SetDefault(strings.ToLower(strings.TrimSpace(city)), upper)
		resolved[city] = upper
	}
	return resolved, nil
}

// Common city codes pre-seeded to avoid model calls for well-known cities.
var seedCityCodes = map[string]string{
	"new york": "NYC", "new york city": "NYC", "nyc": "NYC",
	"london": "LON", "paris": "PAR", "tokyo": "TYO",
	"los angeles": "LAX", "chicago": "CHI", "miami": "MIA",
	"san francisco": "SFO", "las vegas": "LAS", "boston": "BOS",
	"washington": "WAS", "seattle": "SEA", "denver": "DEN",
	"orlando": "ORL", "atlanta": "ATL", "houston": "HOU",
	"phoenix": "PHX", "dallas": "DFW", "detroit": "DTT",
	"minneapolis": "MSP", "philadelphia": "PHL",
	"rome": "ROM", "madrid": "MAD", "barcelona": "BCN",
	"amsterdam": "AMS", "berlin": "BER", "vienna": "VIE",
	"zurich": "ZUR", "munich": "MUC", "milan": "MIL",
	"dubai": "DXB", "singapore": "SIN", "hong kong": "HKG",
	"bangkok": "BKK", "mumbai": "BOM", "delhi": "DEL",
	"sydney": "SYD", "melbourne": "MEL", "toronto": "YTO",
	"vancouver": "YVR", "montreal": "YMQ", "rio de janeiro": "RIO",
	"sao paulo": "SAO", "buenos aires": "BUE", "mexico city": "MEX",
}
