package planner_fx

import (
	"tripwise/internal/api/controllers"
	"tripwise/internal/infra"
	"tripwise/internal/services"
	"tripwise/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideCityResolver,
	ProvideResearchService,
	ProvideItineraryService,
	ProvidePlannerService,
	ProvidePlannerController,
	ProvideCityController,
	ProvideHotelController)

func ProvideCityResolver(aiClient utils.CompletionClientInterface) services.CityResolverInterface {
	return services.NewCityResolver(aiClient)
}

func ProvideResearchService(search infra.SearchClientInterface) services.ResearchServiceInterface {
	return services.NewResearchService(search)
}

func ProvideItineraryService(aiClient utils.CompletionClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient)
}

func ProvidePlannerService(
	research services.ResearchServiceInterface,
	itinerary services.ItineraryServiceInterface,
	hotels services.HotelServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(research, itinerary, hotels)
}

func ProvidePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

func ProvideCityController(resolver services.CityResolverInterface) *controllers.CityController {
	return controllers.NewCityController(resolver)
}

func ProvideHotelController(hotelService services.HotelServiceInterface) *controllers.HotelController {
	return controllers.NewHotelController(hotelService)
}
