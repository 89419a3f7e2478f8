package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/ai_fx"
	"tripwise/cmd/fx/hotel_fx"
	"tripwise/cmd/fx/planner_fx"
	"tripwise/cmd/fx/search_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		ai_fx.Module,
		search_fx.Module,
		hotel_fx.Module,
		planner_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	cityController *controllers.CityController,
	hotelController *controllers.HotelController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, cityController, hotelController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	cityController *controllers.CityController,
	hotelController *controllers.HotelController) {

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	api.POST("/trips/plan", plannerController.PlanTripHandler)

	api.GET("/cities/code", cityController.ResolveCityHandler)
	api.POST("/cities/codes", cityController.ResolveCitiesHandler)

	api.GET("/hotels/offers", hotelController.SearchOffersHandler)
	api.GET("/hotels/cheapest", hotelController.CheapestHotelHandler)
}
