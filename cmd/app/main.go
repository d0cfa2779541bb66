package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/budget_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/itinerary_fx"
	"tripmate/cmd/fx/locations_fx"
	"tripmate/cmd/fx/plan_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		locations_fx.Module,
		plan_fx.Module,
		itinerary_fx.Module,
		budget_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	accountController *controllers.AccountController,
	locationsController *controllers.LocationsController,
	planController *controllers.PlanController,
	itineraryController *controllers.ItineraryController,
	budgetController *controllers.BudgetController,
	searchController *controllers.SearchController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, locationsController, planController, itineraryController, budgetController, searchController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	locationsController *controllers.LocationsController,
	planController *controllers.PlanController,
	itineraryController *controllers.ItineraryController,
	budgetController *controllers.BudgetController,
	searchController *controllers.SearchController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	locationsGroup := authed.Group("/locations")
	locationsGroup.POST("", locationsController.AddLocation)
	locationsGroup.PUT("/recommendations", locationsController.StoreRecommendations)
	locationsGroup.GET("/:collection", locationsController.ListCollection)
	locationsGroup.DELETE("/:id", locationsController.RemoveLocation)

	plansGroup := authed.Group("/plans")
	plansGroup.POST("/generate", planController.GeneratePlan)
	plansGroup.POST("/replace-stop", planController.ReplaceStop)
	plansGroup.POST("/reoptimize", planController.Reoptimize)

	itinerariesGroup := authed.Group("/itineraries")
	itinerariesGroup.POST("", itineraryController.SaveItinerary)
	itinerariesGroup.GET("", itineraryController.ListItineraries)
	itinerariesGroup.GET("/by-title", itineraryController.GetItineraryByTitle)
	itinerariesGroup.DELETE("/:id", itineraryController.DeleteItinerary)

	budgetGroup := authed.Group("/budget")
	budgetGroup.POST("/predict", budgetController.PredictBudget)

	searchGroup := authed.Group("/search")
	searchGroup.GET("/locations", searchController.SearchLocations)
}
