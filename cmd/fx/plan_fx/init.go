package plan_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideRoutingEngine, provideSummarizer, providePlanService)

func provideRoutingEngine() services.RoutingEngineService {
	return services.NewRoutingEngineClient()
}

// provideSummarizer returns nil when no Gemini key is configured; plan
// generation works without summaries.
func provideSummarizer() services.TripSummarizer {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}
	client, err := utils.NewGeminiSummaryClient(apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Printf("Gemini client unavailable: %v", err)
		return nil
	}
	return client
}

func providePlanService(locationRepo repositories.LocationRepository, routing services.RoutingEngineService, summarizer services.TripSummarizer) services.PlanServiceInterface {
	return services.NewPlanService(locationRepo, routing, summarizer)
}
