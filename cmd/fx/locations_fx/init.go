package locations_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideLocationRepo, provideEmbeddingRepo, provideLocationService, provideSearchService)

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.LocationEmbeddingRepository {
	return repositories.NewLocationEmbeddingRepository(db)
}

func provideLocationService(locationRepo repositories.LocationRepository, embeddingRepo repositories.LocationEmbeddingRepository) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo, embeddingRepo)
}

func provideSearchService(embeddingRepo repositories.LocationEmbeddingRepository) services.SearchServiceInterface {
	return services.NewSearchService(embeddingRepo)
}
