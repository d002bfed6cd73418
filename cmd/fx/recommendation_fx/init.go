package recommendation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo,
	provideCostService,
	provideItineraryService,
	provideRecommendationService,
	provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideCostService(
	routeRepo repositories.TransportationCostRepository,
	hotelRepo repositories.HotelRepository,
	localRepo repositories.LocalTransportRepository,
	destinationRepo repositories.DestinationRepository,
) services.CostServiceInterface {
	return services.NewCostService(routeRepo, hotelRepo, localRepo, destinationRepo)
}

func provideItineraryService(mealRepo repositories.MealRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(mealRepo)
}

func provideRecommendationService(
	costService services.CostServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(costService, itineraryService)
}

func provideSessionService(
	sessionRepo repositories.SessionRepository,
	destinationRepo repositories.DestinationRepository,
	questionService services.QuestionServiceInterface,
	recommendationService services.RecommendationServiceInterface,
) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, destinationRepo, questionService, recommendationService)
}
