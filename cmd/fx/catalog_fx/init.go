package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
)

// Module provides the read-only reference catalog repositories.
var Module = fx.Provide(
	provideTransportationCostRepo,
	provideHotelRepo,
	provideMealRepo,
	provideLocalTransportRepo,
	provideDestinationRepo)

func provideTransportationCostRepo(db *gorm.DB) repositories.TransportationCostRepository {
	return repositories.NewTransportationCostRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideMealRepo(db *gorm.DB) repositories.MealRepository {
	return repositories.NewMealRepository(db)
}

func provideLocalTransportRepo(db *gorm.DB) repositories.LocalTransportRepository {
	return repositories.NewLocalTransportRepository(db)
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}
