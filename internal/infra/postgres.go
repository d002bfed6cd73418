package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/config"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// PrepareDatabase migrates the schema and optionally seeds the reference
// catalogs. Invoked once on startup.
func PrepareDatabase(db *gorm.DB, cfg *config.Config) error {
	err := db.AutoMigrate(
		&db_models.Question{},
		&db_models.QuestionOption{},
		&db_models.TransportationCost{},
		&db_models.Hotel{},
		&db_models.Meal{},
		&db_models.LocalTransportOption{},
		&db_models.Destination{},
		&db_models.DestinationAttraction{},
		&db_models.TripSession{},
	)
	if err != nil {
		return err
	}

	if cfg.SeedCatalogs {
		return SeedCatalogs(db)
	}
	return nil
}
