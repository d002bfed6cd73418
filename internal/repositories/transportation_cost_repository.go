package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type TransportationCostRepository interface {
	FindRoute(ctx context.Context, from, to, mode string) (*db_models.TransportationCost, error)
}

type transportationCostRepository struct {
	db *gorm.DB
}

func NewTransportationCostRepository(db *gorm.DB) TransportationCostRepository {
	return &transportationCostRepository{db: db}
}

func (r *transportationCostRepository) FindRoute(ctx context.Context, from, to, mode string) (*db_models.TransportationCost, error) {
	var route db_models.TransportationCost
	err := r.db.WithContext(ctx).
		First(&route, "LOWER(from_location) = LOWER(?) AND LOWER(to_location) = LOWER(?) AND LOWER(mode) = LOWER(?)",
			from, to, mode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}
