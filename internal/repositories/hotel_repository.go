package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type HotelRepository interface {
	// CheapestByStar returns the cheapest active hotel at the given star
	// rating, or nil when none exists.
	CheapestByStar(ctx context.Context, star int) (*db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) CheapestByStar(ctx context.Context, star int) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("star = ? AND is_active = ?", star, true).
		Order("price_per_night ASC").
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}
