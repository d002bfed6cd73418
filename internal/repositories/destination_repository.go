package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type DestinationRepository interface {
	GetDestinationByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error)

	// FindByName is the compatibility shim for sessions whose destination
	// answer never resolved to an id: case-insensitive substring match.
	FindByName(ctx context.Context, name string) (*db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func orderedAttractions(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order")
}

func (r *destinationRepository) GetDestinationByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Attractions", orderedAttractions).
		First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) FindByName(ctx context.Context, name string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Attractions", orderedAttractions).
		Where("is_active = ?", true).
		First(&destination, "name ILIKE ?", "%"+name+"%").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}
