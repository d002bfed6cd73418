package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type MealRepository interface {
	ListByCategory(ctx context.Context, category string) ([]db_models.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) ListByCategory(ctx context.Context, category string) ([]db_models.Meal, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("price_per_person ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}
