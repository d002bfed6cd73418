package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type LocalTransportRepository interface {
	// FindByName matches by case-insensitive substring on the display name.
	FindByName(ctx context.Context, name string) (*db_models.LocalTransportOption, error)
}

type localTransportRepository struct {
	db *gorm.DB
}

func NewLocalTransportRepository(db *gorm.DB) LocalTransportRepository {
	return &localTransportRepository{db: db}
}

func (r *localTransportRepository) FindByName(ctx context.Context, name string) (*db_models.LocalTransportOption, error) {
	var option db_models.LocalTransportOption
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&option, "name ILIKE ?", "%"+name+"%").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}
