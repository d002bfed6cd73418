package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type QuestionRepository interface {
	ListActiveQuestions(ctx context.Context) ([]db_models.Question, error)
	GetQuestionByDimension(ctx context.Context, dimension string) (*db_models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func activeOptions(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("sort_order")
}

func (r *questionRepository) ListActiveQuestions(ctx context.Context) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Preload("Options", activeOptions).
		Where("is_active = ?", true).
		Order("sort_order").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) GetQuestionByDimension(ctx context.Context, dimension string) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).
		Preload("Options", activeOptions).
		First(&question, "dimension = ? AND is_active = ?", dimension, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}
