package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session *db_models.TripSession) error
	GetSessionByID(ctx context.Context, id string) (*db_models.TripSession, error)

	// SaveSession writes the full session row back. Callers serialize
	// updates per session id; the engine assumes at most one in-flight
	// mutation per session.
	SaveSession(ctx context.Context, session *db_models.TripSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *db_models.TripSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (*db_models.TripSession, error) {
	var session db_models.TripSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session *db_models.TripSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}
