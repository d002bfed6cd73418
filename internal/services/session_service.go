package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/response_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/utils"
)

var hotelStarValues = map[string]int{
	"star1": 1,
	"star2": 2,
	"star3": 3,
}

type SessionServiceInterface interface {
	StartSession(ctx context.Context, budget decimal.Decimal) (*response_models.StartSessionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID, dimension, value string) (*response_models.SubmitAnswerResponse, error)
	GetRecommendation(ctx context.Context, sessionID string) (*response_models.StoredRecommendation, error)
}

type SessionService struct {
	sessionRepo           repositories.SessionRepository
	destinationRepo       repositories.DestinationRepository
	questionService       QuestionServiceInterface
	recommendationService RecommendationServiceInterface
}

func NewSessionService(
	sessionRepo repositories.SessionRepository,
	destinationRepo repositories.DestinationRepository,
	questionService QuestionServiceInterface,
	recommendationService RecommendationServiceInterface,
) SessionServiceInterface {
	return &SessionService{
		sessionRepo:           sessionRepo,
		destinationRepo:       destinationRepo,
		questionService:       questionService,
		recommendationService: recommendationService,
	}
}

func (s *SessionService) StartSession(ctx context.Context, budget decimal.Decimal) (*response_models.StartSessionResponse, error) {
	if !budget.IsPositive() {
		return nil, utils.ErrInvalidBudget
	}

	session := &db_models.TripSession{
		Budget:  budget,
		Answers: db_models.AnswerMap{},
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.StartSessionResponse{
		SessionID:    session.ID.String(),
		NextQuestion: "questions",
	}, nil
}

func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, dimension, value string) (*response_models.SubmitAnswerResponse, error) {
	// Everything is validated before the session is touched.
	if sessionID == "" || dimension == "" {
		return nil, utils.ErrInvalidInput
	}
	if !db_models.IsKnownDimension(dimension) {
		return nil, utils.ErrUnknownDimension
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, utils.ErrEmptyAnswer
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	if err := s.applyAnswer(ctx, session, dimension, value); err != nil {
		return nil, err
	}

	if session.IsComplete() {
		// Resubmitting against an already-finalized session lands here
		// too: the result is recomputed and overwritten.
		result, err := s.finalizeSession(ctx, session)
		if err != nil {
			return nil, err
		}
		return &response_models.SubmitAnswerResponse{
			SessionID: session.ID.String(),
			Complete:  true,
			Result:    result,
		}, nil
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	next, err := s.questionService.NextQuestion(ctx, session)
	if err != nil {
		return nil, err
	}
	return &response_models.SubmitAnswerResponse{
		SessionID:    session.ID.String(),
		Complete:     false,
		NextQuestion: next,
	}, nil
}

// applyAnswer merges the answer into the map and mirrors it into the typed
// session field for its dimension. One mapping, one place.
func (s *SessionService) applyAnswer(ctx context.Context, session *db_models.TripSession, dimension, value string) error {
	switch dimension {
	case db_models.DimTransportation:
		session.Transportation = value
	case db_models.DimDeparture:
		session.Departure = value
	case db_models.DimDuration:
		days, err := strconv.Atoi(value)
		if err != nil || days < 1 {
			return utils.ErrInvalidInput
		}
		session.DurationDays = days
	case db_models.DimPartySize:
		size, err := strconv.Atoi(value)
		if err != nil || size < 1 {
			return utils.ErrInvalidInput
		}
		session.PartySize = size
	case db_models.DimAgeRange:
		session.AgeRange = value
	case db_models.DimDestination:
		session.Destination = value
		session.DestinationID = nil
		// Resolve the catalog reference once, here, instead of fuzzy
		// matching on every cost computation. A miss is soft.
		destination, err := s.destinationRepo.FindByName(ctx, value)
		if err != nil {
			log.Printf("destination resolution failed for %q: %v", value, err)
		} else if destination != nil {
			id := destination.ID
			session.DestinationID = &id
		}
	case db_models.DimLocalTransportation:
		session.LocalTransport = value
	case db_models.DimMealPreference:
		session.MealPreference = value
	case db_models.DimHotel:
		star, ok := hotelStarValues[value]
		if !ok {
			return utils.ErrInvalidInput
		}
		session.HotelStar = star
	}
	session.SetAnswer(dimension, value)
	return nil
}

func (s *SessionService) finalizeSession(ctx context.Context, session *db_models.TripSession) (*response_models.RecommendationResult, error) {
	result, err := s.recommendationService.Compose(ctx, session)
	if err != nil {
		return nil, err
	}

	recommendationJSON, err := json.Marshal(result.Recommendation)
	if err != nil {
		return nil, err
	}
	itineraryJSON, err := json.Marshal(result.Itinerary)
	if err != nil {
		return nil, err
	}

	session.TotalCost = result.Recommendation.Breakdown.Total
	session.MealCost = result.Recommendation.Breakdown.Meals
	session.LocalTransportCost = result.Recommendation.Breakdown.LocalTransport
	session.RecommendationJSON = datatypes.JSON(recommendationJSON)
	session.ItineraryJSON = datatypes.JSON(itineraryJSON)
	session.CompletedAt = utils.NowUnixSeconds()

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return result, nil
}

func (s *SessionService) GetRecommendation(ctx context.Context, sessionID string) (*response_models.StoredRecommendation, error) {
	if sessionID == "" {
		return nil, utils.ErrInvalidInput
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if session.CompletedAt == 0 || len(session.RecommendationJSON) == 0 {
		return nil, utils.ErrRecommendationNotReady
	}

	// Stored blobs pass through untouched so repeated reads return the
	// persisted result byte for byte.
	return &response_models.StoredRecommendation{
		SessionID:          session.ID.String(),
		Recommendation:     json.RawMessage(session.RecommendationJSON),
		Itinerary:          json.RawMessage(session.ItineraryJSON),
		TotalCost:          session.TotalCost,
		MealCost:           session.MealCost,
		LocalTransportCost: session.LocalTransportCost,
	}, nil
}
