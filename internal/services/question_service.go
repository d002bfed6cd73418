package services

import (
	"context"
	"log"
	"time"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/db_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/models/response_models"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
	mem "github.com/HeangSokmeng/camtour-api-sub000/pkg/memcache"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/utils"
)

const (
	questionListCacheKey = "questions:list"
	questionListCacheTTL = 5 * time.Minute
)

// QuestionServiceInterface walks a session through the fixed dimension order
// and serves the question catalog.
type QuestionServiceInterface interface {
	GetQuestions(ctx context.Context) ([]response_models.QuestionResponse, error)
	GetQuestionByDimension(ctx context.Context, dimension string) (*response_models.QuestionResponse, error)

	// NextQuestion returns the question for the first unanswered dimension,
	// or nil when the session is complete and ready to compute.
	NextQuestion(ctx context.Context, session *db_models.TripSession) (*response_models.QuestionResponse, error)
}

type QuestionService struct {
	questionRepo repositories.QuestionRepository
	cache        mem.CatalogCache
}

func NewQuestionService(questionRepo repositories.QuestionRepository, cache mem.CatalogCache) QuestionServiceInterface {
	return &QuestionService{
		questionRepo: questionRepo,
		cache:        cache,
	}
}

func (s *QuestionService) GetQuestions(ctx context.Context) ([]response_models.QuestionResponse, error) {
	if cached, ok := s.cache.Get(questionListCacheKey); ok {
		if questions, ok := cached.([]response_models.QuestionResponse); ok {
			return questions, nil
		}
	}

	questions, err := s.questionRepo.ListActiveQuestions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, response_models.BuildQuestionResponse(&questions[i]))
	}

	s.cache.Set(questionListCacheKey, out, questionListCacheTTL)
	return out, nil
}

func (s *QuestionService) GetQuestionByDimension(ctx context.Context, dimension string) (*response_models.QuestionResponse, error) {
	if !db_models.IsKnownDimension(dimension) {
		return nil, utils.ErrUnknownDimension
	}

	question, err := s.questionRepo.GetQuestionByDimension(ctx, dimension)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if question == nil {
		return nil, utils.ErrQuestionNotFound
	}

	out := response_models.BuildQuestionResponse(question)
	return &out, nil
}

func (s *QuestionService) NextQuestion(ctx context.Context, session *db_models.TripSession) (*response_models.QuestionResponse, error) {
	dimension := session.FirstUnanswered()
	if dimension == "" {
		return nil, nil
	}

	question, err := s.questionRepo.GetQuestionByDimension(ctx, dimension)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if question == nil {
		// The dimension is still required even when the catalog has no
		// question row for it; hand back a bare stub so the flow can
		// keep moving.
		log.Printf("no question seeded for dimension %q", dimension)
		return &response_models.QuestionResponse{
			Dimension: dimension,
			Title:     dimension,
			Options:   []response_models.OptionResponse{},
		}, nil
	}

	out := response_models.BuildQuestionResponse(question)
	return &out, nil
}
