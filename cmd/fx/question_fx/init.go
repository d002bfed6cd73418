package question_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/repositories"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/services"
	mem "github.com/HeangSokmeng/camtour-api-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideQuestionRepo,
	provideCatalogCache,
	provideQuestionService)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepository {
	return repositories.NewQuestionRepository(db)
}

func provideCatalogCache() mem.CatalogCache {
	return mem.NewSnapshots()
}

func provideQuestionService(questionRepo repositories.QuestionRepository, cache mem.CatalogCache) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, cache)
}
