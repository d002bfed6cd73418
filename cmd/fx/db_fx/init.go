package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/config"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
