package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/HeangSokmeng/camtour-api-sub000/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuestionController),
	fx.Provide(controllers.NewTripController))
