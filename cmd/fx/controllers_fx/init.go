package controllers_fx

import (
	"go.uber.org/fx"
	"nearby/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDiscoveryController),
	fx.Provide(controllers.NewCuratedController),
	fx.Provide(controllers.NewHealthController))
