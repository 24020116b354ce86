package controllers_fx

import (
	"go.uber.org/fx"
	"userhub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewHealthController))
