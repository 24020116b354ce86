package registry_fx

import (
	"go.uber.org/fx"
	"userhub/internal/infra"
)

var Module = fx.Provide(
	infra.NewServiceRegistry)
