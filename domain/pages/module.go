package pages

import (
	"go.uber.org/fx"
)

var Module = fx.Module("pages",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
