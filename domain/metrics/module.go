package metrics

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(New),
	fx.Invoke(RegisterRoutes),
)

func RegisterRoutes(e *echo.Echo, m *Metrics) {
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}
