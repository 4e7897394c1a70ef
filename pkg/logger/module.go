package logger

import (
	"context"

	"go.uber.org/fx"
)

// Module wires the application logger and the HTTP access logger into the
// fx graph and closes the access log on shutdown.
var Module = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewHTTPLogger,
	),
	fx.Invoke(func(lc fx.Lifecycle, hl *HTTPLogger) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return hl.Close()
			},
		})
	}),
)
