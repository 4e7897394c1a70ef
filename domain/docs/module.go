package docs

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/aks-labs/website/internal/config"
)

var Module = fx.Module("documentation",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(registerWatcher),
)

// registerWatcher starts the content watcher unless watching is disabled.
func registerWatcher(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger, svc *Service) {
	if !cfg.Content.Watch {
		return
	}

	w := NewWatcher(cfg, log, svc)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.Start()
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop()
		},
	})
}
