package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voucher-hub/internal/infra/cache"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/usecase"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		cache.NewStore,
		usecase.NewRefresher,
	),
	fx.Invoke(StartSync),
)

// StartSync performs the initial cache refresh and keeps a periodic resync
// running for the lifetime of the process.
func StartSync(lc fx.Lifecycle, refresher usecase.Refresher, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()

				refresher.Refresh(ctx)

				ticker := time.NewTicker(cfg.Voucher.SyncInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						logger.Info("auto sync: starting", "interval", cfg.Voucher.SyncInterval)
						refresher.Refresh(ctx)
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}
