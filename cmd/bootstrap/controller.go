package bootstrap

import (
	"log/slog"

	"voucher-hub/internal/infra/unifi"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/usecase"

	"go.uber.org/fx"
)

var ControllerModule = fx.Module("controller",
	fx.Provide(
		fx.Annotate(
			NewControllerClient,
			fx.As(new(usecase.ControllerClient)),
		),
	),
)

func NewControllerClient(cfg config.Config, logger *slog.Logger) *unifi.Client {
	return unifi.NewClient(cfg.Unifi, logger)
}
