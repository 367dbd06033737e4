package components

import (
	"log/slog"

	"voucher-hub/internal/handler"
	"voucher-hub/internal/handler/api"
	"voucher-hub/internal/handler/events"
	"voucher-hub/internal/handler/middleware"
	"voucher-hub/internal/infra/mailer"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewMailer,
		NewEventsHub,
		api.NewAuthHandler,
		api.NewVoucherHandler,
		api.NewBatchHandler,
		api.NewSystemHandler,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewMailer(cfg config.Config) mailer.Mailer {
	return mailer.NewMailer(cfg.SMTP)
}

func NewEventsHub(logger *slog.Logger) (*events.Hub, usecase.RefreshNotifier) {
	hub := events.NewHub(logger)
	return hub, hub
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokenValidator, cfg.Auth.Disabled)
}
