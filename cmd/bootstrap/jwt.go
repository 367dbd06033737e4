package bootstrap

import (
	"time"

	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		panic("invalid AUTH_TOKEN_TTL: " + err.Error())
	}

	return jwt.NewService(cfg.Auth.JWTSecret, tokenTTL)
}
