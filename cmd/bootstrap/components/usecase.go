package components

import (
	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/clock"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/jwt"
	"voucher-hub/internal/usecase"
	"voucher-hub/internal/usecase/commands"
	"voucher-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewVoucherCatalog,
		NewVoucherCommands,
		NewAuthCommands,
		queries.NewVoucherQueries,
		usecase.NewTokenValidator,
	),
)

func NewVoucherCatalog(cfg config.Config) (*voucher.Catalog, error) {
	if cfg.Voucher.TypesFile != "" {
		return voucher.LoadTypesFile(cfg.Voucher.TypesFile)
	}
	return voucher.ParseTypes(cfg.Voucher.Types)
}

func NewVoucherCommands(client usecase.ControllerClient, refresher usecase.Refresher, catalog *voucher.Catalog, cfg config.Config) commands.VoucherCommands {
	return commands.NewVoucherCommands(client, refresher, catalog, cfg.Voucher.CustomTypes)
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) (commands.AuthCommands, error) {
	pw := cfg.Auth.Password
	if pw == "" {
		// Auth is disabled: keep the login endpoint unusable rather than
		// wide open behind an empty password.
		pw = uuid.NewString()
	}
	return commands.NewAuthCommands(pw, jwtService)
}
