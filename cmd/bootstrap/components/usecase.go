package components

import (
	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
	"storefront/internal/usecase"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config, clk clock.Clock) *order.NumberGenerator {
			return order.NewNumberGenerator(cfg.Store.OrderNumberPrefix, clk)
		},
		fx.As(new(commands.OrderNumbers)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewCatalogCommands,
		commands.NewUploadCommands,
		func(cfg config.Config, tokens commands.TokenIssuer) (commands.AuthCommands, error) {
			if err := password.CheckHash(cfg.Admin.PasswordHash); err != nil {
				return nil, err
			}
			return commands.NewAuthCommands(cfg.Admin.PasswordHash, tokens), nil
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewProductQueries,
		queries.NewCategoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
