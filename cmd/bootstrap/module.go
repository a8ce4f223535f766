package bootstrap

import (
	"storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule opens every external connection the service talks to.
var InfraModule = fx.Options(
	DBModule,
	MongoModule,
	RedisModule,
	JWTModule,
	StorageModule,
	MessagingModule,
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	InfraModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	RelayModule,
)
