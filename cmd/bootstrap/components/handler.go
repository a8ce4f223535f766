package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
