package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *slog.Logger
	Auth     *middleware.AuthMiddleware
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Admin    *api.AuthHandler
	Product  *api.ProductHandler
	Category *api.CategoryHandler
	Upload   *api.UploadHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("")
		public.Use(middleware.SessionMiddleware(p.Config.Cookie))
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/cart", Handler: p.Cart.Get},
			{Method: http.MethodPost, Path: "/cart", Handler: p.Cart.Add},
			{Method: http.MethodPut, Path: "/cart", Handler: p.Cart.Update},
			{Method: http.MethodDelete, Path: "/cart", Handler: p.Cart.Remove},
			{Method: http.MethodPost, Path: "/checkout", Handler: p.Checkout.Checkout},
			{Method: http.MethodGet, Path: "/config/whatsapp", Handler: p.Checkout.WhatsAppConfig},
			{Method: http.MethodGet, Path: "/products", Handler: p.Product.List},
			{Method: http.MethodGet, Path: "/products/:id", Handler: p.Product.Get},
			{Method: http.MethodGet, Path: "/categories", Handler: p.Category.List},
		})

		adminOnly := []gin.HandlerFunc{p.Auth.RequireAdmin()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/admin/auth", Handler: p.Admin.Login},
			{Method: http.MethodGet, Path: "/admin/stats", Handler: p.Product.Stats, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/products", Handler: p.Product.Create, Mw: adminOnly},
			{Method: http.MethodPut, Path: "/products/:id", Handler: p.Product.Update, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/products/:id", Handler: p.Product.Delete, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/categories", Handler: p.Category.Create, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/categories/seed", Handler: p.Category.Seed, Mw: adminOnly},
			{Method: http.MethodPut, Path: "/categories/:id", Handler: p.Category.Update, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/categories/:id", Handler: p.Category.Delete, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/upload", Handler: p.Upload.Upload, Mw: adminOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
