package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voucher-hub/internal/handler/api"
	"voucher-hub/internal/handler/events"
	"voucher-hub/internal/handler/middleware"
	"voucher-hub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	voucherHandler *api.VoucherHandler,
	batchHandler *api.BatchHandler,
	systemHandler *api.SystemHandler,
	eventsHub *events.Hub,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, voucherHandler, batchHandler, systemHandler, eventsHub, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	voucherHandler *api.VoucherHandler,
	batchHandler *api.BatchHandler,
	systemHandler *api.SystemHandler,
	eventsHub *events.Hub,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", systemHandler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// The type catalog is public so login pages can render options.
		apiGroup.GET("/types", voucherHandler.Types)

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/vouchers", Handler: voucherHandler.List},
				{Method: http.MethodPost, Path: "/vouchers", Handler: voucherHandler.Create},
				{Method: http.MethodGet, Path: "/vouchers/:id", Handler: voucherHandler.Get},
				{Method: http.MethodDelete, Path: "/vouchers/:id", Handler: voucherHandler.Revoke},
				{Method: http.MethodGet, Path: "/vouchers/:id/pdf", Handler: voucherHandler.Print},
				{Method: http.MethodPost, Path: "/vouchers/:id/email", Handler: voucherHandler.Email},

				{Method: http.MethodGet, Path: "/batches", Handler: batchHandler.List},
				{Method: http.MethodGet, Path: "/batches/:batch/pdf", Handler: batchHandler.Print},

				{Method: http.MethodPost, Path: "/cache/refresh", Handler: systemHandler.RefreshCache},

				{Method: http.MethodGet, Path: "/events", Handler: eventsHub.Handler()},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
