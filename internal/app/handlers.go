package app

import (
	"github.com/saleehq/agent-dashboard/internal/http/handlers"
	"github.com/saleehq/agent-dashboard/internal/http/middleware"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
)

type Handlers struct {
	Dashboard *handlers.DashboardHandler
	API       *handlers.APIHandler
	Health    *handlers.HealthHandler
}

type Middleware struct {
	RequestLog *middleware.RequestLogMiddleware
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Dashboard: handlers.NewDashboardHandler(
			log,
			services.Store,
			services.Sessions,
			services.Renderer,
			services.Variants,
			cfg.LogoURL,
			cfg.ListLimit,
		),
		API:    handlers.NewAPIHandler(log, services.Store, cfg.ListLimit),
		Health: handlers.NewHealthHandler(),
	}
}

func wireMiddleware(log *logger.Logger) Middleware {
	return Middleware{
		RequestLog: middleware.NewRequestLogMiddleware(log),
	}
}
