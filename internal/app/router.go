package app

import (
	"github.com/gin-gonic/gin"

	"github.com/saleehq/agent-dashboard/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		DashboardHandler: handlers.Dashboard,
		APIHandler:       handlers.API,
		HealthHandler:    handlers.Health,
		RequestLog:       middleware.RequestLog,
		AllowOrigins:     cfg.AllowOrigins,
	})
}
