package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/saleehq/agent-dashboard/internal/http/handlers"
	"github.com/saleehq/agent-dashboard/internal/http/middleware"
)

type RouterConfig struct {
	DashboardHandler *handlers.DashboardHandler
	APIHandler       *handlers.APIHandler
	HealthHandler    *handlers.HealthHandler
	RequestLog       *middleware.RequestLogMiddleware
	AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLog != nil {
		router.Use(cfg.RequestLog.Handler())
	}

	// Cors
	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	router.GET("/", cfg.DashboardHandler.Dashboard)

	api := router.Group("/api")
	{
		api.GET("/conversations", cfg.APIHandler.ListConversations)
		api.GET("/conversations/:chatId/topics", cfg.APIHandler.ListTopics)
	}

	return router
}
