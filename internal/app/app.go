package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/saleehq/agent-dashboard/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Router   *gin.Engine
	Cfg      Config
	Clients  Clients
	Services Services
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg := LoadConfig()

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init clients: %w", err)
	}

	services, err := wireServices(log, cfg, clients)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init services: %w", err)
	}

	handlerset := wireHandlers(log, cfg, services)
	middleware := wireMiddleware(log)
	router := wireRouter(cfg, handlerset, middleware)

	return &App{
		Log:      log,
		Router:   router,
		Cfg:      cfg,
		Clients:  clients,
		Services: services,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting dashboard", "addr", a.Cfg.Addr)
	return a.Router.Run(a.Cfg.Addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Clients.BigQuery != nil {
		_ = a.Clients.BigQuery.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
