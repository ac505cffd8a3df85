package app

import (
	"time"

	"github.com/saleehq/agent-dashboard/internal/platform/logger"
	"github.com/saleehq/agent-dashboard/internal/render"
	"github.com/saleehq/agent-dashboard/internal/state"
	"github.com/saleehq/agent-dashboard/internal/warehouse"
)

type Services struct {
	Store    warehouse.Store
	Sessions *state.SessionStore
	Renderer *render.Renderer
	Variants map[string]render.Variant
}

func wireServices(log *logger.Logger, cfg Config, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	store := warehouse.NewStore(log, clients.BigQuery, clients.Cache, cfg.QueryCacheTTL, cfg.Tables)

	renderer, err := render.New()
	if err != nil {
		return Services{}, err
	}

	variants, err := render.LoadVariants(cfg.VariantsFile)
	if err != nil {
		return Services{}, err
	}

	return Services{
		Store:    store,
		Sessions: state.NewSessionStore(12 * time.Hour),
		Renderer: renderer,
		Variants: variants,
	}, nil
}
