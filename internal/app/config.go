package app

import (
	"strings"
	"time"

	"github.com/saleehq/agent-dashboard/internal/platform/envutil"
	"github.com/saleehq/agent-dashboard/internal/warehouse"
)

type Config struct {
	Addr          string
	ListLimit     int
	QueryCacheTTL time.Duration
	LogoURL       string
	VariantsFile  string
	AllowOrigins  []string
	Tables        warehouse.Tables
}

func LoadConfig() Config {
	origins := []string{}
	for _, o := range strings.Split(envutil.Str("CORS_ALLOW_ORIGINS", ""), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return Config{
		Addr:          envutil.Str("ADDR", ":8080"),
		ListLimit:     envutil.Int("CONVERSATION_LIST_LIMIT", 50),
		QueryCacheTTL: envutil.Duration("QUERY_CACHE_TTL", 5*time.Minute),
		LogoURL:       envutil.Str("LOGO_URL", "https://res2.weblium.site/res/63aad091b5bd9f000db82b0b/66d596109d1d3227fab0bfda_optimized_376.webp"),
		VariantsFile:  envutil.Str("DASHBOARD_VARIANTS_FILE", ""),
		AllowOrigins:  origins,
		Tables: warehouse.Tables{
			Project:       envutil.Str("BQ_PROJECT", "salee-chrome-extention"),
			Dataset:       envutil.Str("BQ_DATASET", "SaleeAgent"),
			Conversations: envutil.Str("BQ_CONVERSATIONS_TABLE", "conversations_embedded"),
			AccountsTable: envutil.Str("BQ_ACCOUNTS_TABLE", "salee.linked_in_accounts"),
		},
	}
}
