// bqprobe runs a single unfiltered query against the conversations table to
// verify warehouse connectivity and credentials before deploying the
// dashboard.
package main

import (
	"context"
	"fmt"
	"os"

	bqclient "github.com/saleehq/agent-dashboard/internal/clients/bigquery"
	"github.com/saleehq/agent-dashboard/internal/platform/envutil"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	project := envutil.Str("BQ_PROJECT", "salee-chrome-extention")
	dataset := envutil.Str("BQ_DATASET", "SaleeAgent")
	table := envutil.Str("BQ_CONVERSATIONS_TABLE", "conversations_embedded")
	limit := envutil.Int("BQ_PROBE_LIMIT", 1000)

	ctx := context.Background()
	client, err := bqclient.New(ctx, log, project)
	if err != nil {
		fail(log, err)
	}
	defer client.Close()

	sql := fmt.Sprintf("SELECT * FROM `%s.%s.%s` LIMIT %d", project, dataset, table, limit)
	rows, err := client.Query(ctx, sql, nil)
	if err != nil {
		fail(log, err)
	}

	log.Info("Query executed successfully", "rows", len(rows))
	if len(rows) > 0 {
		cols := make([]string, 0, len(rows[0]))
		for name := range rows[0] {
			cols = append(cols, name)
		}
		log.Info("First row", "columns", cols)
	}
}

func fail(log *logger.Logger, err error) {
	log.Error("Probe failed", "error", err)
	fmt.Println("To fix this, you need to:")
	fmt.Println("1. Set up Google Cloud credentials: gcloud auth application-default login")
	fmt.Println("2. Or set the GOOGLE_APPLICATION_CREDENTIALS environment variable")
	fmt.Println("3. Or set BQ_PROJECT to your actual Google Cloud project ID")
	os.Exit(1)
}
