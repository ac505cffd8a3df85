package bigquery

import (
	"context"
	"fmt"
	"strings"

	bq "cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/saleehq/agent-dashboard/internal/platform/gcp"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
)

// Row is one result row keyed by column name.
type Row = map[string]bq.Value

// Client is the narrow warehouse contract the dashboard needs: run one
// parameterized query, get all rows back, or a single opaque error. No
// partial results.
type Client interface {
	Query(ctx context.Context, sql string, params []bq.QueryParameter) ([]Row, error)
	Close() error
}

type client struct {
	log *logger.Logger
	bq  *bq.Client
}

func New(ctx context.Context, log *logger.Logger, projectID string) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("missing BigQuery project id")
	}
	c, err := bq.NewClient(ctx, projectID, gcp.ClientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("bigquery client: %w", err)
	}
	return &client{
		log: log.With("client", "BigQuery", "project", projectID),
		bq:  c,
	}, nil
}

func (c *client) Query(ctx context.Context, sql string, params []bq.QueryParameter) ([]Row, error) {
	q := c.bq.Query(sql)
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("warehouse query: %w", err)
	}

	var rows []Row
	for {
		var row Row
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("warehouse row read: %w", err)
		}
		rows = append(rows, row)
	}
	c.log.Debug("query complete", "rows", len(rows))
	return rows, nil
}

func (c *client) Close() error {
	if c == nil || c.bq == nil {
		return nil
	}
	return c.bq.Close()
}
