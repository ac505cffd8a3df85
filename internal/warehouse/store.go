package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bq "cloud.google.com/go/bigquery"

	bqclient "github.com/saleehq/agent-dashboard/internal/clients/bigquery"
	"github.com/saleehq/agent-dashboard/internal/domain"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
)

// Store loads canonical conversation and topic records for the dashboard.
// Results are cached per distinct parameter set for a short TTL, so the
// rerun-per-interaction model does not hammer the warehouse.
type Store interface {
	Conversations(ctx context.Context, limit int, product string) ([]domain.ConversationRecord, error)
	TopicsForChat(ctx context.Context, chatID string) ([]domain.TopicRecord, error)
}

type store struct {
	log    *logger.Logger
	client bqclient.Client
	cache  Cache
	ttl    time.Duration

	sqlConversations string
	sqlTopics        string
}

func NewStore(baseLog *logger.Logger, client bqclient.Client, cache Cache, ttl time.Duration, tables Tables) Store {
	return &store{
		log:              baseLog.With("service", "WarehouseStore"),
		client:           client,
		cache:            cache,
		ttl:              ttl,
		sqlConversations: rankedConversationsSQL(tables),
		sqlTopics:        topicsForChatSQL(tables),
	}
}

func (s *store) Conversations(ctx context.Context, limit int, product string) ([]domain.ConversationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	product = strings.TrimSpace(product)

	key := conversationsCacheKey(limit, product)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached []domain.ConversationRecord
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.log.Debug("conversations served from cache", "limit", limit, "product", product)
			return cached, nil
		}
	}

	params := []bq.QueryParameter{
		{Name: "limit", Value: int64(limit)},
		{Name: "product", Value: bq.NullString{StringVal: product, Valid: product != ""}},
	}
	rows, err := s.client.Query(ctx, s.sqlConversations, params)
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}

	recs := make([]domain.ConversationRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, decodeConversation(row))
	}
	recs = dedupeLatestTopic(recs)

	s.cacheSet(ctx, key, recs)
	s.log.Debug("conversations loaded", "rows", len(recs), "limit", limit, "product", product)
	return recs, nil
}

func (s *store) TopicsForChat(ctx context.Context, chatID string) ([]domain.TopicRecord, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return nil, nil
	}

	key := topicsCacheKey(chatID)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached []domain.TopicRecord
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.log.Debug("topics served from cache", "chat_id", chatID)
			return cached, nil
		}
	}

	params := []bq.QueryParameter{
		{Name: "chat_id", Value: chatID},
	}
	rows, err := s.client.Query(ctx, s.sqlTopics, params)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	topics := make([]domain.TopicRecord, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, decodeTopic(row))
	}

	s.cacheSet(ctx, key, topics)
	s.log.Debug("topics loaded", "chat_id", chatID, "rows", len(topics))
	return topics, nil
}

func (s *store) cacheSet(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, s.ttl)
}

// dedupeLatestTopic enforces the one-row-per-chat invariant on top of the
// ranked query: keep the record with the latest topic timestamp per chat id.
// Rows arrive ordered with the tie-break already applied, so on equal
// timestamps the earlier row wins.
func dedupeLatestTopic(recs []domain.ConversationRecord) []domain.ConversationRecord {
	out := make([]domain.ConversationRecord, 0, len(recs))
	best := make(map[string]int)
	for _, rec := range recs {
		if rec.ChatID == "" {
			out = append(out, rec)
			continue
		}
		idx, seen := best[rec.ChatID]
		if !seen {
			best[rec.ChatID] = len(out)
			out = append(out, rec)
			continue
		}
		if laterThan(rec.LastTopicMessageAt, out[idx].LastTopicMessageAt) {
			out[idx] = rec
		}
	}
	return out
}

func laterThan(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
