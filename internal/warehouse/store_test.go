package warehouse

import (
	"context"
	"errors"
	"testing"
	"time"

	bq "cloud.google.com/go/bigquery"

	bqclient "github.com/saleehq/agent-dashboard/internal/clients/bigquery"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
)

type fakeClient struct {
	rows    []bqclient.Row
	err     error
	queries int
	params  []bq.QueryParameter
}

func (f *fakeClient) Query(_ context.Context, _ string, params []bq.QueryParameter) ([]bqclient.Row, error) {
	f.queries++
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeClient) Close() error { return nil }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func testTables() Tables {
	return Tables{
		Project:       "test-project",
		Dataset:       "SaleeAgent",
		Conversations: "conversations_embedded",
		AccountsTable: "salee.linked_in_accounts",
	}
}

func conversationRow(chatID string, lastTopicAt time.Time) bqclient.Row {
	return bqclient.Row{
		"chatId":                     chatID,
		"participantLinkedinId":      "p-" + chatID,
		"topicSummary":               "summary for " + chatID,
		"raw_excerpt":                "excerpt",
		"sentMessages":               int64(3),
		"receivedMessages":           int64(5),
		"reply_ratio":                0.6,
		"conversationDuration":       int64(3600),
		"primary_product_or_service": "Salee",
		"lastTopicMessageAt":         lastTopicAt,
		"lastConversationMessageAt":  lastTopicAt,
		"participantFirstName":       "Ada",
		"participantLastName":        "Lovelace",
		"participantTitle":           "CTO",
	}
}

func TestConversations_DecodeAndDedupe(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeClient{rows: []bqclient.Row{
		conversationRow("c1", base.Add(2*time.Hour)),
		conversationRow("c1", base.Add(time.Hour)),
		conversationRow("c2", base),
	}}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())

	recs, err := store.Conversations(context.Background(), 50, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records after dedupe, got %d", len(recs))
	}
	if recs[0].ChatID != "c1" || recs[0].LastTopicMessageAt == nil {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if !recs[0].LastTopicMessageAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("kept the wrong topic row: %v", recs[0].LastTopicMessageAt)
	}
	if recs[0].Participant.FirstName != "Ada" || recs[0].SentMessages != 3 {
		t.Fatalf("decode lost fields: %+v", recs[0])
	}
}

func TestConversations_CachedOnRepeat(t *testing.T) {
	fake := &fakeClient{rows: []bqclient.Row{
		conversationRow("c1", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())
	ctx := context.Background()

	if _, err := store.Conversations(ctx, 50, ""); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := store.Conversations(ctx, 50, ""); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if fake.queries != 1 {
		t.Fatalf("expected 1 warehouse query, got %d", fake.queries)
	}

	// A different parameter set misses the cache.
	if _, err := store.Conversations(ctx, 50, "Salee"); err != nil {
		t.Fatalf("filtered load: %v", err)
	}
	if fake.queries != 2 {
		t.Fatalf("expected 2 warehouse queries, got %d", fake.queries)
	}
}

func TestConversations_NullProductParam(t *testing.T) {
	fake := &fakeClient{}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())

	if _, err := store.Conversations(context.Background(), 50, ""); err != nil {
		t.Fatalf("load: %v", err)
	}
	var found bool
	for _, p := range fake.params {
		if p.Name == "product" {
			found = true
			ns, ok := p.Value.(bq.NullString)
			if !ok || ns.Valid {
				t.Fatalf("expected NULL product param, got %#v", p.Value)
			}
		}
	}
	if !found {
		t.Fatalf("product param missing: %+v", fake.params)
	}
}

func TestConversations_ErrorIsOpaque(t *testing.T) {
	fake := &fakeClient{err: errors.New("auth boom")}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())

	recs, err := store.Conversations(context.Background(), 50, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if recs != nil {
		t.Fatalf("partial results returned: %+v", recs)
	}
}

func TestTopicsForChat_DecodesKeywordShapes(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeClient{rows: []bqclient.Row{
		{
			"topicId":            "t1",
			"chatId":             "c1",
			"topicSummary":       "s1",
			"lastTopicMessageAt": ts,
			"topicKeywords":      []bq.Value{"pricing", " demo ", ""},
			"labels":             `["Hot", "Junk"]`,
		},
		{
			"topicId":            "t2",
			"chatId":             "c1",
			"topicSummary":       "s2",
			"lastTopicMessageAt": ts,
			"topicKeywords":      "follow up, budget",
			"labels":             nil,
		},
	}}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())

	topics, err := store.TopicsForChat(context.Background(), "c1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("got %d topics", len(topics))
	}
	if got := topics[0].Keywords; len(got) != 2 || got[0] != "pricing" || got[1] != "demo" {
		t.Fatalf("repeated column decode: %v", got)
	}
	if got := topics[0].Labels; len(got) != 2 || got[0] != "Hot" {
		t.Fatalf("json label decode: %v", got)
	}
	if got := topics[1].Keywords; len(got) != 2 || got[0] != "follow up" {
		t.Fatalf("comma decode: %v", got)
	}
	if got := topics[1].Labels; len(got) != 0 {
		t.Fatalf("nil labels should decode empty: %v", got)
	}
}

func TestTopicsForChat_EmptyChatID(t *testing.T) {
	fake := &fakeClient{}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())

	topics, err := store.TopicsForChat(context.Background(), "  ")
	if err != nil || topics != nil {
		t.Fatalf("got %v, %v", topics, err)
	}
	if fake.queries != 0 {
		t.Fatalf("query issued for empty chat id")
	}
}

func TestDedupeLatestTopic_NilTimestamps(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeClient{rows: []bqclient.Row{
		{"chatId": "c1"},
		{"chatId": "c1", "lastTopicMessageAt": ts},
	}}
	store := NewStore(testLogger(t), fake, NewMemoryCache(), time.Minute, testTables())

	recs, err := store.Conversations(context.Background(), 50, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].LastTopicMessageAt == nil {
		t.Fatalf("timestamped row should win over nil")
	}
}
