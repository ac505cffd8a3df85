package view

import (
	"testing"
	"time"

	"github.com/saleehq/agent-dashboard/internal/domain"
	"github.com/saleehq/agent-dashboard/internal/state"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tsAgo(d time.Duration) *time.Time {
	t := testNow.Add(-d)
	return &t
}

func TestBuildConversationRows_NameFallback(t *testing.T) {
	recs := []domain.ConversationRecord{{ChatID: "c1"}}
	rows := BuildConversationRows(recs, state.NewSnapshot(), DefaultBuildConfig(), testNow)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].DisplayName != "Unknown contact" {
		t.Fatalf("got %q", rows[0].DisplayName)
	}
}

func TestBuildConversationRows_BadgeSuppression(t *testing.T) {
	recs := []domain.ConversationRecord{{
		ChatID:         "c1",
		PrimaryProduct: "Salee",
		NextAction:     "   ",
	}}
	rows := BuildConversationRows(recs, state.NewSnapshot(), DefaultBuildConfig(), testNow)
	if len(rows[0].Badges) != 1 {
		t.Fatalf("expected 1 badge, got %v", rows[0].Badges)
	}
	badge := rows[0].Badges[0]
	if badge.Key != "product" || badge.Value != "Salee" || badge.Label != "Product" {
		t.Fatalf("unexpected badge %+v", badge)
	}
}

func TestBuildConversationRows_SelectionIsExactMatch(t *testing.T) {
	recs := []domain.ConversationRecord{
		{ChatID: "chat-1"},
		{ChatID: "Chat-1"},
		{ChatID: "chat-1 "},
	}
	snap := state.Reduce(state.NewSnapshot(), state.SelectChat{ChatID: "chat-1"})
	rows := BuildConversationRows(recs, snap, DefaultBuildConfig(), testNow)
	if !rows[0].Selected {
		t.Fatalf("exact match not selected")
	}
	if rows[1].Selected || rows[2].Selected {
		t.Fatalf("case or whitespace variant selected: %+v", rows)
	}
}

func TestBuildConversationRows_PreviewPrefersSummary(t *testing.T) {
	recs := []domain.ConversationRecord{{
		ChatID:       "c1",
		TopicSummary: "the summary",
		RawExcerpt:   "the excerpt",
	}}
	rows := BuildConversationRows(recs, state.NewSnapshot(), DefaultBuildConfig(), testNow)
	if rows[0].Preview != "the summary" {
		t.Fatalf("got %q", rows[0].Preview)
	}
}

func TestBuildConversationRows_RelativeTimeFromLastConversation(t *testing.T) {
	recs := []domain.ConversationRecord{{
		ChatID:             "c1",
		LastConversationAt: tsAgo(2 * time.Hour),
	}}
	rows := BuildConversationRows(recs, state.NewSnapshot(), DefaultBuildConfig(), testNow)
	if rows[0].RelativeTime != "2 hrs ago" {
		t.Fatalf("got %q", rows[0].RelativeTime)
	}
}

func TestBuildTopicRows_ScopedByChat(t *testing.T) {
	topics := []domain.TopicRecord{
		{TopicID: "t1", ChatID: "c1"},
		{TopicID: "t2", ChatID: "c2"},
	}
	rows := BuildTopicRows("c1", "", topics, DefaultBuildConfig(), testNow)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].TopicID != "t1" {
		t.Fatalf("got %q", rows[0].TopicID)
	}
}

func TestBuildTopicRows_DetailContextNA(t *testing.T) {
	topics := []domain.TopicRecord{{TopicID: "t1", ChatID: "c1", Tone: "Friendly"}}
	rows := BuildTopicRows("c1", "", topics, DefaultBuildConfig(), testNow)
	var tone, intent string
	for _, meta := range rows[0].Meta {
		switch meta.Key {
		case "tone":
			tone = meta.Value
		case "intent":
			intent = meta.Value
		}
	}
	if tone != "Friendly" {
		t.Fatalf("tone: got %q", tone)
	}
	if intent != "N/A" {
		t.Fatalf("blank intent should render N/A, got %q", intent)
	}
}

func TestBuildTopicRows_SelectedTopic(t *testing.T) {
	topics := []domain.TopicRecord{
		{TopicID: "t1", ChatID: "c1"},
		{TopicID: "t2", ChatID: "c1"},
	}
	rows := BuildTopicRows("c1", "t2", topics, DefaultBuildConfig(), testNow)
	if rows[0].Selected || !rows[1].Selected {
		t.Fatalf("selection wrong: %+v", rows)
	}
}

func TestBuildTopicRows_WidthBudget(t *testing.T) {
	long := make([]rune, 400)
	for i := range long {
		long[i] = 'x'
	}
	topics := []domain.TopicRecord{{TopicID: "t1", ChatID: "c1", TopicSummary: string(long)}}
	cfg := DefaultBuildConfig()
	cfg.TopicWidth = 200
	rows := BuildTopicRows("c1", "", topics, cfg, testNow)
	if n := len([]rune(rows[0].Summary)); n > 200 {
		t.Fatalf("summary length %d exceeds budget", n)
	}
}
