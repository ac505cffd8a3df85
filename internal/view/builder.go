package view

import (
	"time"

	"github.com/saleehq/agent-dashboard/internal/domain"
	"github.com/saleehq/agent-dashboard/internal/state"
)

// Badge is a small labeled chip on a list row ("Product: Salee"). Builders
// never emit a badge for a blank source value, so the renderer can print
// every badge it receives.
type Badge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ConversationRow is the render-ready projection of one ranked conversation.
// Recomputed on every request, never persisted.
type ConversationRow struct {
	ChatID       string  `json:"chatId"`
	DisplayName  string  `json:"displayName"`
	Title        string  `json:"title"`
	Preview      string  `json:"preview"`
	RelativeTime string  `json:"relativeTime"`
	Selected     bool    `json:"selected"`
	Badges       []Badge `json:"badges"`
}

// TopicRow is the render-ready projection of one topic in the detail panel.
// Meta values use detail-context normalization, so blanks show as "N/A".
type TopicRow struct {
	TopicID      string   `json:"topicId"`
	RelativeTime string   `json:"relativeTime"`
	Summary      string   `json:"summary"`
	Selected     bool     `json:"selected"`
	Meta         []Badge  `json:"meta"`
	Keywords     []string `json:"keywords"`
	Labels       []string `json:"labels"`
}

// BuildConfig carries the per-variant shaping knobs: width budgets and which
// badges a list row shows. The three dashboard variants differ only here.
type BuildConfig struct {
	PreviewWidth int
	TopicWidth   int
	ListBadges   []string
}

func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		PreviewWidth: 290,
		TopicWidth:   200,
		ListBadges:   []string{"product", "next_action"},
	}
}

var badgeLabels = map[string]string{
	"product":            "Product",
	"next_action":        "Next action",
	"next_action_date":   "Next action date",
	"intent":             "Intent",
	"intent_direction":   "Intent direction",
	"tone":               "Tone",
	"relationship_stage": "Relationship stage",
	"temperature":        "Conversation temperature",
}

func conversationBadgeValue(rec *domain.ConversationRecord, key string) string {
	switch key {
	case "product":
		return rec.PrimaryProduct
	case "next_action":
		return rec.NextAction
	case "next_action_date":
		return rec.NextActionDate
	case "intent":
		return rec.PrimaryIntent
	case "intent_direction":
		return rec.IntentDirection
	case "tone":
		return rec.Tone
	case "relationship_stage":
		return rec.RelationshipStage
	case "temperature":
		return rec.ConversationTemperature
	}
	return ""
}

// BuildConversationRows shapes ranked conversation records for the list view.
// Selection is exact string equality against the snapshot, no case or
// whitespace normalization.
func BuildConversationRows(recs []domain.ConversationRecord, snap state.Snapshot, cfg BuildConfig, now time.Time) []ConversationRow {
	rows := make([]ConversationRow, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		row := ConversationRow{
			ChatID:       rec.ChatID,
			DisplayName:  rec.DisplayName(),
			Title:        domain.DisplayScalar(rec.Participant.Title, domain.ListContext),
			Preview:      Shorten(rec.PreviewSource(), cfg.PreviewWidth),
			RelativeTime: RelativeTime(rec.LastConversationAt, now),
			Selected:     rec.ChatID != "" && rec.ChatID == snap.SelectedChatID,
		}
		for _, key := range cfg.ListBadges {
			val := domain.DisplayScalar(conversationBadgeValue(rec, key), domain.ListContext)
			if val == "" {
				continue
			}
			row.Badges = append(row.Badges, Badge{Key: key, Label: badgeLabels[key], Value: val})
		}
		rows = append(rows, row)
	}
	return rows
}

var topicMetaKeys = []string{
	"intent", "product", "tone", "relationship_stage",
	"temperature", "next_action", "next_action_date",
}

func topicMetaValue(topic *domain.TopicRecord, key string) string {
	switch key {
	case "product":
		return topic.PrimaryProduct
	case "next_action":
		return topic.NextAction
	case "next_action_date":
		return topic.NextActionDate
	case "intent":
		return topic.PrimaryIntent
	case "tone":
		return topic.Tone
	case "relationship_stage":
		return topic.RelationshipStage
	case "temperature":
		return topic.ConversationTemperature
	}
	return ""
}

// BuildTopicRows shapes all topics of the selected chat for the detail panel.
// Callers are expected to pass topics already scoped by chat id; rows for a
// different chat are dropped here as a second line of defense against a topic
// leaking into the wrong panel.
func BuildTopicRows(chatID, selectedTopicID string, topics []domain.TopicRecord, cfg BuildConfig, now time.Time) []TopicRow {
	rows := make([]TopicRow, 0, len(topics))
	for i := range topics {
		topic := &topics[i]
		if chatID != "" && topic.ChatID != "" && topic.ChatID != chatID {
			continue
		}
		row := TopicRow{
			TopicID:      domain.DisplayScalar(topic.TopicID, domain.DetailContext),
			RelativeTime: RelativeTime(topic.LastTopicMessageAt, now),
			Summary:      Shorten(topic.PreviewSource(), cfg.TopicWidth),
			Selected:     topic.TopicID != "" && topic.TopicID == selectedTopicID,
			Keywords:     topic.Keywords,
			Labels:       topic.Labels,
		}
		for _, key := range topicMetaKeys {
			row.Meta = append(row.Meta, Badge{
				Key:   key,
				Label: badgeLabels[key],
				Value: domain.DisplayScalar(topicMetaValue(topic, key), domain.DetailContext),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
