package warehouse

import (
	"time"

	bq "cloud.google.com/go/bigquery"

	bqclient "github.com/saleehq/agent-dashboard/internal/clients/bigquery"
	"github.com/saleehq/agent-dashboard/internal/domain"
)

// Decoding is the one place raw warehouse value shapes are inspected. Rows
// come back as map[string]bigquery.Value with NULLs as nil, so every helper
// degrades to the zero value instead of failing; downstream code only ever
// sees the canonical record types.

func decodeConversation(row bqclient.Row) domain.ConversationRecord {
	return domain.ConversationRecord{
		ChatID:                  colString(row, "chatId"),
		ParticipantLinkedinID:   colString(row, "participantLinkedinId"),
		TopicSummary:            colString(row, "topicSummary"),
		RawExcerpt:              colString(row, "raw_excerpt"),
		SentMessages:            colInt(row, "sentMessages"),
		ReceivedMessages:        colInt(row, "receivedMessages"),
		ReplyRatio:              colFloat(row, "reply_ratio"),
		ConversationDuration:    colInt(row, "conversationDuration"),
		PrimaryIntent:           colString(row, "primary_intent"),
		IntentDirection:         colString(row, "intent_direction"),
		PrimaryProduct:          colString(row, "primary_product_or_service"),
		Tone:                    colString(row, "tone"),
		RelationshipStage:       colString(row, "relationship_stage"),
		ConversationTemperature: colString(row, "conversation_temperature"),
		NextAction:              colString(row, "next_action"),
		NextActionDate:          colString(row, "next_action_date"),
		FirstTopicMessageAt:     colTime(row, "firstTopicMessageAt"),
		LastTopicMessageAt:      colTime(row, "lastTopicMessageAt"),
		FirstConversationAt:     colTime(row, "firstConversationMessageAt"),
		LastConversationAt:      colTime(row, "lastConversationMessageAt"),
		Participant: domain.Participant{
			FirstName: colString(row, "participantFirstName"),
			LastName:  colString(row, "participantLastName"),
			Title:     colString(row, "participantTitle"),
			Country:   colString(row, "participantCountry"),
			City:      colString(row, "participantCity"),
			URL:       colString(row, "participantUrl"),
		},
	}
}

func decodeTopic(row bqclient.Row) domain.TopicRecord {
	return domain.TopicRecord{
		TopicID:                 colString(row, "topicId"),
		ChatID:                  colString(row, "chatId"),
		TopicSummary:            colString(row, "topicSummary"),
		RawExcerpt:              colString(row, "raw_excerpt"),
		SentMessages:            colInt(row, "sentMessages"),
		ReceivedMessages:        colInt(row, "receivedMessages"),
		ReplyRatio:              colFloat(row, "reply_ratio"),
		ConversationDuration:    colInt(row, "conversationDuration"),
		PrimaryIntent:           colString(row, "primary_intent"),
		IntentDirection:         colString(row, "intent_direction"),
		PrimaryProduct:          colString(row, "primary_product_or_service"),
		Tone:                    colString(row, "tone"),
		RelationshipStage:       colString(row, "relationship_stage"),
		ConversationTemperature: colString(row, "conversation_temperature"),
		NextAction:              colString(row, "next_action"),
		NextActionDate:          colString(row, "next_action_date"),
		FirstTopicMessageAt:     colTime(row, "firstTopicMessageAt"),
		LastTopicMessageAt:      colTime(row, "lastTopicMessageAt"),
		Keywords:                colStringList(row, "topicKeywords"),
		Labels:                  colStringList(row, "labels"),
	}
}

func colString(row bqclient.Row, name string) string {
	switch v := row[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return domain.DisplayScalar(v, domain.ListContext)
	}
}

func colInt(row bqclient.Row, name string) int64 {
	switch v := row[name].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func colFloat(row bqclient.Row, name string) float64 {
	switch v := row[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func colTime(row bqclient.Row, name string) *time.Time {
	t, ok := row[name].(time.Time)
	if !ok || t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// colStringList handles REPEATED columns and the legacy rows where keywords
// landed as a JSON or comma-delimited string.
func colStringList(row bqclient.Row, name string) []string {
	switch v := row[name].(type) {
	case []bq.Value:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, item)
		}
		return domain.StringList(items)
	default:
		return domain.StringList(v)
	}
}
