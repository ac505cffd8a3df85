package domain

import "time"

// Participant is the LinkedIn profile joined onto a conversation row. All
// fields are optional; a conversation with no matched profile renders as
// "Unknown contact".
type Participant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Country   string `json:"country"`
	City      string `json:"city"`
	URL       string `json:"url"`
}

// ConversationRecord is the canonical shape of one ranked conversation row:
// the most recent topic for a chat, enriched with the participant profile.
// At most one record per chat id is surfaced in list views.
type ConversationRecord struct {
	ChatID                  string     `json:"chatId"`
	ParticipantLinkedinID   string     `json:"participantLinkedinId"`
	TopicSummary            string     `json:"topicSummary"`
	RawExcerpt              string     `json:"rawExcerpt"`
	SentMessages            int64      `json:"sentMessages"`
	ReceivedMessages        int64      `json:"receivedMessages"`
	ReplyRatio              float64    `json:"replyRatio"`
	ConversationDuration    int64      `json:"conversationDuration"`
	PrimaryIntent           string     `json:"primaryIntent"`
	IntentDirection         string     `json:"intentDirection"`
	PrimaryProduct          string     `json:"primaryProduct"`
	Tone                    string     `json:"tone"`
	RelationshipStage       string     `json:"relationshipStage"`
	ConversationTemperature string     `json:"conversationTemperature"`
	NextAction              string     `json:"nextAction"`
	NextActionDate          string     `json:"nextActionDate"`
	FirstTopicMessageAt     *time.Time `json:"firstTopicMessageAt"`
	LastTopicMessageAt      *time.Time `json:"lastTopicMessageAt"`
	FirstConversationAt     *time.Time `json:"firstConversationMessageAt"`
	LastConversationAt      *time.Time `json:"lastConversationMessageAt"`
	Participant             Participant `json:"participant"`
}

// TopicRecord is one topic segment of a chat. Keywords and Labels are always
// normalized to ordered, trimmed, non-empty strings at the decode boundary,
// whatever encoding the warehouse handed back.
type TopicRecord struct {
	TopicID                 string     `json:"topicId"`
	ChatID                  string     `json:"chatId"`
	TopicSummary            string     `json:"topicSummary"`
	RawExcerpt              string     `json:"rawExcerpt"`
	SentMessages            int64      `json:"sentMessages"`
	ReceivedMessages        int64      `json:"receivedMessages"`
	ReplyRatio              float64    `json:"replyRatio"`
	ConversationDuration    int64      `json:"conversationDuration"`
	PrimaryIntent           string     `json:"primaryIntent"`
	IntentDirection         string     `json:"intentDirection"`
	PrimaryProduct          string     `json:"primaryProduct"`
	Tone                    string     `json:"tone"`
	RelationshipStage       string     `json:"relationshipStage"`
	ConversationTemperature string     `json:"conversationTemperature"`
	NextAction              string     `json:"nextAction"`
	NextActionDate          string     `json:"nextActionDate"`
	FirstTopicMessageAt     *time.Time `json:"firstTopicMessageAt"`
	LastTopicMessageAt      *time.Time `json:"lastTopicMessageAt"`
	Keywords                []string   `json:"topicKeywords"`
	Labels                  []string   `json:"labels"`
}

// DisplayName joins the participant name parts, falling back when the join
// against the profile table produced nothing.
func (r *ConversationRecord) DisplayName() string {
	name := joinNonEmpty(r.Participant.FirstName, r.Participant.LastName)
	if name == "" {
		return "Unknown contact"
	}
	return name
}

// PreviewSource prefers the model summary over the raw excerpt.
func (r *ConversationRecord) PreviewSource() string {
	if r.TopicSummary != "" {
		return r.TopicSummary
	}
	return r.RawExcerpt
}

func (t *TopicRecord) PreviewSource() string {
	if t.TopicSummary != "" {
		return t.TopicSummary
	}
	return t.RawExcerpt
}
