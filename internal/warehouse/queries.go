package warehouse

import "fmt"

// Tables names the warehouse tables the dashboard reads. Only reads happen
// here; the dashboard never writes back.
type Tables struct {
	Project       string
	Dataset       string
	Conversations string
	AccountsTable string
}

func (t Tables) conversations() string {
	return fmt.Sprintf("`%s.%s.%s`", t.Project, t.Dataset, t.Conversations)
}

func (t Tables) accounts() string {
	return fmt.Sprintf("`%s.%s`", t.Project, t.AccountsTable)
}

// rankedConversationsSQL surfaces at most one row per chat id: the topic with
// the latest lastTopicMessageAt, topicId descending as the deterministic
// tie-break. The @product parameter is NULL-able; NULL means no filter, and
// the filter matches a chat when any of its topics mentions the product.
func rankedConversationsSQL(t Tables) string {
	return fmt.Sprintf(`
WITH ranked_conversations AS (
  SELECT
    chatId,
    topicId,
    participantLinkedinId,
    topicSummary,
    raw_excerpt,
    sentMessages,
    receivedMessages,
    reply_ratio,
    conversationDuration,
    primary_intent,
    intent_direction,
    primary_product_or_service,
    tone,
    relationship_stage,
    conversation_temperature,
    next_action,
    next_action_date,
    firstTopicMessageAt,
    lastTopicMessageAt,
    lastConversationMessageAt,
    firstConversationMessageAt,
    ROW_NUMBER() OVER (
      PARTITION BY chatId
      ORDER BY lastTopicMessageAt DESC, topicId DESC
    ) AS row_number
  FROM %[1]s
)

SELECT
  rc.chatId,
  rc.participantLinkedinId,
  rc.topicSummary,
  rc.raw_excerpt,
  rc.sentMessages,
  rc.receivedMessages,
  rc.reply_ratio,
  rc.conversationDuration,
  rc.primary_intent,
  rc.intent_direction,
  rc.primary_product_or_service,
  rc.tone,
  rc.relationship_stage,
  rc.conversation_temperature,
  rc.next_action,
  rc.next_action_date,
  rc.firstTopicMessageAt,
  rc.lastTopicMessageAt,
  rc.lastConversationMessageAt,
  rc.firstConversationMessageAt,
  acc.firstName AS participantFirstName,
  acc.lastName AS participantLastName,
  acc.title AS participantTitle,
  acc.country AS participantCountry,
  acc.city AS participantCity,
  acc.url AS participantUrl
FROM ranked_conversations rc
LEFT JOIN %[2]s acc
  ON rc.participantLinkedinId = acc.id
WHERE rc.row_number = 1
  AND (
    @product IS NULL
    OR EXISTS (
      SELECT 1
      FROM %[1]s ce
      WHERE ce.chatId = rc.chatId
        AND ce.primary_product_or_service = @product
    )
  )
ORDER BY rc.lastTopicMessageAt DESC
LIMIT @limit
`, t.conversations(), t.accounts())
}

// topicsForChatSQL returns every topic for one chat, newest first, topicId
// descending on equal timestamps.
func topicsForChatSQL(t Tables) string {
	return fmt.Sprintf(`
SELECT
  topicId,
  chatId,
  topicSummary,
  raw_excerpt,
  sentMessages,
  receivedMessages,
  reply_ratio,
  conversationDuration,
  primary_intent,
  intent_direction,
  primary_product_or_service,
  tone,
  relationship_stage,
  conversation_temperature,
  next_action,
  next_action_date,
  firstTopicMessageAt,
  lastTopicMessageAt,
  labels,
  topicKeywords
FROM %s
WHERE chatId = @chat_id
ORDER BY lastTopicMessageAt DESC, topicId DESC
`, t.conversations())
}
