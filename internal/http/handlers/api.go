package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saleehq/agent-dashboard/internal/http/response"
	"github.com/saleehq/agent-dashboard/internal/platform/apierr"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
	"github.com/saleehq/agent-dashboard/internal/state"
	"github.com/saleehq/agent-dashboard/internal/view"
	"github.com/saleehq/agent-dashboard/internal/warehouse"
)

// APIHandler exposes the same view models as JSON for the extension and any
// other programmatic consumer.
type APIHandler struct {
	log       *logger.Logger
	store     warehouse.Store
	listLimit int
	now       func() time.Time
}

func NewAPIHandler(log *logger.Logger, store warehouse.Store, listLimit int) *APIHandler {
	return &APIHandler{
		log:       log.With("handler", "API"),
		store:     store,
		listLimit: listLimit,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GET /api/conversations?limit=50&product=Salee
func (h *APIHandler) ListConversations(c *gin.Context) {
	limit := h.listLimit
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	product := state.NormalizeProduct(c.Query("product"))

	recs, err := h.store.Conversations(c.Request.Context(), limit, product)
	if err != nil {
		h.log.Error("conversation load failed", "error", err, "product", product)
		apiErr := apierr.New(http.StatusBadGateway, "warehouse_unavailable", err)
		response.RespondError(c, apiErr.Status, apiErr.Code, apiErr)
		return
	}

	rows := view.BuildConversationRows(recs, state.NewSnapshot(), view.DefaultBuildConfig(), h.now())
	response.RespondOK(c, gin.H{"conversations": rows})
}

// GET /api/conversations/:chatId/topics
func (h *APIHandler) ListTopics(c *gin.Context) {
	chatID := strings.TrimSpace(c.Param("chatId"))
	if chatID == "" {
		apiErr := apierr.New(http.StatusBadRequest, "missing_chat_id", nil)
		response.RespondError(c, apiErr.Status, apiErr.Code, apiErr)
		return
	}

	topics, err := h.store.TopicsForChat(c.Request.Context(), chatID)
	if err != nil {
		h.log.Error("topic load failed", "error", err, "chat_id", chatID)
		apiErr := apierr.New(http.StatusBadGateway, "warehouse_unavailable", err)
		response.RespondError(c, apiErr.Status, apiErr.Code, apiErr)
		return
	}

	rows := view.BuildTopicRows(chatID, "", topics, view.DefaultBuildConfig(), h.now())
	response.RespondOK(c, gin.H{"chatId": chatID, "topics": rows})
}
