package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saleehq/agent-dashboard/internal/domain"
	"github.com/saleehq/agent-dashboard/internal/platform/logger"
	"github.com/saleehq/agent-dashboard/internal/render"
	"github.com/saleehq/agent-dashboard/internal/state"
	"github.com/saleehq/agent-dashboard/internal/view"
	"github.com/saleehq/agent-dashboard/internal/warehouse"
)

const sessionCookie = "salee_session"

const loadErrorMessage = "Unable to load conversation data. Please verify your data source configuration."

type DashboardHandler struct {
	log      *logger.Logger
	store    warehouse.Store
	sessions *state.SessionStore
	renderer *render.Renderer
	variants map[string]render.Variant

	logoURL   string
	listLimit int
	now       func() time.Time
}

func NewDashboardHandler(
	log *logger.Logger,
	store warehouse.Store,
	sessions *state.SessionStore,
	renderer *render.Renderer,
	variants map[string]render.Variant,
	logoURL string,
	listLimit int,
) *DashboardHandler {
	return &DashboardHandler{
		log:       log.With("handler", "Dashboard"),
		store:     store,
		sessions:  sessions,
		renderer:  renderer,
		variants:  variants,
		logoURL:   logoURL,
		listLimit: listLimit,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard runs one full pass of the view pipeline: restore the snapshot,
// apply events carried in the URL, load (cached) rows, shape, render. Every
// interaction is a fresh GET, so each request sees a consistent snapshot.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	sid := h.sessionID(c)
	snap := h.sessions.Get(sid)

	if c.Query("toggle_labels") != "" {
		snap = state.Reduce(snap, state.ToggleLabelText{})
		h.sessions.Put(sid, snap)
		c.Redirect(http.StatusSeeOther, h.selfURL(c, snap))
		return
	}

	snap = state.ParseQuery(c.Request.URL.Query(), snap)
	if topicID := c.Query("topic"); topicID != "" {
		snap = state.Reduce(snap, state.SelectTopic{TopicID: topicID})
	}

	variantParam := c.Query("variant")
	variant := render.PickVariant(h.variants, variantParam)
	cfg := variant.BuildConfig()
	now := h.now()

	conversations, err := h.store.Conversations(c.Request.Context(), h.listLimit, snap.Product)
	if err != nil {
		h.log.Error("conversation load failed", "error", err, "product", snap.Product)
		h.renderPage(c, http.StatusBadGateway, render.PageData{
			Variant:      variant,
			VariantParam: variantParam,
			LogoURL:      h.logoURL,
			ErrorMessage: loadErrorMessage,
		})
		return
	}

	// A filter change keeps the selection only while the chat is still in
	// the filtered result set.
	if snap.SelectedChatID != "" && !containsChat(conversations, snap.SelectedChatID) {
		snap = state.Reduce(snap, state.SelectChat{ChatID: ""})
	}

	data := render.PageData{
		Variant:         variant,
		VariantParam:    variantParam,
		LogoURL:         h.logoURL,
		ShowLabelText:   snap.ShowLabelText,
		SelectedChatID:  snap.SelectedChatID,
		SelectedProduct: snap.Product,
		ProductOptions:  productOptions(snap.Product),
		Conversations:   view.BuildConversationRows(conversations, snap, cfg, now),
	}

	if snap.SelectedChatID != "" {
		data.WithTopics = true
		topics, err := h.store.TopicsForChat(c.Request.Context(), snap.SelectedChatID)
		if err != nil {
			h.log.Error("topic load failed", "error", err, "chat_id", snap.SelectedChatID)
			data.TopicsError = "Error loading topics for this conversation."
		} else {
			if snap.SelectedTopicID != "" && !containsTopic(topics, snap.SelectedTopicID) {
				snap = state.Reduce(snap, state.SelectTopic{TopicID: ""})
			}
			data.Topics = view.BuildTopicRows(snap.SelectedChatID, snap.SelectedTopicID, topics, cfg, now)
		}
	}

	h.sessions.Put(sid, snap)
	h.renderPage(c, http.StatusOK, data)
}

func (h *DashboardHandler) renderPage(c *gin.Context, status int, data render.PageData) {
	page, err := h.renderer.Page(data)
	if err != nil {
		h.log.Error("render failed", "error", err)
		c.String(http.StatusInternalServerError, loadErrorMessage)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(page))
}

func (h *DashboardHandler) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
	return sid
}

func (h *DashboardHandler) selfURL(c *gin.Context, snap state.Snapshot) string {
	values := state.EncodeQuery(snap)
	if v := c.Query("variant"); v != "" {
		values.Set("variant", v)
	}
	if encoded := values.Encode(); encoded != "" {
		return c.Request.URL.Path + "?" + encoded
	}
	return c.Request.URL.Path
}

func productOptions(selected string) []render.ProductOption {
	return []render.ProductOption{
		{Label: "All", Value: "", Selected: selected == ""},
		{Label: state.ProductTalentScan, Value: state.ProductTalentScan, Selected: selected == state.ProductTalentScan},
		{Label: state.ProductSalee, Value: state.ProductSalee, Selected: selected == state.ProductSalee},
	}
}

func containsChat(recs []domain.ConversationRecord, chatID string) bool {
	for i := range recs {
		if recs[i].ChatID == chatID {
			return true
		}
	}
	return false
}

func containsTopic(topics []domain.TopicRecord, topicID string) bool {
	for i := range topics {
		if topics[i].TopicID == topicID {
			return true
		}
	}
	return false
}
