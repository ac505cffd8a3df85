package state

import (
	"net/url"
	"strings"
)

// Known product filter values. Anything else decodes as "no filter".
const (
	ProductTalentScan = "TalentScan Pro"
	ProductSalee      = "Salee"
)

const (
	paramSelectedChat = "selected_chat_id"
	paramProduct      = "product"
)

// Snapshot is the immutable per-session UI state. A request handler reads one
// snapshot, runs the whole view pipeline against it, and stores the reduced
// snapshot back; nothing mutates it mid-render.
type Snapshot struct {
	SelectedChatID  string
	SelectedTopicID string
	Product         string
	ShowLabelText   bool
}

func NewSnapshot() Snapshot {
	return Snapshot{ShowLabelText: true}
}

// Event is a UI interaction fed to Reduce.
type Event interface{ isEvent() }

type SelectChat struct{ ChatID string }
type SelectTopic struct{ TopicID string }
type SetProductFilter struct{ Product string }
type ToggleLabelText struct{}

func (SelectChat) isEvent()       {}
func (SelectTopic) isEvent()      {}
func (SetProductFilter) isEvent() {}
func (ToggleLabelText) isEvent()  {}

// NormalizeProduct restricts the filter to the known set; unrecognized values
// mean no filter.
func NormalizeProduct(raw string) string {
	switch strings.TrimSpace(raw) {
	case ProductTalentScan:
		return ProductTalentScan
	case ProductSalee:
		return ProductSalee
	}
	return ""
}

// Reduce produces the next snapshot from the current one and a single event.
// Pure: the input snapshot is never modified.
//
// Selecting a chat always clears topic focus. Changing the product filter
// keeps the chat selection; the handler drops it afterwards only when the
// chat is absent from the re-filtered result set.
func Reduce(s Snapshot, e Event) Snapshot {
	next := s
	switch ev := e.(type) {
	case SelectChat:
		next.SelectedChatID = strings.TrimSpace(ev.ChatID)
		next.SelectedTopicID = ""
	case SelectTopic:
		if next.SelectedChatID != "" {
			next.SelectedTopicID = strings.TrimSpace(ev.TopicID)
		}
	case SetProductFilter:
		next.Product = NormalizeProduct(ev.Product)
	case ToggleLabelText:
		next.ShowLabelText = !next.ShowLabelText
	}
	return next
}

// ParseQuery restores the shareable part of a snapshot from URL query
// parameters, overlaying it on base (the session snapshot). A shared link
// therefore reproduces the same selection and filter for any viewer.
func ParseQuery(values url.Values, base Snapshot) Snapshot {
	next := base
	if values.Has(paramSelectedChat) {
		next = Reduce(next, SelectChat{ChatID: values.Get(paramSelectedChat)})
	}
	if values.Has(paramProduct) {
		next = Reduce(next, SetProductFilter{Product: values.Get(paramProduct)})
	}
	return next
}

// EncodeQuery emits the shareable location parameters for a snapshot. Only
// the chat selection and product filter travel in the URL; topic focus and
// the label-text toggle stay session-local.
func EncodeQuery(s Snapshot) url.Values {
	values := url.Values{}
	if s.SelectedChatID != "" {
		values.Set(paramSelectedChat, s.SelectedChatID)
	}
	if s.Product != "" {
		values.Set(paramProduct, s.Product)
	}
	return values
}
