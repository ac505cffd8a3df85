package render

import (
	"strings"
	"testing"

	"github.com/saleehq/agent-dashboard/internal/view"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func basePageData() PageData {
	return PageData{
		Variant:       DefaultVariants()["default"],
		LogoURL:       "https://example.com/logo.webp",
		ShowLabelText: true,
		ProductOptions: []ProductOption{
			{Label: "All", Value: "", Selected: true},
		},
	}
}

func TestPage_EscapesWarehouseText(t *testing.T) {
	data := basePageData()
	data.Conversations = []view.ConversationRow{{
		ChatID:      "c1",
		DisplayName: `<script>alert("x")</script>`,
		Preview:     `a & b < c`,
	}}
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(page, `<script>alert`) {
		t.Fatalf("unescaped script tag in output")
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Fatalf("display name not escaped")
	}
}

func TestPage_SelectedRowClass(t *testing.T) {
	data := basePageData()
	data.Conversations = []view.ConversationRow{
		{ChatID: "c1", DisplayName: "A", Selected: true},
		{ChatID: "c2", DisplayName: "B"},
	}
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(page, "conversation-item selected") != 1 {
		t.Fatalf("expected exactly one selected row")
	}
}

func TestPage_BadgesRenderedOnlyWhenPresent(t *testing.T) {
	data := basePageData()
	data.Conversations = []view.ConversationRow{{
		ChatID:      "c1",
		DisplayName: "A",
		Badges:      []view.Badge{{Key: "product", Label: "Product", Value: "Salee"}},
	}}
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "Product: Salee") {
		t.Fatalf("badge missing")
	}
	if strings.Contains(page, "Next action:") {
		t.Fatalf("absent badge rendered")
	}
}

func TestPage_SidebarLabels(t *testing.T) {
	page, err := testRenderer(t).Page(basePageData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(page, "label-icon"); got < len(SidebarLabels) {
		t.Fatalf("expected %d sidebar labels, found %d", len(SidebarLabels), got)
	}
	if !strings.Contains(page, "Need Follow Up") {
		t.Fatalf("label text missing")
	}
}

func TestPage_IconsOnlyWhenLabelsHidden(t *testing.T) {
	data := basePageData()
	data.ShowLabelText = false
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "icons-only") {
		t.Fatalf("icons-only class missing")
	}
}

func TestPage_VariantParamCarriedInLinks(t *testing.T) {
	data := basePageData()
	data.VariantParam = "compact"
	data.Conversations = []view.ConversationRow{{ChatID: "c1", DisplayName: "A"}}
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "?toggle_labels=1&amp;variant=compact") {
		t.Fatalf("toggle link lost the variant parameter")
	}
	if !strings.Contains(page, "selected_chat_id=c1&amp;variant=compact") {
		t.Fatalf("chat link lost the variant parameter")
	}
}

func TestPage_NoVariantParamByDefault(t *testing.T) {
	page, err := testRenderer(t).Page(basePageData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(page, "variant=") {
		t.Fatalf("variant parameter emitted without an active variant")
	}
}

func TestPage_TopicsPanel(t *testing.T) {
	data := basePageData()
	data.WithTopics = true
	data.Topics = []view.TopicRow{{
		TopicID:      "t1",
		Summary:      "the topic",
		Meta:         []view.Badge{{Key: "intent", Label: "Intent", Value: "N/A"}},
		Keywords:     []string{"pricing"},
		Labels:       []string{"Hot"},
		RelativeTime: "2 hrs ago",
	}}
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "Topics (1)") {
		t.Fatalf("topics heading missing")
	}
	if !strings.Contains(page, "with-topics") {
		t.Fatalf("three-column layout class missing")
	}
	if !strings.Contains(page, "Intent: N/A") {
		t.Fatalf("detail N/A missing")
	}
	if !strings.Contains(page, "pricing") || !strings.Contains(page, "Hot") {
		t.Fatalf("keyword or label chip missing")
	}
}

func TestPage_EmptyTopics(t *testing.T) {
	data := basePageData()
	data.WithTopics = true
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "No topics found for this conversation.") {
		t.Fatalf("empty state missing")
	}
}

func TestPage_ErrorState(t *testing.T) {
	data := basePageData()
	data.ErrorMessage = "Unable to load conversation data."
	page, err := testRenderer(t).Page(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "load-error") {
		t.Fatalf("error block missing")
	}
	if strings.Contains(page, "conversation-list") {
		t.Fatalf("list rendered alongside the error state")
	}
}

func TestPage_EmptyConversationList(t *testing.T) {
	page, err := testRenderer(t).Page(basePageData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "No conversations available.") {
		t.Fatalf("empty list message missing")
	}
}
