package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/saleehq/agent-dashboard/internal/view"
)

// SidebarLabel is a system-controlled sidebar entry. Icons and labels are
// static, never sourced from the warehouse.
type SidebarLabel struct {
	Icon string
	Text string
}

// SidebarLabels is the fixed label rail shown on every dashboard.
var SidebarLabels = []SidebarLabel{
	{"🔥", "Hot"},
	{"↑", "Need Follow Up"},
	{"$", "Investors"},
	{"👥", "Colleagues"},
	{"💼", "Hiring"},
	{"🚫", "Junk"},
	{"🌱", "Ron Mai Dagun"},
}

// ProductOption is one entry in the product filter control.
type ProductOption struct {
	Label    string
	Value    string
	Selected bool
}

// PageData is everything the page template needs. All judgment calls (badge
// suppression, truncation, selection) were already made by the view builder;
// the renderer only serializes.
type PageData struct {
	Variant Variant
	// VariantParam is the variant name carried in the request URL, re-emitted
	// on every internal link so navigation keeps the active variant. Empty
	// when the request used the default.
	VariantParam    string
	LogoURL         string
	ShowLabelText   bool
	SelectedChatID  string
	SelectedProduct string
	ProductOptions  []ProductOption
	Conversations   []view.ConversationRow
	WithTopics      bool
	Topics          []view.TopicRow
	TopicsError     string
	ErrorMessage    string
}

// Renderer serializes view-model rows into the dashboard page. Pure with
// respect to its inputs; all warehouse-sourced text passes through
// html/template's contextual escaping.
type Renderer struct {
	page *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"sidebarLabels": func() []SidebarLabel { return SidebarLabels },
	}
	page, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Page renders the full dashboard document.
func (r *Renderer) Page(data PageData) (string, error) {
	var sb strings.Builder
	if err := r.page.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return sb.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Salee Agent Conversations</title>
<style>
body {
    background-color: {{.Variant.Theme.Background}};
    margin: 0;
    padding: 32px 40px;
    font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
}
.header { display: flex; align-items: center; gap: 16px; margin-bottom: 28px; }
.header img { width: 48px; height: 48px; object-fit: contain; }
.header h1 { margin: 0; font-size: 24px; font-weight: 700; color: #111827; }
.header h1 span { font-weight: 400; color: {{.Variant.Theme.TextMuted}}; margin-left: 8px; display: inline-block; }
.toolbar { display: flex; align-items: center; gap: 16px; margin-bottom: 20px; }
.toolbar a.toggle { text-decoration: none; font-size: 18px; padding: 6px 10px; border: 1px solid {{.Variant.Theme.Border}}; border-radius: 8px; background: {{.Variant.Theme.Surface}}; }
.toolbar .filter { display: flex; gap: 8px; align-items: center; font-size: 14px; color: {{.Variant.Theme.TextMuted}}; }
.toolbar .filter a { text-decoration: none; padding: 6px 12px; border-radius: 999px; border: 1px solid {{.Variant.Theme.Border}}; color: #374151; background: {{.Variant.Theme.Surface}}; }
.toolbar .filter a.active { background: {{.Variant.Theme.Accent}}; border-color: {{.Variant.Theme.Accent}}; color: #ffffff; }
.app-shell-wrapper {
    background-color: {{.Variant.Theme.Surface}};
    border-radius: 24px;
    box-shadow: 0 12px 36px rgba(15, 23, 42, 0.12);
    display: grid;
    grid-template-columns: 220px 0.5fr;
    overflow: hidden;
    border: 1px solid {{.Variant.Theme.Border}};
}
.app-shell-wrapper.with-topics { grid-template-columns: 220px 0.5fr 400px; }
.app-shell-wrapper:has(.sidebar.icons-only) { grid-template-columns: 80px 0.5fr; }
.app-shell-wrapper.with-topics:has(.sidebar.icons-only) { grid-template-columns: 80px 0.5fr 400px; }
.sidebar { background-color: #fafafa; padding: 36px 26px; border-right: 1px solid {{.Variant.Theme.Border}}; }
.sidebar h2 { font-size: 16px; font-weight: 600; color: #111827; letter-spacing: 0.02em; margin: 0 0 24px 0; }
.sidebar ul { list-style: none; padding: 0; margin: 0; display: flex; flex-direction: column; gap: 18px; }
.sidebar li { display: flex; align-items: center; gap: 14px; font-size: 15px; color: #374151; }
.label-icon {
    display: flex; align-items: center; justify-content: center;
    width: 34px; height: 34px; border-radius: 50%;
    background-color: {{.Variant.Theme.Border}}; color: #1f2937; font-size: 18px; line-height: 1;
}
.label-text { font-weight: 500; letter-spacing: 0.01em; }
.sidebar.icons-only .label-text { display: none; }
.sidebar.icons-only h2 { display: none; }
.sidebar.icons-only { padding: 36px 16px; }
.content-wrapper { padding: 36px 40px; background-color: {{.Variant.Theme.Surface}}; overflow-y: auto; }
.conversation-list {
    background-color: {{.Variant.Theme.Surface}};
    border: 1px solid {{.Variant.Theme.Border}};
    border-radius: 20px;
    overflow-y: auto;
    max-height: calc(100vh - 200px);
    display: flex;
    flex-direction: column;
}
.conversation-list p { margin: 0; padding: 28px; text-align: center; color: {{.Variant.Theme.TextMuted}}; font-size: 15px; }
.conversation-item {
    display: flex; align-items: center; gap: 18px;
    padding: 18px 28px;
    border-bottom: 1px solid {{.Variant.Theme.Border}};
    transition: background-color 0.2s;
    text-decoration: none; color: inherit;
}
.conversation-item:hover { background-color: #f9fafb; }
.conversation-item.selected { background-color: #eff6ff; border-left: 3px solid {{.Variant.Theme.Accent}}; }
.conversation-item:last-child { border-bottom: none; }
.avatar { width: 48px; height: 48px; border-radius: 50%; background-color: #d1d5db; flex-shrink: 0; }
.conversation-content { flex: 1; display: flex; flex-direction: column; gap: 6px; }
.top-row { display: flex; flex-wrap: wrap; gap: 8px; align-items: baseline; }
.top-row a { text-decoration: none; }
.name { font-size: 16px; font-weight: 600; color: #111827; }
.title { font-size: 14px; color: rgb(86 88 100 / 38%); }
.preview { font-size: 15px; color: #4b5563; overflow: hidden; text-overflow: ellipsis; }
.bottom-row { display: flex; gap: 12px; align-items: center; flex-wrap: wrap; }
.time { font-size: 13px; color: #9ca3af; }
.badge { font-size: 13px; color: {{.Variant.Theme.TextMuted}}; }
.topics-panel { background-color: #f9fafb; padding: 24px; border-left: 1px solid {{.Variant.Theme.Border}}; overflow-y: auto; }
.topics-panel h3 { font-size: 18px; font-weight: 600; margin: 0 0 16px 0; color: #111827; }
.topic-item {
    background-color: {{.Variant.Theme.Surface}};
    padding: 16px; border-radius: 8px; margin-bottom: 12px;
    border: 1px solid {{.Variant.Theme.Border}};
    transition: box-shadow 0.2s;
}
.topic-item:hover { box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); }
.topic-item.selected { border-left: 3px solid {{.Variant.Theme.Accent}}; }
.topic-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 8px; }
.topic-id { font-weight: 600; color: {{.Variant.Theme.Accent}}; font-size: 14px; }
.topic-time { font-size: 12px; color: #9ca3af; }
.topic-summary { font-size: 14px; color: #374151; margin-bottom: 8px; line-height: 1.5; }
.topic-meta { display: flex; flex-wrap: wrap; gap: 12px; font-size: 12px; margin-bottom: 8px; }
.topic-meta span { padding: 4px 8px; background-color: #f3f4f6; border-radius: 4px; color: {{.Variant.Theme.TextMuted}}; }
.topic-keywords { display: flex; flex-wrap: wrap; gap: 8px; margin-top: 8px; }
.topic-keyword { padding: 4px 8px; background-color: #eef2ff; color: #3730a3; border-radius: 999px; font-size: 12px; line-height: 1; }
.topic-labels { display: flex; flex-wrap: wrap; gap: 8px; margin-top: 8px; }
.topic-label { padding: 4px 8px; background-color: #fef3c7; color: #92400e; border-radius: 999px; font-size: 12px; line-height: 1; }
.no-topics { text-align: center; color: #9ca3af; padding: 40px 20px; }
.load-error {
    background-color: #fef2f2; border: 1px solid #fecaca; color: #991b1b;
    border-radius: 12px; padding: 24px; font-size: 15px;
}
@media (max-width: 960px) {
    .app-shell-wrapper { grid-template-columns: 1fr; }
    .sidebar { display: none; }
    body { padding: 16px; }
    .content-wrapper { padding: 24px; }
}
</style>
</head>
<body>
<div class="header">
    <img src="{{.LogoURL}}" alt="Salee Agent logo" />
    <h1>Salee Agent <span>&mdash; AI-Powered B2B Sales Assistant</span></h1>
</div>
{{if .ErrorMessage}}
<div class="load-error">{{.ErrorMessage}}</div>
{{else}}
<div class="toolbar">
    <a class="toggle" href="?toggle_labels=1{{if .VariantParam}}&amp;variant={{.VariantParam}}{{end}}" title="Toggle Label Text">👁️</a>
    <div class="filter">
        <span>Filter by Product:</span>
        {{range .ProductOptions}}<a{{if .Selected}} class="active"{{end}} href="?product={{.Value}}{{if $.SelectedChatID}}&amp;selected_chat_id={{$.SelectedChatID}}{{end}}{{if $.VariantParam}}&amp;variant={{$.VariantParam}}{{end}}">{{.Label}}</a>{{end}}
    </div>
</div>
<div class="app-shell-wrapper{{if .WithTopics}} with-topics{{end}}">
    <aside class="sidebar{{if not .ShowLabelText}} icons-only{{end}}">
        <h2>Labels</h2>
        <ul>{{range sidebarLabels}}<li><span class="label-icon">{{.Icon}}</span><span class="label-text">{{.Text}}</span></li>{{end}}</ul>
    </aside>
    <section class="content-wrapper">
        <div class="conversation-list">
            {{if .Conversations}}{{range .Conversations}}<div class="conversation-item{{if .Selected}} selected{{end}}">
                <div class="avatar"></div>
                <div class="conversation-content">
                    <div class="top-row">
                        {{if .ChatID}}<a data-chat-id="{{.ChatID}}" href="?selected_chat_id={{.ChatID}}{{if $.SelectedProduct}}&amp;product={{$.SelectedProduct}}{{end}}{{if $.VariantParam}}&amp;variant={{$.VariantParam}}{{end}}"><span class="name">{{.DisplayName}}</span></a>{{else}}<span class="name">{{.DisplayName}}</span>{{end}}
                        {{if and $.Variant.ShowTitle .Title}}<span class="title">{{.Title}}</span>{{end}}
                    </div>
                    <div class="preview">{{if .Preview}}{{.Preview}}{{else}}No recent summary available.{{end}}</div>
                    <div class="bottom-row">
                        <span class="time">{{.RelativeTime}}</span>
                        {{range .Badges}}<span class="badge">{{.Label}}: {{.Value}}</span>{{end}}
                    </div>
                </div>
            </div>{{end}}{{else}}<p>No conversations available.</p>{{end}}
        </div>
    </section>
    {{if .WithTopics}}<aside class="topics-panel">
        <h3>Topics ({{len .Topics}})</h3>
        {{if .TopicsError}}<div class="no-topics">{{.TopicsError}}</div>{{else if not .Topics}}<div class="no-topics">No topics found for this conversation.</div>{{else}}{{range .Topics}}<div class="topic-item{{if .Selected}} selected{{end}}">
            <div class="topic-header">
                <span class="topic-id">{{.TopicID}}</span>
                <span class="topic-time">{{.RelativeTime}}</span>
            </div>
            <div class="topic-summary">{{.Summary}}</div>
            <div class="topic-meta">{{range .Meta}}<span>{{.Label}}: {{.Value}}</span>{{end}}</div>
            {{if .Labels}}<div class="topic-labels">{{range .Labels}}<span class="topic-label">{{.}}</span>{{end}}</div>{{end}}
            <div class="topic-keywords">{{if .Keywords}}{{range .Keywords}}<span class="topic-keyword">{{.}}</span>{{end}}{{else}}<span class="topic-keyword empty">No keywords</span>{{end}}</div>
        </div>{{end}}{{end}}
    </aside>{{end}}
</div>
{{end}}
</body>
</html>
`
