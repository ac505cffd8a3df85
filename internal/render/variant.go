package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saleehq/agent-dashboard/internal/view"
)

// Theme is the handful of colors a variant can override in the page styles.
type Theme struct {
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Border     string `yaml:"border"`
	TextMuted  string `yaml:"text_muted"`
}

// Variant is one dashboard configuration. The three shipped dashboards are
// the same builder + renderer under different variants: columns shown, width
// budgets, theme.
type Variant struct {
	Name         string   `yaml:"name"`
	PreviewWidth int      `yaml:"preview_width"`
	TopicWidth   int      `yaml:"topic_width"`
	ListBadges   []string `yaml:"list_badges"`
	ShowTitle    bool     `yaml:"show_title"`
	Theme        Theme    `yaml:"theme"`
}

func (v Variant) BuildConfig() view.BuildConfig {
	cfg := view.BuildConfig{
		PreviewWidth: v.PreviewWidth,
		TopicWidth:   v.TopicWidth,
		ListBadges:   v.ListBadges,
	}
	if cfg.PreviewWidth <= 0 {
		cfg.PreviewWidth = 290
	}
	if cfg.TopicWidth <= 0 {
		cfg.TopicWidth = 200
	}
	return cfg
}

func defaultTheme() Theme {
	return Theme{
		Accent:     "#3b82f6",
		Background: "#f5f5f5",
		Surface:    "#ffffff",
		Border:     "#e5e7eb",
		TextMuted:  "#6b7280",
	}
}

// DefaultVariants mirrors the three dashboards that used to be separate
// pages: the full list, a compact triage list, and a review view with the
// classification badges inline.
func DefaultVariants() map[string]Variant {
	return map[string]Variant{
		"default": {
			Name:         "default",
			PreviewWidth: 290,
			TopicWidth:   200,
			ListBadges:   []string{"product", "next_action"},
			ShowTitle:    true,
			Theme:        defaultTheme(),
		},
		"compact": {
			Name:         "compact",
			PreviewWidth: 90,
			TopicWidth:   90,
			ListBadges:   []string{"product"},
			ShowTitle:    false,
			Theme:        defaultTheme(),
		},
		"review": {
			Name:         "review",
			PreviewWidth: 200,
			TopicWidth:   200,
			ListBadges:   []string{"product", "next_action", "intent", "relationship_stage", "temperature"},
			ShowTitle:    true,
			Theme: Theme{
				Accent:     "#7c3aed",
				Background: "#faf5ff",
				Surface:    "#ffffff",
				Border:     "#e9d5ff",
				TextMuted:  "#6b7280",
			},
		},
	}
}

type variantsFile struct {
	Variants []Variant `yaml:"variants"`
}

// LoadVariants reads variant overrides from a YAML file and merges them over
// the defaults. Missing theme fields fall back to the default theme.
func LoadVariants(path string) (map[string]Variant, error) {
	out := DefaultVariants()
	if path == "" {
		return out, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants file: %w", err)
	}
	var file variantsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse variants file: %w", err)
	}
	base := defaultTheme()
	for _, v := range file.Variants {
		if v.Name == "" {
			continue
		}
		if v.Theme.Accent == "" {
			v.Theme.Accent = base.Accent
		}
		if v.Theme.Background == "" {
			v.Theme.Background = base.Background
		}
		if v.Theme.Surface == "" {
			v.Theme.Surface = base.Surface
		}
		if v.Theme.Border == "" {
			v.Theme.Border = base.Border
		}
		if v.Theme.TextMuted == "" {
			v.Theme.TextMuted = base.TextMuted
		}
		out[v.Name] = v
	}
	return out, nil
}

// PickVariant resolves a requested variant name, falling back to default for
// unknown names so a stale link still renders.
func PickVariant(variants map[string]Variant, name string) Variant {
	if v, ok := variants[name]; ok {
		return v
	}
	return variants["default"]
}
