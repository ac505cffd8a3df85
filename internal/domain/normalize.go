package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ScalarContext picks the empty-value rendering for DisplayScalar. List rows
// drop blank values entirely; detail panels show an explicit "N/A".
type ScalarContext int

const (
	ListContext ScalarContext = iota
	DetailContext
)

// StringList normalizes a raw keyword/label column of unknown shape into an
// ordered sequence of trimmed, non-empty strings. The fallback chain is:
// nil, native sequence, JSON-array string, comma-separated string, bare
// scalar. It never fails; unrecognized shapes degrade to the scalar branch.
func StringList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return trimNonEmpty(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return trimNonEmpty(parts)
	case string:
		return stringListFromString(v)
	default:
		s := strings.TrimSpace(stringify(v))
		if s == "" {
			return []string{}
		}
		return []string{s}
	}
}

func stringListFromString(s string) []string {
	var decoded []any
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		parts := make([]string, 0, len(decoded))
		for _, item := range decoded {
			parts = append(parts, stringify(item))
		}
		return trimNonEmpty(parts)
	}
	return trimNonEmpty(strings.Split(s, ","))
}

func trimNonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DisplayScalar renders an optional scalar for display. Null and blank values
// collapse to "" in list context and "N/A" in detail context.
func DisplayScalar(raw any, ctx ScalarContext) string {
	s := strings.TrimSpace(stringify(raw))
	if s == "" {
		if ctx == DetailContext {
			return "N/A"
		}
		return ""
	}
	return s
}

// stringify treats NaN like null: warehouse floats arrive as NaN for missing
// values and must degrade to blank, never the literal "NaN".
func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		return fmt.Sprint(t)
	case float32:
		if math.IsNaN(float64(t)) {
			return ""
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(v)
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
