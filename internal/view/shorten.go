package view

import (
	"strings"
	"unicode"
)

const ellipsis = '…'

// Shorten truncates free text to at most width characters for display.
// Counting is rune-based so multi-byte summaries do not get cut mid-character.
// Callers pick the width for their rendering context; see render.Variant.
func Shorten(text string, width int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	runes := []rune(trimmed)
	if len(runes) <= width {
		return trimmed
	}
	if width < 1 {
		return string(ellipsis)
	}
	head := strings.TrimRightFunc(string(runes[:width-1]), unicode.IsSpace)
	return head + string(ellipsis)
}
