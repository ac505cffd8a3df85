package view

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestShorten_LongText(t *testing.T) {
	got := Shorten("Hello, this is long", 10)
	if n := utf8.RuneCountInString(got); n > 10 {
		t.Fatalf("length %d exceeds width: %q", n, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("missing ellipsis: %q", got)
	}
}

func TestShorten_ShortTextUnchanged(t *testing.T) {
	if got := Shorten("  hi there  ", 90); got != "hi there" {
		t.Fatalf("got %q", got)
	}
}

func TestShorten_ExactWidthUnchanged(t *testing.T) {
	in := strings.Repeat("a", 10)
	if got := Shorten(in, 10); got != in {
		t.Fatalf("got %q", got)
	}
}

func TestShorten_Blank(t *testing.T) {
	if got := Shorten("   ", 10); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Shorten("", 10); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestShorten_TrailingWhitespaceTrimmedBeforeEllipsis(t *testing.T) {
	got := Shorten("abcdef    xyz", 8)
	if strings.Contains(got, " …") {
		t.Fatalf("whitespace before ellipsis: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("missing ellipsis: %q", got)
	}
}

func TestShorten_UnicodeWhitespaceTrimmedBeforeEllipsis(t *testing.T) {
	for _, in := range []string{
		"abcdef\r\n\r\nxyz tail",
		"abcdef  xyz tail",
	} {
		got := Shorten(in, 8)
		if !strings.HasSuffix(got, "…") {
			t.Fatalf("missing ellipsis: %q", got)
		}
		body := strings.TrimSuffix(got, "…")
		if trimmed := strings.TrimRightFunc(body, unicode.IsSpace); trimmed != body {
			t.Fatalf("whitespace before ellipsis: %q", got)
		}
	}
}

func TestShorten_MultiByte(t *testing.T) {
	got := Shorten("héllo wörld, this is lông", 10)
	if n := utf8.RuneCountInString(got); n > 10 {
		t.Fatalf("rune length %d exceeds width: %q", n, got)
	}
}
