// ABOUTME: Tests for text cleanup and truncation helpers
// ABOUTME: Covers whitespace collapsing, typographic normalization, word breaks
package util

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"collapses whitespace", "too   many\n\nspaces\there", "too many spaces here"},
		{"trims", "  padded  ", "padded"},
		{"curly quotes", "“quoted” and ’apostrophe’", `"quoted" and 'apostrophe'`},
		{"dashes", "a–b and c—d", "a-b and c--d"},
		{"non-breaking space", "a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.text); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"shorter unchanged", "short", 10, "short"},
		{"exact length unchanged", "exact", 5, "exact"},
		{"hard cut without space", "abcdefghij", 8, "abcde..."},
		{"tiny limit", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncate_PrefersWordBoundary(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	got := Truncate(text, 20)

	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate() = %q, want ellipsis suffix", got)
	}
	if len(got) > 20 {
		t.Errorf("Truncate() length = %d, want at most 20", len(got))
	}
	// The cut should not land mid-word when a space is close by
	body := strings.TrimSuffix(got, "...")
	if strings.HasSuffix(body, " ") {
		t.Errorf("Truncate() = %q, trailing space should be consumed by the break", got)
	}
}
