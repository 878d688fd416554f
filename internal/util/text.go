// ABOUTME: Text cleanup helpers shared by the scraper and command layers
// ABOUTME: Normalizes whitespace and typographic characters from web content
package util

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// typographicReplacer maps common typographic characters to plain ASCII
var typographicReplacer = strings.NewReplacer(
	" ", " ", // non-breaking space
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "--", // em dash
)

// CleanText collapses whitespace runs and normalizes typographic characters
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = typographicReplacer.Replace(text)
	return strings.TrimSpace(text)
}

// Truncate shortens text to maxLen characters, preferring a word boundary
// when one falls close enough to the limit, and appends "..." when it cuts
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	const suffix = "..."
	if maxLen <= len(suffix) {
		return text[:maxLen]
	}

	cut := text[:maxLen-len(suffix)]
	if idx := strings.LastIndex(cut, " "); idx > (maxLen*7)/10 {
		cut = cut[:idx]
	}
	return cut + suffix
}
