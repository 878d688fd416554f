// ABOUTME: Extracts JSON payloads from chat model responses
// ABOUTME: Handles markdown code fences and prose wrapped around the object
package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var codeBlockPattern = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

// extractJSON returns the first JSON object found in content, or "".
// Code-fenced blocks win over raw objects.
func extractJSON(content string) string {
	if matches := codeBlockPattern.FindStringSubmatch(content); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	// json.Decoder finds the object boundary even when values contain braces
	decoder := json.NewDecoder(strings.NewReader(content[start:]))
	var raw json.RawMessage
	if err := decoder.Decode(&raw); err == nil {
		return string(raw)
	}

	return ""
}
