// ABOUTME: Tests for URL validation and normalization helpers
// ABOUTME: Verifies scheme checks, tracking-parameter removal, fragments
package util

import "testing"

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https", "https://example.com/news", true},
		{"http", "http://example.com", true},
		{"padded", "  https://example.com  ", true},
		{"ftp scheme", "ftp://example.com/file", false},
		{"no scheme", "example.com/news", false},
		{"scheme only", "https://", false},
		{"empty", "", false},
		{"garbage", "::not a url::", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidURL(tt.url); got != tt.want {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "drops tracking parameters",
			url:  "https://example.com/story?utm_source=feed&utm_medium=rss&id=42",
			want: "https://example.com/story?id=42",
		},
		{
			name: "drops fbclid",
			url:  "https://example.com/story?fbclid=abc123",
			want: "https://example.com/story",
		},
		{
			name: "drops fragment",
			url:  "https://example.com/story#comments",
			want: "https://example.com/story",
		},
		{
			name: "plain url unchanged",
			url:  "https://example.com/story",
			want: "https://example.com/story",
		},
		{
			name: "trims whitespace",
			url:  "  https://example.com/story  ",
			want: "https://example.com/story",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.url); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"host with path", "https://news.example.com/a/b", "news.example.com"},
		{"host with port", "https://example.com:8080/x", "example.com"},
		{"no host", "not-a-url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDomain(tt.url); got != tt.want {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
