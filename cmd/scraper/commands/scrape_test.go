// ABOUTME: Tests for scrape command and URL file parsing
// ABOUTME: Verifies flags, args, and the urls-file line filter

package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewScrapeCmd(t *testing.T) {
	cmd := NewScrapeCmd()

	if cmd.Use != "scrape [url...]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "scrape [url...]")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestScrapeCmd_Flags(t *testing.T) {
	cmd := NewScrapeCmd()

	tests := []struct {
		flagName string
		defValue string
	}{
		{"urls-file", ""},
		{"no-analyze", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Fatalf("--%s flag not found", tt.flagName)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.flagName, flag.DefValue, tt.defValue)
			}
		})
	}
}

func TestScrapeCmd_Examples(t *testing.T) {
	cmd := NewScrapeCmd()

	// Long description should contain examples
	if !findSubstring(cmd.Long, "scraper scrape") {
		t.Error("Long description should contain usage examples")
	}

	if !findSubstring(cmd.Long, "--urls-file") {
		t.Error("Long description should mention --urls-file flag")
	}
}

func TestReadURLsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "urls.txt")

	content := `https://example.com/news/first-story

# a comment line
https://example.com/2024/05/second-story
not a url
ftp://example.com/skipped
https://example.org/story/third
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	urls, err := readURLsFile(path)
	if err != nil {
		t.Fatalf("readURLsFile() error = %v", err)
	}

	want := []string{
		"https://example.com/news/first-story",
		"https://example.com/2024/05/second-story",
		"https://example.org/story/third",
	}

	if len(urls) != len(want) {
		t.Fatalf("got %d URLs, want %d: %v", len(urls), len(want), urls)
	}
	for i, u := range want {
		if urls[i] != u {
			t.Errorf("urls[%d] = %q, want %q", i, urls[i], u)
		}
	}
}

func TestReadURLsFile_Missing(t *testing.T) {
	_, err := readURLsFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Error("readURLsFile() should fail for a missing file")
	}
}

func TestReadURLsFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, []byte("\n# only comments\n\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	urls, err := readURLsFile(path)
	if err != nil {
		t.Fatalf("readURLsFile() error = %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("got %d URLs from a comment-only file, want 0", len(urls))
	}
}
