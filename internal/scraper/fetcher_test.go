// ABOUTME: Tests for the HTTP fetcher
// ABOUTME: Uses httptest servers to validate headers, limits, and error paths
package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testUserAgent = "news-scraper-test/1.0"

func newTestFetcher(maxBodySize int64) *Fetcher {
	return NewFetcher(5*time.Second, testUserAgent, maxBodySize)
}

func TestFetcher_Fetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	body, err := newTestFetcher(1024).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(string(body), "hello") {
		t.Errorf("body = %q, want page content", body)
	}
	if gotUserAgent != testUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, testUserAgent)
	}
}

func TestFetcher_Fetch_RejectsInvalidURL(t *testing.T) {
	tests := []string{"", "not-a-url", "ftp://example.com/file", "//missing-scheme.com"}

	for _, rawURL := range tests {
		if _, err := newTestFetcher(1024).Fetch(context.Background(), rawURL); err == nil {
			t.Errorf("Fetch(%q) expected error", rawURL)
		}
	}
}

func TestFetcher_Fetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestFetcher(1024).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error = %v, want HTTP 404 mentioned", err)
	}
}

func TestFetcher_Fetch_RejectsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	_, err := newTestFetcher(1024).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for non-HTML content type")
	}
	if !strings.Contains(err.Error(), "content type") {
		t.Errorf("error = %v, want content type mentioned", err)
	}
}

func TestFetcher_Fetch_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer server.Close()

	_, err := newTestFetcher(10).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for oversized body")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("error = %v, want size limit mentioned", err)
	}
}

func TestFetcher_Fetch_TooManyRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/next", http.StatusFound)
	}))
	defer server.Close()

	_, err := newTestFetcher(1024).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for redirect loop")
	}
	if !strings.Contains(err.Error(), "too many redirects") {
		t.Errorf("error = %v, want redirect limit mentioned", err)
	}
}
