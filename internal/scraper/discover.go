// ABOUTME: Article link discovery from section and front pages
// ABOUTME: Walks anchors in the HTML and filters them through URL heuristics
package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alex-peresunko/news-scraper/internal/util"
)

var articlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/\d{4}/\d{2}/`),
	regexp.MustCompile(`/story/`),
	regexp.MustCompile(`/article/`),
	regexp.MustCompile(`/news/`),
}

var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/category/`),
	regexp.MustCompile(`/tag/`),
	regexp.MustCompile(`/author/`),
}

// IsLikelyArticleURL reports whether a URL path looks like an article page.
// Exclusion patterns win over article patterns.
func IsLikelyArticleURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)

	for _, p := range excludePatterns {
		if p.MatchString(path) {
			return false
		}
	}
	for _, p := range articlePatterns {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}

// ExtractLinks collects likely article links from an HTML page.
// Relative hrefs are resolved against pageURL; order follows document
// order with duplicates removed.
func ExtractLinks(body []byte, pageURL string, sameDomainOnly bool) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var links []string
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				link, ok := resolveLink(base, attr.Val, sameDomainOnly)
				if ok && !seen[link] {
					seen[link] = true
					links = append(links, link)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

// resolveLink resolves an href against the base URL and applies the
// article heuristics
func resolveLink(base *url.URL, href string, sameDomainOnly bool) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if sameDomainOnly && resolved.Hostname() != base.Hostname() {
		return "", false
	}

	link := util.NormalizeURL(resolved.String())
	if !IsLikelyArticleURL(link) {
		return "", false
	}
	return link, true
}
