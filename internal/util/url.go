// ABOUTME: URL validation and normalization helpers for the scraper
// ABOUTME: Strips fragments and common tracking parameters before fetching
package util

import (
	"net/url"
	"strings"
)

// trackingParams are query parameters dropped during normalization
var trackingParams = map[string]bool{
	"utm_source":   true,
	"utm_medium":   true,
	"utm_campaign": true,
	"utm_term":     true,
	"utm_content":  true,
	"fbclid":       true,
	"gclid":        true,
	"msclkid":      true,
	"_ga":          true,
	"_gl":          true,
	"ref":          true,
	"source":       true,
}

// IsValidURL reports whether raw is an absolute http or https URL
func IsValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeURL strips the fragment and common tracking parameters.
// Unparseable input is returned unchanged.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Fragment = ""

	if u.RawQuery != "" {
		kept := url.Values{}
		for key, vals := range u.Query() {
			if trackingParams[strings.ToLower(key)] {
				continue
			}
			for _, v := range vals {
				kept.Add(key, v)
			}
		}
		u.RawQuery = kept.Encode()
	}

	return u.String()
}

// ExtractDomain returns the host portion of a URL, or "" when unparseable
func ExtractDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
