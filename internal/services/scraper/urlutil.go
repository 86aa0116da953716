package scraper

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s parses as an absolute http(s) URL. No network
// access.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeURL resolves href against base and returns the canonical absolute
// form. Every discovered link passes through here before being queued or
// compared. Returns ok=false instead of an error for anything that is not an
// absolute http(s) URL after resolution; fragments are stripped.
func NormalizeURL(href, base string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := ref
	if base != "" {
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", false
		}
		resolved = baseURL.ResolveReference(ref)
	}

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if resolved.Host == "" {
		return "", false
	}

	resolved.Fragment = ""
	return resolved.String(), true
}

// SameOrigin reports whether two URLs share a host, port included. Strict
// equality, no subdomain fuzziness; this is what keeps a crawl confined to
// one site.
func SameOrigin(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host != "" && strings.EqualFold(ua.Host, ub.Host)
}

// hostOf returns the lowercased hostname of a URL, or empty when unparseable
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
