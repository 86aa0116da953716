package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks discovers every followable link on a page, normalized to
// absolute form and deduplicated. Scheme filtering happens inside
// NormalizeURL; anchors and non-navigational schemes are skipped up front.
func (e *Extractor) ExtractLinks(html, pageURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Debug().Err(err).Str("url", pageURL).Msg("Failed to parse HTML for links")
		return nil
	}

	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, exists := a.Attr("href")
		if !exists || shouldSkipLink(href) {
			return
		}

		normalized, ok := NormalizeURL(href, pageURL)
		if !ok || seen[normalized] {
			return
		}
		seen[normalized] = true
		links = append(links, normalized)
	})

	return links
}

func shouldSkipLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	if href == "" || strings.HasPrefix(href, "#") {
		return true
	}
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "sms:", "ftp:", "data:"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
