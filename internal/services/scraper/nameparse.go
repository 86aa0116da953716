package scraper

import (
	"net/url"
	"regexp"
	"strings"
)

// Name/title inference is inherently best-effort: each pattern is an
// independent strategy tried in order, first match wins. Keeping them as pure
// functions keeps the heuristics testable in isolation and swappable.

type nameTitle struct {
	Name  string
	Title string
}

var (
	// "Jane Doe - Senior Technical Recruiter": a short run of capitalized
	// tokens, a delimiter, then the rest of the line as title
	nameDelimRe = regexp.MustCompile(`^([A-Z][A-Za-z.'\-]+(?: [A-Z][A-Za-z.'\-]+){1,3})\s*[,\-–—|]\s*(.+)$`)

	// Tokens acceptable inside a person name; capitalized, letters plus
	// name punctuation, within a length band
	nameTokenRe = regexp.MustCompile(`^[A-Z][A-Za-z.'\-]{1,19}$`)

	// Tokens that plausibly continue a job title after the matched keyword
	titleContinuationRe = regexp.MustCompile(`(?i)^(manager|specialist|partner|lead|coordinator|consultant|advisor|executive|director|officer|of|senior|talent|acquisition|sourcing|operations|recruiting|recruitment)[,.]?$`)

	digitsRe = regexp.MustCompile(`^\d+$`)
)

// parseNameTitle derives a person name and job title from matched element
// text. kwStart/kwEnd delimit the first role-keyword match within text.
func parseNameTitle(text string, kwStart, kwEnd int) (nameTitle, bool) {
	if nt, ok := nameDelimiterTitle(text); ok {
		return nt, true
	}
	if nt, ok := nameBeforeKeyword(text, kwStart, kwEnd); ok {
		return nt, true
	}
	return nameTitle{}, false
}

// nameDelimiterTitle splits "Name <delimiter> Title" on the first line of the
// text
func nameDelimiterTitle(text string) (nameTitle, bool) {
	line := text
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)

	m := nameDelimRe.FindStringSubmatch(line)
	if m == nil {
		return nameTitle{}, false
	}

	name := strings.TrimSpace(m[1])
	title := strings.TrimSpace(m[2])

	// Guard against the whole string being captured as title
	if strings.HasPrefix(title, name) {
		title = strings.TrimSpace(strings.TrimPrefix(title, name))
		title = strings.TrimLeft(title, ",-–—| ")
	}
	title = cleanTitle(title)
	if title == "" {
		return nameTitle{}, false
	}

	return nameTitle{Name: name, Title: truncate(title, maxTitleLen)}, true
}

// cleanTitle strips email addresses and dangling separators that ride along
// when a title runs to the end of the element text
func cleanTitle(t string) string {
	t = emailRe.ReplaceAllString(t, "")
	return strings.Trim(strings.TrimSpace(t), ",-–—|: ")
}

// nameBeforeKeyword takes the last few short, letters-only tokens preceding
// the keyword match as the name, and the keyword phrase (extended forward
// while it still reads like a title) as the title.
func nameBeforeKeyword(text string, kwStart, kwEnd int) (nameTitle, bool) {
	if kwStart < 0 || kwStart > len(text) || kwEnd < kwStart || kwEnd > len(text) {
		return nameTitle{}, false
	}

	prefix := strings.TrimRight(strings.TrimSpace(text[:kwStart]), ",-–—|: ")
	tokens := strings.Fields(prefix)

	var nameTokens []string
	for i := len(tokens) - 1; i >= 0 && len(nameTokens) < 3; i-- {
		if !nameTokenRe.MatchString(tokens[i]) {
			break
		}
		nameTokens = append([]string{tokens[i]}, nameTokens...)
	}
	if len(nameTokens) < 2 {
		return nameTitle{}, false
	}

	name := strings.Join(nameTokens, " ")
	if len(name) < 4 || len(name) > 40 {
		return nameTitle{}, false
	}

	title := text[kwStart:kwEnd]
	rest := strings.Fields(text[kwEnd:])
	for i := 0; i < len(rest) && i < 4; i++ {
		if !titleContinuationRe.MatchString(rest[i]) {
			break
		}
		if len(title)+1+len(rest[i]) > maxTitleLen {
			break
		}
		title += " " + rest[i]
	}

	return nameTitle{Name: name, Title: truncate(strings.TrimSpace(title), maxTitleLen)}, true
}

// nameFromProfileSlug derives a display name from a LinkedIn profile URL's
// trailing path segment: separators become spaces, each word title-cased.
func nameFromProfileSlug(profileURL string) string {
	u, err := url.Parse(profileURL)
	if err != nil {
		return ""
	}

	path := strings.Trim(u.Path, "/")
	segments := strings.Split(path, "/")
	slug := segments[len(segments)-1]
	if slug == "" || slug == "in" {
		return ""
	}

	slug = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(slug)
	words := strings.Fields(slug)

	var out []string
	for _, w := range words {
		// Trailing numeric disambiguators in profile slugs are not name parts
		if digitsRe.MatchString(w) {
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+strings.ToLower(w[1:]))
	}
	return strings.Join(out, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}
