package scraper

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/models"
)

const defaultTitle = "Recruiter"

var (
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Page titles like "Acme Careers", "Jobs at Acme", "Acme Talent" name the
	// organization directly
	jobsAtTitleRe    = regexp.MustCompile(`(?i)\bjobs\s+at\s+(.+?)(?:\s*[|–—-].*)?$`)
	orgSuffixTitleRe = regexp.MustCompile(`(?i)^(.+?)\s*[|:–—-]*\s*(careers|talent|jobs|hiring|recruiting)\b`)
)

// Extractor scans page text for recruiter-shaped records and harvests contact
// evidence around each match.
type Extractor struct {
	config    Config
	logger    arbor.ILogger
	validate  *validator.Validate
	converter *md.Converter
	keywordRe *regexp.Regexp
}

// NewExtractor creates a contact extractor from the pipeline configuration
func NewExtractor(config Config, logger arbor.ILogger) *Extractor {
	keywords := make([]string, 0, len(config.RoleKeywords))
	for _, kw := range config.RoleKeywords {
		keywords = append(keywords, regexp.QuoteMeta(kw))
	}

	return &Extractor{
		config:    config,
		logger:    logger,
		validate:  validator.New(),
		converter: md.NewConverter("", true, nil),
		keywordRe: regexp.MustCompile(`(?i)\b(?:` + strings.Join(keywords, "|") + `)\b`),
	}
}

// Extract parses html and returns up to MaxPerPage contact candidates.
// Parse failures and empty pages yield an empty list, never an error; a page
// with nothing extractable is not a failure mode.
func (e *Extractor) Extract(html, pageURL, orgHint string) []models.ContactCandidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Debug().Err(err).Str("url", pageURL).Msg("Failed to parse HTML")
		return nil
	}

	org := e.resolveOrg(doc, pageURL, orgHint)

	var candidates []models.ContactCandidate
	seenText := make(map[string]bool)

	doc.Find("body *").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := normalizeWhitespace(sel.Text())
		if text == "" || len(text) > maxElementTextLen {
			// Long blocks are page chrome, not a person record
			return true
		}

		loc := e.keywordRe.FindStringIndex(text)
		if loc == nil {
			return true
		}

		// An element nested inside an already-matched ancestor repeats
		// (approximately) the same text; key on the leading prefix
		key := text
		if len(key) > dedupPrefixLen {
			key = key[:dedupPrefixLen]
		}
		if seenText[key] {
			return true
		}
		seenText[key] = true

		if candidate := e.buildCandidate(sel, text, loc, pageURL, org); candidate != nil {
			candidates = append(candidates, *candidate)
		}

		return len(candidates) < e.config.MaxPerPage
	})

	e.logger.Debug().
		Str("url", pageURL).
		Int("candidates", len(candidates)).
		Msg("Page extraction complete")

	return candidates
}

// buildCandidate assembles one candidate from a keyword-matched element.
// Returns nil when the element carries no contact evidence: text matching the
// role keywords alone is not enough to emit.
func (e *Extractor) buildCandidate(sel *goquery.Selection, text string, kwLoc []int, pageURL, org string) *models.ContactCandidate {
	email := e.findEmail(sel)
	profile := e.findProfileLink(sel, pageURL)

	if email == "" && profile == "" {
		return nil
	}

	name := models.CandidateNameUnknown
	title := defaultTitle
	if nt, ok := parseNameTitle(text, kwLoc[0], kwLoc[1]); ok {
		name = nt.Name
		if nt.Title != "" {
			title = nt.Title
		}
	} else if profile != "" {
		if slugName := nameFromProfileSlug(profile); slugName != "" {
			name = slugName
		}
	}

	if email == "" {
		email = models.CandidateEmailNA
	}

	return &models.ContactCandidate{
		RecruiterName:      name,
		CompanyName:        org,
		Title:              title,
		Email:              email,
		LinkedInProfileURL: profile,
		Notes:              fmt.Sprintf("Source: %s | Context: %s", pageURL, e.snippet(sel, text)),
	}
}

// findEmail looks for a mailto link or an email-shaped substring anywhere in
// the element's inner markup, keeping the first valid match.
func (e *Extractor) findEmail(sel *goquery.Selection) string {
	var found string

	sel.Find("a[href^='mailto:']").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if idx := strings.IndexByte(addr, '?'); idx >= 0 {
			addr = addr[:idx]
		}
		if e.validate.Var(addr, "email") == nil {
			found = addr
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	inner, err := sel.Html()
	if err != nil {
		inner = sel.Text()
	}
	for _, match := range emailRe.FindAllString(inner, -1) {
		if e.validate.Var(match, "email") == nil {
			return match
		}
	}
	return ""
}

// findProfileLink returns the first descendant link targeting a LinkedIn
// personal profile, normalized to absolute form.
func (e *Extractor) findProfileLink(sel *goquery.Selection, pageURL string) string {
	var found string

	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.Contains(strings.ToLower(href), "linkedin.com/in/") {
			return true
		}
		if normalized, ok := NormalizeURL(href, pageURL); ok {
			found = normalized
			return false
		}
		return true
	})

	return found
}

// resolveOrg picks the organization name: a "X Careers" / "Jobs at X" page
// title wins, then the caller's hint, then the page's domain name.
func (e *Extractor) resolveOrg(doc *goquery.Document, pageURL, orgHint string) string {
	title := normalizeWhitespace(doc.Find("title").First().Text())

	if m := jobsAtTitleRe.FindStringSubmatch(title); m != nil {
		if org := strings.TrimSpace(m[1]); org != "" {
			return org
		}
	}
	if m := orgSuffixTitleRe.FindStringSubmatch(title); m != nil {
		if org := strings.Trim(strings.TrimSpace(m[1]), "|:–—- "); org != "" {
			return org
		}
	}

	if orgHint != "" {
		return orgHint
	}
	return orgFromDomain(pageURL)
}

// snippet produces the provenance context: the matched element rendered to
// markdown (so links and emphasis survive review), collapsed and truncated.
func (e *Extractor) snippet(sel *goquery.Selection, fallback string) string {
	inner, err := sel.Html()
	if err == nil {
		if converted, err := e.converter.ConvertString(inner); err == nil {
			if s := normalizeWhitespace(converted); s != "" {
				return truncate(s, maxSnippetLen)
			}
		}
	}
	return truncate(fallback, maxSnippetLen)
}

// orgFromDomain guesses an organization from a hostname: "www.acme.com"
// becomes "Acme".
func orgFromDomain(pageURL string) string {
	host := hostOf(pageURL)
	if host == "" {
		return ""
	}
	host = strings.TrimPrefix(host, "www.")
	label := strings.SplitN(host, ".", 2)[0]
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
