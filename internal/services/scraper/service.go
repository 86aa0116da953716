package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// Service is the query router: it classifies the caller's query, dispatches
// to single-page extraction, a site crawl, or a catalog fan-out, and merges
// everything into one bounded, deduplicated result with a narrative of what
// happened.
type Service struct {
	config    Config
	logger    arbor.ILogger
	fetcher   *Fetcher
	extractor *Extractor
	crawler   *Crawler
	sources   []Source
	observer  interfaces.ScrapeObserver
}

// NewService builds the discovery pipeline. The embedded source catalog is
// used unless the configuration supplies its own.
func NewService(config Config, logger arbor.ILogger) (*Service, error) {
	sources := config.Sources
	if sources == nil {
		loaded, err := loadSources()
		if err != nil {
			return nil, err
		}
		sources = loaded
	}

	fetcher := NewFetcher(config, logger)
	extractor := NewExtractor(config, logger)

	return &Service{
		config:    config,
		logger:    logger,
		fetcher:   fetcher,
		extractor: extractor,
		crawler:   NewCrawler(config, logger, fetcher, extractor),
		sources:   sources,
	}, nil
}

// SetObserver attaches a progress observer (typically the WebSocket hub)
func (s *Service) SetObserver(observer interfaces.ScrapeObserver) {
	s.observer = observer
}

// ScrapeRecruiters implements interfaces.ScraperService. It never returns an
// error and never panics outward; every failure becomes narrative text.
func (s *Service) ScrapeRecruiters(ctx context.Context, req *models.ScrapeRequest) (result *models.ScrapeResult) {
	narrative := &statusNarrative{service: s}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("panic", fmt.Sprintf("%v", r)).Msg("Scrape pipeline panicked")
			// Append directly: the observer may be what panicked, so it is
			// not notified from the recovery path
			narrative.fragments = append(narrative.fragments, fmt.Sprintf("Scraping stopped by an internal error: %v.", r))
			result = &models.ScrapeResult{
				ScrapedRecruiters: []models.ContactCandidate{},
				StatusMessage:     narrative.String(),
			}
		}
	}()

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return &models.ScrapeResult{
			ScrapedRecruiters: []models.ContactCandidate{},
			StatusMessage:     "No search query was provided. Enter a company name, keywords, or a direct URL to scrape.",
		}
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = s.config.DefaultResults
	}
	if maxResults < 0 {
		maxResults = 0
	}

	s.logger.Info().
		Str("query", query).
		Str("source", string(req.Source)).
		Int("max_results", maxResults).
		Msg("Scrape started")

	var candidates []models.ContactCandidate
	if IsValidURL(query) {
		candidates = s.scrapeDirectURL(ctx, query, narrative)
	} else {
		candidates = s.scrapeKeyword(ctx, query, req.Source, maxResults, narrative)
	}

	candidates = truncateCandidates(dedupeCandidates(candidates), maxResults)
	narrative.note(fmt.Sprintf("Found %d recruiter(s) in total.", len(candidates)))

	return &models.ScrapeResult{
		ScrapedRecruiters: candidates,
		StatusMessage:     narrative.String(),
	}
}

// scrapeDirectURL handles a query that is itself a URL: fetch it, then treat
// it as a single page or as a crawl seed depending on what the path looks
// like. LinkedIn URLs are always single-page; we do not walk someone else's
// site map.
func (s *Service) scrapeDirectURL(ctx context.Context, query string, narrative *statusNarrative) []models.ContactCandidate {
	narrative.note(fmt.Sprintf("Query looks like a URL: fetching %s.", query))

	if isLinkedInURL(query) {
		narrative.note("LinkedIn URLs are read as a single page; note that automated access is against LinkedIn's Terms of Service.")
	}

	html, err := s.fetcher.FetchPage(ctx, query)
	if err != nil {
		narrative.note(fetchFailureNote(err))
		return nil
	}

	if !isLinkedInURL(query) && looksLikeCrawlSeed(query) {
		narrative.note(fmt.Sprintf("Page looks like a site entry point: crawling up to %d pages on the same site.", s.config.MaxPages))
		found := s.crawler.CrawlSite(ctx, query, "", s.config.MaxDepth)
		narrative.note(fmt.Sprintf("Site crawl found %d candidate(s).", len(found)))
		return found
	}

	found := s.extractor.Extract(html, query, "")
	narrative.note(fmt.Sprintf("Single-page extraction found %d candidate(s).", len(found)))
	return found
}

// scrapeKeyword fans out across the source catalog, one source at a time.
// One source failing never aborts the rest, and the loop stops as soon as
// the caller's requested result count is met.
func (s *Service) scrapeKeyword(ctx context.Context, query string, hint models.ScrapeSource, maxResults int, narrative *statusNarrative) []models.ContactCandidate {
	narrative.note(fmt.Sprintf("Searching the web for %q.", query))

	var results []models.ContactCandidate

	if hint == models.ScrapeSourceCompanySite {
		if seed := guessCompanySite(query); seed != "" {
			narrative.note(fmt.Sprintf("Treating query as a company name: trying a site crawl at %s.", seed))
			found := s.crawler.CrawlSite(ctx, seed, query, s.config.MaxDepth)
			narrative.note(fmt.Sprintf("Company site crawl found %d candidate(s).", len(found)))
			results = dedupeCandidates(append(results, found...))
		}
	}

	preferred := ""
	if hint == models.ScrapeSourceLinkedIn {
		preferred = "LinkedIn"
	}

	for _, source := range orderSources(s.sources, preferred) {
		if len(results) >= maxResults {
			// The caller's need is met; don't spend budget on more sources
			break
		}
		if ctx.Err() != nil {
			narrative.note("Search cancelled before all sources were tried.")
			break
		}

		narrative.note(fmt.Sprintf("Trying %s...", source.Name))

		html, err := s.fetcher.FetchPage(ctx, source.BuildURL(query))
		if err != nil {
			s.logger.Debug().Err(err).Str("source", source.Name).Msg("Source unreachable")
			narrative.note(fmt.Sprintf("%s was unreachable.", source.Name))
			continue
		}

		found := s.extractor.Extract(html, source.BuildURL(query), query)
		narrative.note(fmt.Sprintf("%s yielded %d candidate(s).", source.Name, len(found)))
		results = dedupeCandidates(append(results, found...))
	}

	return results
}

// statusNarrative accumulates the human-readable account of a scrape and
// forwards each step to the progress observer when one is attached.
type statusNarrative struct {
	service   *Service
	fragments []string
}

func (n *statusNarrative) note(step string) {
	n.fragments = append(n.fragments, step)
	if n.service != nil && n.service.observer != nil {
		n.service.observer.ScrapeProgress(step)
	}
}

func (n *statusNarrative) String() string {
	return strings.Join(n.fragments, " ")
}

var fileExtensionRe = regexp.MustCompile(`\.[a-zA-Z0-9]{2,5}$`)

// looksLikeCrawlSeed decides page-vs-crawl for a direct URL: a path naming a
// careers/jobs/about-like page, or one without a file-extension-looking last
// segment, is worth crawling from.
func looksLikeCrawlSeed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, kw := range defaultPathKeywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return !fileExtensionRe.MatchString(path)
}

func isLinkedInURL(rawURL string) bool {
	host := hostOf(rawURL)
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// guessCompanySite turns a company-name query into a candidate homepage.
// Best effort only; the crawl simply finds nothing when the guess is wrong.
func guessCompanySite(query string) string {
	slug := nonAlnumRe.ReplaceAllString(strings.ToLower(query), "")
	if slug == "" {
		return ""
	}
	return "https://www." + slug + ".com"
}

func fetchFailureNote(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case FetchTimeout:
			return fmt.Sprintf("The page at %s timed out.", fe.URL)
		case FetchHTTPStatus:
			return fmt.Sprintf("The page at %s returned HTTP %d.", fe.URL, fe.StatusCode)
		case FetchUnsupportedContentType:
			return fmt.Sprintf("The page at %s is not an HTML document.", fe.URL)
		case FetchInvalidURL:
			return fmt.Sprintf("The URL %s could not be used.", fe.URL)
		}
	}
	return fmt.Sprintf("The page could not be fetched: %v.", err)
}
