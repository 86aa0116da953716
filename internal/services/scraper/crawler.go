package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/models"
)

// Crawler walks a single origin breadth-first, feeding each fetched page to
// the extractor. All traversal state lives in a frontier scoped to one
// CrawlSite call; nothing is shared across invocations.
type Crawler struct {
	config    Config
	logger    arbor.ILogger
	fetcher   *Fetcher
	extractor *Extractor
}

// NewCrawler creates a site crawler sharing the pipeline's fetcher and
// extractor
func NewCrawler(config Config, logger arbor.ILogger, fetcher *Fetcher, extractor *Extractor) *Crawler {
	return &Crawler{
		config:    config,
		logger:    logger,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

type frontierItem struct {
	url   string
	depth int
}

// frontier is the visited-set/deque pair for one crawl. Links whose path
// looks recruiting-relevant are pushed to the front so career/team/about
// pages are explored before generic ones.
type frontier struct {
	visited map[string]bool
	queue   []frontierItem
	maxLen  int
}

func newFrontier(seedURL string, maxLen int) *frontier {
	return &frontier{
		visited: map[string]bool{seedURL: true},
		queue:   []frontierItem{{url: seedURL, depth: 0}},
		maxLen:  maxLen,
	}
}

func (f *frontier) pop() (frontierItem, bool) {
	if len(f.queue) == 0 {
		return frontierItem{}, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item, true
}

func (f *frontier) pushFront(item frontierItem) {
	f.queue = append([]frontierItem{item}, f.queue...)
}

// pushBack appends only while the queue is under its cap, so link-dense
// pages cannot grow the frontier without bound
func (f *frontier) pushBack(item frontierItem) {
	if len(f.queue) >= f.maxLen {
		return
	}
	f.queue = append(f.queue, item)
}

// CrawlSite traverses the seed's origin breadth-first and returns the
// deduplicated candidates found. The crawl fetches at most MaxPages pages
// and stops early once the result budget is met. An unnormalizable seed
// terminates immediately with an empty result; there is no retry.
func (c *Crawler) CrawlSite(ctx context.Context, seedURL, orgName string, maxDepth int) []models.ContactCandidate {
	seed, ok := NormalizeURL(seedURL, "")
	if !ok {
		c.logger.Warn().Str("seed", seedURL).Msg("Invalid crawl seed")
		return nil
	}

	front := newFrontier(seed, c.config.frontierCap())
	var results []models.ContactCandidate
	fetched := 0

	for fetched < c.config.MaxPages && len(results) < c.config.resultBudget() {
		item, ok := front.pop()
		if !ok {
			break
		}

		if err := ctx.Err(); err != nil {
			break
		}

		fetched++
		html, err := c.fetcher.FetchPage(ctx, item.url)
		if err != nil {
			// A failed page is simply skipped; no retry, no backoff
			c.logger.Debug().Err(err).Str("url", item.url).Msg("Skipping page")
			continue
		}

		pageCandidates := c.extractor.Extract(html, item.url, orgName)
		results = dedupeCandidates(append(results, pageCandidates...))

		if item.depth >= maxDepth {
			continue
		}

		for _, link := range c.extractor.ExtractLinks(html, item.url) {
			if !SameOrigin(link, seed) || front.visited[link] {
				continue
			}
			// Mark visited at enqueue time so the same link discovered twice
			// on one page is not queued twice
			front.visited[link] = true

			next := frontierItem{url: link, depth: item.depth + 1}
			if c.pathLooksRelevant(link) {
				front.pushFront(next)
			} else {
				front.pushBack(next)
			}
		}
	}

	c.logger.Debug().
		Str("seed", seed).
		Int("pages_fetched", fetched).
		Int("candidates", len(results)).
		Msg("Site crawl finished")

	return truncateCandidates(results, c.config.resultBudget())
}

func (c *Crawler) pathLooksRelevant(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, kw := range c.config.PathKeywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}
