package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/peto/internal/common"
)

// countingSite serves a fixed page-path -> HTML map and records how often
// each path was requested
type countingSite struct {
	mu     sync.Mutex
	counts map[string]int
	pages  map[string]string
	server *httptest.Server
}

func newCountingSite(t *testing.T, pages map[string]string) *countingSite {
	t.Helper()
	site := &countingSite{
		counts: make(map[string]int),
		pages:  pages,
	}
	site.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.mu.Lock()
		site.counts[r.URL.Path]++
		site.mu.Unlock()

		page, ok := site.pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	t.Cleanup(site.server.Close)
	return site
}

func (s *countingSite) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

func (s *countingSite) count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[path]
}

func newTestCrawler(cfg Config) *Crawler {
	logger := common.GetLogger()
	return NewCrawler(cfg, logger, NewFetcher(cfg, logger), NewExtractor(cfg, logger))
}

func TestCrawlSiteFollowsLinksAndExtracts(t *testing.T) {
	site := newCountingSite(t, map[string]string{
		"/": `<html><head><title>Acme</title></head><body>
			<a href="/careers">Careers</a>
		</body></html>`,
		"/careers": `<html><body>
			<p>Jane Doe - Recruiter, jane@acme.example</p>
		</body></html>`,
	})

	cfg := testConfig()
	crawler := newTestCrawler(cfg)

	results := crawler.CrawlSite(context.Background(), site.server.URL+"/", "Acme", 2)

	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].RecruiterName)
	assert.Equal(t, "Acme", results[0].CompanyName)
	assert.Equal(t, 1, site.count("/careers"))
}

func TestCrawlSiteCycleTerminatesWithinBudget(t *testing.T) {
	// Two pages linking to each other; without the visited set this loops
	site := newCountingSite(t, map[string]string{
		"/a": `<html><body><a href="/b">b</a></body></html>`,
		"/b": `<html><body><a href="/a">a</a></body></html>`,
	})

	cfg := testConfig()
	cfg.MaxPages = 4
	crawler := newTestCrawler(cfg)

	results := crawler.CrawlSite(context.Background(), site.server.URL+"/a", "", 5)

	assert.Empty(t, results)
	assert.LessOrEqual(t, site.total(), cfg.MaxPages)
	assert.Equal(t, 1, site.count("/a"))
	assert.Equal(t, 1, site.count("/b"))
}

func TestCrawlSitePageBudget(t *testing.T) {
	pages := map[string]string{}
	var links string
	for i := 0; i < 10; i++ {
		path := fmt.Sprintf("/page%d", i)
		pages[path] = `<html><body>nothing here</body></html>`
		links += fmt.Sprintf(`<a href="%s">p</a>`, path)
	}
	pages["/"] = `<html><body>` + links + `</body></html>`
	site := newCountingSite(t, pages)

	cfg := testConfig()
	cfg.MaxPages = 3
	crawler := newTestCrawler(cfg)

	crawler.CrawlSite(context.Background(), site.server.URL+"/", "", 2)

	assert.Equal(t, cfg.MaxPages, site.total())
}

func TestCrawlSiteStaysOnOrigin(t *testing.T) {
	offsite := newCountingSite(t, map[string]string{
		"/": `<html><body><p>Jane Doe - Recruiter, jane@other.example</p></body></html>`,
	})

	site := newCountingSite(t, map[string]string{
		"/": fmt.Sprintf(`<html><body>
			<a href="%s/">Partner site</a>
			<a href="/team">Team</a>
		</body></html>`, offsite.server.URL),
		"/team": `<html><body>ok</body></html>`,
	})

	cfg := testConfig()
	crawler := newTestCrawler(cfg)

	crawler.CrawlSite(context.Background(), site.server.URL+"/", "", 2)

	assert.Equal(t, 0, offsite.total(), "offsite link must never be fetched")
	assert.Equal(t, 1, site.count("/team"))
}

func TestCrawlSiteRelevantPathsFirst(t *testing.T) {
	pages := map[string]string{
		"/": `<html><body>
			<a href="/pricing">Pricing</a>
			<a href="/blog">Blog</a>
			<a href="/careers">Careers</a>
		</body></html>`,
		"/pricing": `<html><body>x</body></html>`,
		"/blog":    `<html><body>x</body></html>`,
		"/careers": `<html><body>x</body></html>`,
	}
	site := newCountingSite(t, pages)

	cfg := testConfig()
	cfg.MaxPages = 2 // seed plus exactly one followed link
	crawler := newTestCrawler(cfg)

	crawler.CrawlSite(context.Background(), site.server.URL+"/", "", 2)

	assert.Equal(t, 1, site.count("/careers"), "career-like paths are explored before generic ones")
	assert.Equal(t, 0, site.count("/pricing"))
	assert.Equal(t, 0, site.count("/blog"))
}

func TestCrawlSiteSkipsFailedPages(t *testing.T) {
	site := newCountingSite(t, map[string]string{
		"/": `<html><body>
			<a href="/broken">Broken</a>
			<a href="/team">Team</a>
		</body></html>`,
		// "/broken" is absent and returns 404
		"/team": `<html><body><p>Jane Doe - Recruiter, jane@acme.example</p></body></html>`,
	})

	cfg := testConfig()
	crawler := newTestCrawler(cfg)

	results := crawler.CrawlSite(context.Background(), site.server.URL+"/", "", 2)

	require.Len(t, results, 1)
	assert.Equal(t, "jane@acme.example", results[0].Email)
}

func TestCrawlSiteInvalidSeed(t *testing.T) {
	crawler := newTestCrawler(testConfig())

	assert.Nil(t, crawler.CrawlSite(context.Background(), "not a url", "", 2))
}

func TestCrawlSiteCancelledContext(t *testing.T) {
	site := newCountingSite(t, map[string]string{
		"/": `<html><body>x</body></html>`,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	crawler := newTestCrawler(testConfig())
	results := crawler.CrawlSite(ctx, site.server.URL+"/", "", 2)

	assert.Empty(t, results)
	assert.Equal(t, 0, site.total())
}
