package scraper

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/models"
)

func newTestService(t *testing.T, cfg Config) *Service {
	t.Helper()
	service, err := NewService(cfg, common.GetLogger())
	require.NoError(t, err)
	return service
}

// recruiterCards renders n sibling cards with distinct names and emails
func recruiterCards(n int) string {
	html := `<html><body>`
	for i := 0; i < n; i++ {
		suffix := string(rune('A' + i))
		html += fmt.Sprintf(`<div>Person %s - Recruiter, person.%s@example.com</div>`, suffix, suffix)
	}
	return html + `</body></html>`
}

func TestScrapeRecruitersEmptyQuery(t *testing.T) {
	service := newTestService(t, testConfig())

	for _, query := range []string{"", "   "} {
		result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{Query: query})

		require.NotNil(t, result)
		assert.Empty(t, result.ScrapedRecruiters)
		assert.Contains(t, result.StatusMessage, "No search query was provided")
	}
}

func TestScrapeRecruitersKeywordFanOut(t *testing.T) {
	alpha := newCountingSite(t, map[string]string{"/search": recruiterCards(2)})
	beta := newCountingSite(t, map[string]string{"/search": recruiterCards(2)})

	cfg := testConfig()
	cfg.Sources = []Source{
		{Name: "Alpha", SearchURL: alpha.server.URL + "/search?q={query}"},
		{Name: "Beta", SearchURL: beta.server.URL + "/search?q={query}"},
	}
	service := newTestService(t, cfg)

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{
		Query:      "Acme recruiters",
		Source:     models.ScrapeSourceGeneralWeb,
		MaxResults: 10,
	})

	require.NotNil(t, result)
	// Both sources serve the same two people; cross-source dedup keeps two
	assert.Len(t, result.ScrapedRecruiters, 2)
	assert.Contains(t, result.StatusMessage, "Alpha yielded 2 candidate(s).")
	assert.Contains(t, result.StatusMessage, "Beta yielded 2 candidate(s).")
	assert.Contains(t, result.StatusMessage, "Found 2 recruiter(s) in total.")
}

func TestScrapeRecruitersStopsWhenSatisfied(t *testing.T) {
	alpha := newCountingSite(t, map[string]string{"/search": recruiterCards(3)})
	beta := newCountingSite(t, map[string]string{"/search": recruiterCards(3)})

	cfg := testConfig()
	cfg.Sources = []Source{
		{Name: "Alpha", SearchURL: alpha.server.URL + "/search?q={query}"},
		{Name: "Beta", SearchURL: beta.server.URL + "/search?q={query}"},
	}
	service := newTestService(t, cfg)

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{
		Query:      "Acme",
		MaxResults: 2,
	})

	require.Len(t, result.ScrapedRecruiters, 2)
	assert.Equal(t, 1, alpha.total())
	assert.Equal(t, 0, beta.total(), "later sources are skipped once the request is satisfied")
	assert.NotContains(t, result.StatusMessage, "Beta")
}

func TestScrapeRecruitersAllSourcesFail(t *testing.T) {
	down := newCountingSite(t, map[string]string{}) // every path is a 404

	cfg := testConfig()
	cfg.Sources = []Source{
		{Name: "Alpha", SearchURL: down.server.URL + "/a?q={query}"},
		{Name: "Beta", SearchURL: down.server.URL + "/b?q={query}"},
	}
	service := newTestService(t, cfg)

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{Query: "Acme"})

	require.NotNil(t, result)
	assert.Empty(t, result.ScrapedRecruiters)
	assert.Contains(t, result.StatusMessage, "Alpha was unreachable.")
	assert.Contains(t, result.StatusMessage, "Beta was unreachable.")
	assert.Contains(t, result.StatusMessage, "Found 0 recruiter(s) in total.")
}

func TestScrapeRecruitersDefaultMaxResults(t *testing.T) {
	source := newCountingSite(t, map[string]string{"/search": recruiterCards(7)})

	cfg := testConfig()
	cfg.DefaultResults = 5
	cfg.Sources = []Source{
		{Name: "Alpha", SearchURL: source.server.URL + "/search?q={query}"},
	}
	service := newTestService(t, cfg)

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{Query: "Acme"})

	assert.Len(t, result.ScrapedRecruiters, 5)
}

func TestScrapeRecruitersDirectURLCrawl(t *testing.T) {
	site := newCountingSite(t, map[string]string{
		"/careers": `<html><body>
			<a href="/careers/team">Team</a>
		</body></html>`,
		"/careers/team": `<html><body>
			<p>Jane Doe - Recruiter, jane@example.com</p>
		</body></html>`,
	})

	service := newTestService(t, testConfig())

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{
		Query: site.server.URL + "/careers",
	})

	require.Len(t, result.ScrapedRecruiters, 1)
	assert.Equal(t, "jane@example.com", result.ScrapedRecruiters[0].Email)
	assert.Contains(t, result.StatusMessage, "crawling")
	assert.Equal(t, 1, site.count("/careers/team"))
}

func TestScrapeRecruitersDirectURLSinglePage(t *testing.T) {
	site := newCountingSite(t, map[string]string{
		"/profile.html": `<html><body>
			<p>Jane Doe - Recruiter, jane@example.com</p>
			<a href="/other.html">More</a>
		</body></html>`,
		"/other.html": `<html><body><p>John Roe - Recruiter, john@example.com</p></body></html>`,
	})

	service := newTestService(t, testConfig())

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{
		Query: site.server.URL + "/profile.html",
	})

	// A document-like path is read as one page; its links are not followed
	require.Len(t, result.ScrapedRecruiters, 1)
	assert.Equal(t, 0, site.count("/other.html"))
	assert.Contains(t, result.StatusMessage, "Single-page extraction found 1 candidate(s).")
}

func TestScrapeRecruitersDirectURLUnreachable(t *testing.T) {
	site := newCountingSite(t, map[string]string{}) // 404 everywhere

	service := newTestService(t, testConfig())

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{
		Query: site.server.URL + "/gone.html",
	})

	require.NotNil(t, result)
	assert.Empty(t, result.ScrapedRecruiters)
	assert.Contains(t, result.StatusMessage, "returned HTTP 404")
}

type panickingObserver struct{}

func (panickingObserver) ScrapeProgress(string) { panic("observer exploded") }

func TestScrapeRecruitersRecoversFromPanic(t *testing.T) {
	cfg := testConfig()
	cfg.Sources = []Source{}
	service := newTestService(t, cfg)
	service.SetObserver(panickingObserver{})

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{Query: "Acme"})

	require.NotNil(t, result)
	assert.NotNil(t, result.ScrapedRecruiters)
	assert.Contains(t, result.StatusMessage, "internal error")
}

type recordingObserver struct {
	steps []string
}

func (o *recordingObserver) ScrapeProgress(step string) { o.steps = append(o.steps, step) }

func TestScrapeRecruitersObserverSeesEveryStep(t *testing.T) {
	source := newCountingSite(t, map[string]string{"/search": recruiterCards(1)})

	cfg := testConfig()
	cfg.Sources = []Source{
		{Name: "Alpha", SearchURL: source.server.URL + "/search?q={query}"},
	}
	service := newTestService(t, cfg)

	observer := &recordingObserver{}
	service.SetObserver(observer)

	result := service.ScrapeRecruiters(context.Background(), &models.ScrapeRequest{Query: "Acme"})

	require.NotEmpty(t, observer.steps)
	// The final status message is exactly the observed steps joined
	assert.Contains(t, result.StatusMessage, observer.steps[len(observer.steps)-1])
}

func TestSourceBuildURL(t *testing.T) {
	source := Source{Name: "Test", SearchURL: "https://search.example/?q={query}"}

	assert.Equal(t, "https://search.example/?q=Acme+Corp%26Co", source.BuildURL("Acme Corp&Co"))
}

func TestLoadEmbeddedSources(t *testing.T) {
	sources, err := loadSources()
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	for _, s := range sources {
		assert.NotEmpty(t, s.Name)
		assert.Contains(t, s.SearchURL, "{query}")
	}
}

func TestOrderSources(t *testing.T) {
	sources := []Source{{Name: "Alpha"}, {Name: "LinkedIn"}, {Name: "Beta"}}

	ordered := orderSources(sources, "LinkedIn")
	require.Len(t, ordered, 3)
	assert.Equal(t, "LinkedIn", ordered[0].Name)
	assert.Equal(t, "Alpha", ordered[1].Name)
	assert.Equal(t, "Beta", ordered[2].Name)

	assert.Equal(t, sources, orderSources(sources, ""))
}

func TestGuessCompanySite(t *testing.T) {
	assert.Equal(t, "https://www.acmecorp.com", guessCompanySite("Acme Corp"))
	assert.Equal(t, "https://www.initech.com", guessCompanySite("Initech"))
	assert.Equal(t, "", guessCompanySite("!!!"))
}

func TestLooksLikeCrawlSeed(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/careers", true},
		{"https://example.com/about-us", true},
		{"https://example.com/", true},
		{"https://example.com/profile.html", false},
		{"https://example.com/report.pdf", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, looksLikeCrawlSeed(tt.url), tt.url)
	}
}
