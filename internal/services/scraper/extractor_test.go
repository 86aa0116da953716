package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/models"
)

func newTestExtractor(cfg Config) *Extractor {
	return NewExtractor(cfg, common.GetLogger())
}

func TestExtractCareersPageCandidate(t *testing.T) {
	html := `<html><head><title>Example Careers</title></head><body>
		<div class="team">
			<p>Jane Doe - Senior Technical Recruiter, jane.doe@example.com</p>
		</div>
	</body></html>`

	extractor := newTestExtractor(testConfig())
	candidates := extractor.Extract(html, "https://example.com/careers", "")

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "Jane Doe", c.RecruiterName)
	assert.Contains(t, c.Title, "Technical Recruiter")
	assert.Equal(t, "jane.doe@example.com", c.Email)
	assert.Equal(t, "Example", c.CompanyName)
	assert.Contains(t, c.Notes, "https://example.com/careers")
}

func TestExtractNestedElementsYieldOneCandidate(t *testing.T) {
	// The same text appears on the outer card and every nested element;
	// the prefix dedup keeps only the first
	html := `<html><body>
		<div class="card"><p><span>Jane Doe - Recruiter, jane.doe@example.com</span></p></div>
	</body></html>`

	extractor := newTestExtractor(testConfig())
	candidates := extractor.Extract(html, "https://example.com/team", "")

	assert.Len(t, candidates, 1)
}

func TestExtractKeywordWithoutContactIsSkipped(t *testing.T) {
	html := `<html><body>
		<p>Our recruiters are the best in the industry.</p>
		<p>Join our talent acquisition journey today.</p>
	</body></html>`

	extractor := newTestExtractor(testConfig())
	candidates := extractor.Extract(html, "https://example.com/about", "")

	assert.Empty(t, candidates)
}

func TestExtractMailtoLink(t *testing.T) {
	html := `<html><body>
		<div>
			<p>John Smith - Talent Acquisition Lead</p>
			<a href="mailto:john.smith@example.com?subject=Hi">Email John</a>
		</div>
	</body></html>`

	extractor := newTestExtractor(testConfig())
	candidates := extractor.Extract(html, "https://example.com/contact", "")

	require.NotEmpty(t, candidates)
	assert.Equal(t, "john.smith@example.com", candidates[0].Email)
}

func TestExtractProfileLinkOnly(t *testing.T) {
	html := `<html><body>
		<div>
			<span>Recruiter</span>
			<a href="https://www.linkedin.com/in/jane-doe-123">Profile</a>
		</div>
	</body></html>`

	extractor := newTestExtractor(testConfig())
	candidates := extractor.Extract(html, "https://example.com/team", "")

	require.NotEmpty(t, candidates)
	c := candidates[0]
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe-123", c.LinkedInProfileURL)
	assert.Equal(t, models.CandidateEmailNA, c.Email)
	// No name in the element text, so the profile slug supplies one
	assert.Equal(t, "Jane Doe", c.RecruiterName)
}

func TestExtractPerPageCap(t *testing.T) {
	var cards strings.Builder
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&cards, `<li>Person%d Example - Recruiter, person%d@example.com</li>`, i, i)
	}
	html := `<html><body><ul>` + cards.String() + `</ul></body></html>`

	cfg := testConfig()
	cfg.MaxPerPage = 3
	extractor := newTestExtractor(cfg)

	candidates := extractor.Extract(html, "https://example.com/team", "")
	assert.LessOrEqual(t, len(candidates), 3)
	assert.NotEmpty(t, candidates)
}

func TestExtractOrgResolution(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		orgHint string
		want    string
	}{
		{"jobs at pattern", "Jobs at Acme Corp", "", "Acme Corp"},
		{"careers suffix", "Initech Careers", "", "Initech"},
		{"hint when title is generic", "Welcome", "Globex", "Globex"},
		{"domain fallback", "Welcome", "", "Example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><head><title>` + tt.title + `</title></head><body>
				<p>Jane Doe - Recruiter, jane@example.com</p>
			</body></html>`

			extractor := newTestExtractor(testConfig())
			candidates := extractor.Extract(html, "https://www.example.com/careers", tt.orgHint)

			require.NotEmpty(t, candidates)
			assert.Equal(t, tt.want, candidates[0].CompanyName)
		})
	}
}

func TestExtractMalformedHTML(t *testing.T) {
	extractor := newTestExtractor(testConfig())

	// html.Parse tolerates almost anything; the contract is no panic and no
	// phantom candidates
	candidates := extractor.Extract("<<<not <html", "https://example.com", "")
	assert.Empty(t, candidates)
}

func TestExtractLinks(t *testing.T) {
	html := `<html><body>
		<a href="/careers">Careers</a>
		<a href="/careers">Careers again</a>
		<a href="https://other.com/jobs">External</a>
		<a href="#section">Anchor</a>
		<a href="mailto:hr@example.com">Mail</a>
		<a href="javascript:void(0)">JS</a>
		<a href="tel:+15551234">Call</a>
	</body></html>`

	extractor := newTestExtractor(testConfig())
	links := extractor.ExtractLinks(html, "https://example.com/")

	assert.Equal(t, []string{
		"https://example.com/careers",
		"https://other.com/jobs",
	}, links)
}

func TestDedupeCandidates(t *testing.T) {
	jane := models.ContactCandidate{RecruiterName: "Jane Doe", Email: "jane@example.com"}
	jane2 := models.ContactCandidate{RecruiterName: "Jane D.", Email: "JANE@example.com"}
	profile := models.ContactCandidate{RecruiterName: "John Smith", Email: models.CandidateEmailNA, LinkedInProfileURL: "https://linkedin.com/in/john-smith"}
	anonA := models.ContactCandidate{RecruiterName: "Unknown", Email: models.CandidateEmailNA}
	anonB := models.ContactCandidate{RecruiterName: "Unknown", Email: models.CandidateEmailNA}

	in := []models.ContactCandidate{jane, jane2, profile, profile, anonA, anonB}
	out := dedupeCandidates(in)

	// Case-insensitive email identity merges jane/jane2; the profile pair
	// merges; the two contact-free entries never merge
	require.Len(t, out, 4)
	assert.Equal(t, "Jane Doe", out[0].RecruiterName)

	// Idempotent: a second pass changes nothing
	again := dedupeCandidates(out)
	assert.Equal(t, out, again)
}

func TestTruncateCandidates(t *testing.T) {
	in := []models.ContactCandidate{{RecruiterName: "A"}, {RecruiterName: "B"}, {RecruiterName: "C"}}

	assert.Len(t, truncateCandidates(in, 2), 2)
	assert.Len(t, truncateCandidates(in, 5), 3)
	assert.Empty(t, truncateCandidates(in, 0))
	assert.Empty(t, truncateCandidates(in, -1))
}
