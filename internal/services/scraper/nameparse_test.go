package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kwSpan(t *testing.T, text, keyword string) (int, int) {
	t.Helper()
	idx := strings.Index(strings.ToLower(text), strings.ToLower(keyword))
	require.GreaterOrEqual(t, idx, 0, "keyword %q not in %q", keyword, text)
	return idx, idx + len(keyword)
}

func TestParseNameTitleDelimiter(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		kw        string
		wantName  string
		wantTitle string
	}{
		{
			name:      "dash delimiter",
			text:      "Jane Doe - Senior Technical Recruiter",
			kw:        "Recruiter",
			wantName:  "Jane Doe",
			wantTitle: "Senior Technical Recruiter",
		},
		{
			name:      "comma delimiter",
			text:      "John A. Smith, Talent Acquisition Lead",
			kw:        "Talent Acquisition",
			wantName:  "John A. Smith",
			wantTitle: "Talent Acquisition Lead",
		},
		{
			name:      "pipe delimiter",
			text:      "Maria Garcia | Recruiting Manager",
			kw:        "Recruiting",
			wantName:  "Maria Garcia",
			wantTitle: "Recruiting Manager",
		},
		{
			name:      "trailing email stripped from title",
			text:      "Jane Doe - Senior Technical Recruiter, jane.doe@example.com",
			kw:        "Recruiter",
			wantName:  "Jane Doe",
			wantTitle: "Senior Technical Recruiter",
		},
		{
			name:      "only first line considered",
			text:      "Jane Doe - Technical Recruiter\nReach out to our team today",
			kw:        "Recruiter",
			wantName:  "Jane Doe",
			wantTitle: "Technical Recruiter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := kwSpan(t, tt.text, tt.kw)
			nt, ok := parseNameTitle(tt.text, start, end)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, nt.Name)
			assert.Equal(t, tt.wantTitle, nt.Title)
		})
	}
}

func TestParseNameTitleBeforeKeyword(t *testing.T) {
	text := "Questions? Jane Doe Recruiter at Acme"
	start, end := kwSpan(t, text, "Recruiter")

	nt, ok := parseNameTitle(text, start, end)
	require.True(t, ok)
	// "Questions?" fails the name-token shape, so the scan keeps only the
	// two tokens directly before the keyword
	assert.Equal(t, "Jane Doe", nt.Name)
	assert.Equal(t, "Recruiter", nt.Title)
}

func TestParseNameTitleKeywordPhraseExtension(t *testing.T) {
	text := "Reach out to Jane Doe Talent Acquisition manager today"
	start, end := kwSpan(t, text, "Talent Acquisition")

	nt, ok := parseNameTitle(text, start, end)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", nt.Name)
	assert.Equal(t, "Talent Acquisition manager", nt.Title)
}

func TestParseNameTitleRejections(t *testing.T) {
	tests := []struct {
		name string
		text string
		kw   string
	}{
		{"no name before keyword", "Our recruiters are hiring", "recruiter"},
		{"single token is not a name", "Jane recruiter contact", "recruiter"},
		{"lowercase prefix", "contact our recruiting team", "recruiting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := kwSpan(t, tt.text, tt.kw)
			_, ok := parseNameTitle(tt.text, start, end)
			assert.False(t, ok)
		})
	}
}

func TestNameFromProfileSlug(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"hyphen slug", "https://www.linkedin.com/in/jane-doe", "Jane Doe"},
		{"numeric disambiguator dropped", "https://linkedin.com/in/jane-doe-123456", "Jane Doe"},
		{"trailing slash", "https://www.linkedin.com/in/john-smith/", "John Smith"},
		{"underscore separators", "https://www.linkedin.com/in/jane_doe", "Jane Doe"},
		{"bare in segment", "https://www.linkedin.com/in/", ""},
		{"unparseable", "://bad", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameFromProfileSlug(tt.url))
		})
	}
}
