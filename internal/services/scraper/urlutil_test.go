package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"https url", "https://example.com/careers", true},
		{"http url", "http://example.com", true},
		{"with query", "https://example.com/jobs?q=recruiter", true},
		{"keyword phrase", "Acme Corp recruiters", false},
		{"empty", "", false},
		{"relative path", "/careers", false},
		{"ftp scheme", "ftp://example.com/file", false},
		{"scheme only", "https://", false},
		{"leading whitespace", "  https://example.com  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURL(tt.input))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name   string
		href   string
		base   string
		want   string
		wantOK bool
	}{
		{"relative resolved", "/careers", "https://example.com/about", "https://example.com/careers", true},
		{"absolute kept", "https://example.com/jobs", "https://other.com", "https://example.com/jobs", true},
		{"fragment stripped", "https://example.com/team#staff", "", "https://example.com/team", true},
		{"relative fragment stripped", "careers#open", "https://example.com/", "https://example.com/careers", true},
		{"javascript rejected", "javascript:void(0)", "https://example.com", "", false},
		{"mailto rejected", "mailto:jobs@example.com", "https://example.com", "", false},
		{"empty rejected", "", "https://example.com", "", false},
		{"no base relative rejected", "/careers", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeURL(tt.href, tt.base)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURLIdempotent(t *testing.T) {
	inputs := []struct{ href, base string }{
		{"/careers#top", "https://example.com/about"},
		{"https://Example.com/Jobs?page=2", ""},
		{"team/people", "https://example.com/company/"},
	}

	for _, in := range inputs {
		once, ok := NormalizeURL(in.href, in.base)
		require.True(t, ok)
		twice, ok := NormalizeURL(once, in.base)
		require.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestSameOrigin(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same host", "https://example.com/a", "https://example.com/b", true},
		{"scheme differs host same", "http://example.com", "https://example.com", true},
		{"case insensitive host", "https://Example.COM/a", "https://example.com", true},
		{"subdomain differs", "https://jobs.example.com", "https://example.com", false},
		{"different host", "https://example.com", "https://other.com", false},
		{"unparseable", "://bad", "https://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameOrigin(tt.a, tt.b))
		})
	}
}
