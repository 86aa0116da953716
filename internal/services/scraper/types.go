package scraper

import (
	"time"

	"github.com/ternarybob/peto/internal/common"
)

// Limits that are not worth a config knob. Element text longer than the
// ceiling is page chrome, not a person record; the prefix length is the
// per-page dedup identity; title and snippet caps keep output reviewable.
const (
	maxElementTextLen = 500
	dedupPrefixLen    = 100
	maxTitleLen       = 70
	maxSnippetLen     = 160
	maxBodyBytes      = 2 << 20 // 2 MB response body cap
)

// defaultRoleKeywords match recruiter-shaped job titles, case-insensitive,
// whole word
var defaultRoleKeywords = []string{
	"recruiter",
	"talent acquisition",
	"sourcer",
	"hiring manager",
	"technical recruiter",
	"hr business partner",
	"people operations",
	"staffing",
	"head of talent",
	"talent partner",
	"recruitment specialist",
	"talent lead",
}

// defaultPathKeywords mark links worth exploring first during a site crawl
var defaultPathKeywords = []string{
	"career",
	"job",
	"contact",
	"team",
	"about",
	"people",
	"recruitment",
	"talent",
	"staff",
}

// Config carries every budget and heuristic input for one pipeline instance.
// It is immutable after construction; tests build their own with tight
// budgets instead of mutating package state.
type Config struct {
	UserAgent      string
	RequestTimeout time.Duration
	RequestDelay   time.Duration

	MaxPages        int // Site crawl page budget
	MaxDepth        int
	MaxPerPage      int // Extractor per-page candidate cap
	DefaultResults  int // MaxResults fallback for requests that omit it
	QueueMultiplier int // Frontier cap = MaxPages * QueueMultiplier

	RoleKeywords []string
	PathKeywords []string

	// Sources overrides the embedded catalog when non-nil (tests point these
	// at httptest servers)
	Sources []Source
}

// DefaultConfig returns pipeline defaults suitable for production use
func DefaultConfig() Config {
	return FromAppConfig(common.NewDefaultConfig().Scraper)
}

// FromAppConfig builds a pipeline Config from the application configuration,
// filling in the heuristic keyword sets.
func FromAppConfig(c common.ScraperConfig) Config {
	cfg := Config{
		UserAgent:       c.UserAgent,
		RequestTimeout:  c.RequestTimeout,
		RequestDelay:    c.RequestDelay,
		MaxPages:        c.MaxPages,
		MaxDepth:        c.MaxDepth,
		MaxPerPage:      c.MaxPerPage,
		DefaultResults:  c.DefaultResults,
		QueueMultiplier: c.QueueMultiplier,
		RoleKeywords:    defaultRoleKeywords,
		PathKeywords:    defaultPathKeywords,
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 4
	}
	if cfg.MaxPerPage <= 0 {
		cfg.MaxPerPage = 8
	}
	if cfg.DefaultResults <= 0 {
		cfg.DefaultResults = 5
	}
	if cfg.QueueMultiplier <= 0 {
		cfg.QueueMultiplier = 3
	}
	return cfg
}

// resultBudget bounds how many candidates a single site crawl accumulates
func (c Config) resultBudget() int {
	return 2 * c.MaxPerPage
}

// frontierCap bounds the crawl queue length on link-dense sites
func (c Config) frontierCap() int {
	return c.MaxPages * c.QueueMultiplier
}
