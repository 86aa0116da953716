package interfaces

import (
	"context"

	"github.com/ternarybob/peto/internal/models"
)

// ScraperService is the entry point to the web discovery pipeline.
type ScraperService interface {
	// ScrapeRecruiters classifies the query, fetches and extracts candidate
	// contacts, and returns a deduplicated, bounded result. It never returns
	// an error: every failure mode, including panics inside the pipeline, is
	// absorbed into the result's StatusMessage, and the candidate list is
	// simply empty. StatusMessage is always non-empty.
	ScrapeRecruiters(ctx context.Context, req *models.ScrapeRequest) *models.ScrapeResult
}

// ScrapeObserver receives progress events while a scrape is running, so the
// UI can narrate long operations live. Implementations must be safe for
// concurrent use.
type ScrapeObserver interface {
	ScrapeProgress(step string)
}
