package models

// ScrapeSource is an optional hint for where a scrape query should be aimed
type ScrapeSource string

const (
	ScrapeSourceLinkedIn    ScrapeSource = "linkedin"
	ScrapeSourceCompanySite ScrapeSource = "company_site"
	ScrapeSourceGeneralWeb  ScrapeSource = "general_web"
)

// Valid reports whether the source hint is one of the known values
func (s ScrapeSource) Valid() bool {
	switch s {
	case ScrapeSourceLinkedIn, ScrapeSourceCompanySite, ScrapeSourceGeneralWeb:
		return true
	}
	return false
}

// ScrapeRequest is the input to the discovery pipeline. Query is required;
// MaxResults defaults from configuration when zero.
type ScrapeRequest struct {
	Query      string       `json:"query"`
	Source     ScrapeSource `json:"source,omitempty"`
	MaxResults int          `json:"maxResults,omitempty"`
}

// ScrapeResult is what the pipeline always returns: a bounded candidate list
// and a human-readable narrative of what was attempted, even when the list is
// empty.
type ScrapeResult struct {
	ScrapedRecruiters []ContactCandidate `json:"scrapedRecruiters"`
	StatusMessage     string             `json:"statusMessage"`
}
