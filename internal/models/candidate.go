package models

import "strings"

// Sentinel values for candidate fields where extraction found nothing usable.
const (
	CandidateNameUnknown = "Unknown"
	CandidateEmailNA     = "N/A"
)

// ContactCandidate is an unconfirmed contact produced by the discovery
// pipeline, pending human review. A candidate is only ever emitted with a
// real email or a LinkedIn profile URL; keyword evidence alone is not enough.
type ContactCandidate struct {
	RecruiterName      string `json:"recruiterName"`
	CompanyName        string `json:"companyName"`
	Title              string `json:"title"`
	Email              string `json:"email"`
	LinkedInProfileURL string `json:"linkedInProfileUrl,omitempty"`
	// Notes records provenance: the source page URL plus a snippet of the
	// matched text, so a reviewer can judge why this candidate was extracted.
	Notes string `json:"notes,omitempty"`
}

// HasContactInfo reports whether the candidate carries enough evidence to be
// emitted: a non-sentinel email or a profile link.
func (c *ContactCandidate) HasContactInfo() bool {
	return (c.Email != "" && c.Email != CandidateEmailNA) || c.LinkedInProfileURL != ""
}

// DedupKey returns the identity used when merging candidates across pages and
// sources: lowercased email, else lowercased profile URL, else empty. Callers
// substitute a random key for the empty case so unkeyed candidates never
// collapse into each other.
func (c *ContactCandidate) DedupKey() string {
	if c.Email != "" && c.Email != CandidateEmailNA {
		return "email:" + strings.ToLower(c.Email)
	}
	if c.LinkedInProfileURL != "" {
		return "profile:" + strings.ToLower(c.LinkedInProfileURL)
	}
	return ""
}
