package models

import "time"

// RecruiterStatus tracks where a stored recruiter sits in the outreach lifecycle
type RecruiterStatus string

const (
	RecruiterStatusPending      RecruiterStatus = "pending"
	RecruiterStatusPersonalized RecruiterStatus = "personalized"
	RecruiterStatusSent         RecruiterStatus = "sent"
	RecruiterStatusReplied      RecruiterStatus = "replied"
	RecruiterStatusSaved        RecruiterStatus = "saved"
	RecruiterStatusError        RecruiterStatus = "error"
)

// Recruiter is a stored, accepted contact. Candidates returned by the scraper
// only become Recruiters once the user saves them.
type Recruiter struct {
	ID                       string          `json:"id" badgerhold:"key"`
	CompanyName              string          `json:"companyName"`
	RecruiterName            string          `json:"recruiterName"`
	Title                    string          `json:"title"`
	Email                    string          `json:"email"`
	LinkedInProfileURL       string          `json:"linkedInProfileUrl,omitempty"`
	Status                   RecruiterStatus `json:"status"`
	LastContacted            *time.Time      `json:"lastContacted,omitempty"`
	PersonalizedEmailSubject string          `json:"personalizedEmailSubject,omitempty"`
	PersonalizedEmailBody    string          `json:"personalizedEmailBody,omitempty"`
	Notes                    string          `json:"notes,omitempty"`
	ErrorMessage             string          `json:"errorMessage,omitempty"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}
