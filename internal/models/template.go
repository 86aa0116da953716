package models

import "time"

// EmailTemplate is a reusable outreach email with placeholder slots.
// Recognized placeholders: {recruiter_name}, {company_name}, {your_name},
// {your_skills}.
type EmailTemplate struct {
	ID        string    `json:"id" badgerhold:"key"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsDefault bool      `json:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
