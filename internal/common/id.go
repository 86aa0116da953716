package common

import (
	"github.com/google/uuid"
)

// NewRecruiterID generates a unique recruiter ID with the "rec_" prefix
func NewRecruiterID() string {
	return "rec_" + uuid.New().String()
}

// NewTemplateID generates a unique template ID with the "tpl_" prefix
func NewTemplateID() string {
	return "tpl_" + uuid.New().String()
}

// NewDedupKey generates a random dedup key for candidates that carry neither
// an email nor a profile link, so they never collide with each other.
func NewDedupKey() string {
	return "anon:" + uuid.New().String()
}
