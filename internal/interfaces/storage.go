package interfaces

import (
	"github.com/ternarybob/peto/internal/models"
)

// RecruiterStorage persists accepted recruiters
type RecruiterStorage interface {
	SaveRecruiter(r *models.Recruiter) error
	GetRecruiter(id string) (*models.Recruiter, error)
	ListRecruiters() ([]*models.Recruiter, error)
	DeleteRecruiter(id string) error

	// FindByContact looks up a stored recruiter by lowercased email or
	// LinkedIn profile URL. Returns nil without error when nothing matches.
	// Callers use this to dedup scraped candidates against prior history
	// before saving.
	FindByContact(email, profileURL string) (*models.Recruiter, error)

	CountRecruiters() (int, error)
}

// TemplateStorage persists email templates
type TemplateStorage interface {
	SaveTemplate(t *models.EmailTemplate) error
	GetTemplate(id string) (*models.EmailTemplate, error)
	GetDefaultTemplate() (*models.EmailTemplate, error)
	ListTemplates() ([]*models.EmailTemplate, error)
	DeleteTemplate(id string) error
}

// UsageStorage persists the daily AI-call counter
type UsageStorage interface {
	GetUsage() (*models.APIUsage, error)
	SaveUsage(u *models.APIUsage) error
}

// StorageManager provides access to all storage backends
type StorageManager interface {
	RecruiterStorage() RecruiterStorage
	TemplateStorage() TemplateStorage
	UsageStorage() UsageStorage
	Close() error
}
