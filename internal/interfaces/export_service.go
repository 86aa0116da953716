package interfaces

import "github.com/ternarybob/peto/internal/models"

// ExportService produces downloadable artifacts from stored data
type ExportService interface {
	// ExportRecruitersPDF renders the recruiter list as a PDF document
	ExportRecruitersPDF(recruiters []*models.Recruiter) ([]byte, error)
}
