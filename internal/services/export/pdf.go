package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// Service implements interfaces.ExportService
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.ExportService = (*Service)(nil)

// NewService creates a new export service
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// ExportRecruitersPDF renders the recruiter list as an A4 PDF, one block per
// recruiter
func (s *Service) ExportRecruitersPDF(recruiters []*models.Recruiter) ([]byte, error) {
	s.logger.Debug().Int("recruiters", len(recruiters)).Msg("Exporting recruiter list to PDF")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Recruiter Contacts", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Exported %s - %d contact(s)", time.Now().Format("2006-01-02 15:04"), len(recruiters)), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.SetTextColor(0, 0, 0)

	if len(recruiters) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, "No recruiters saved yet.", "", 1, "L", false, 0, "")
	}

	for _, r := range recruiters {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, r.RecruiterName, "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		if r.Title != "" || r.CompanyName != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("%s, %s", r.Title, r.CompanyName), "", 1, "L", false, 0, "")
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("Email: %s", r.Email), "", 1, "L", false, 0, "")
		if r.LinkedInProfileURL != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("LinkedIn: %s", r.LinkedInProfileURL), "", 1, "L", false, 0, "")
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("Status: %s", r.Status), "", 1, "L", false, 0, "")
		if r.Notes != "" {
			pdf.SetFont("Arial", "I", 8)
			pdf.MultiCell(0, 4, r.Notes, "", "L", false)
			pdf.SetFont("Arial", "", 9)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate PDF output")
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}

	s.logger.Debug().Int("pdf_size", buf.Len()).Msg("Recruiter PDF generated")
	return buf.Bytes(), nil
}
