package interfaces

import "github.com/ternarybob/peto/internal/models"

// TemplateFields are the values substituted into template placeholders
type TemplateFields struct {
	RecruiterName string
	CompanyName   string
	YourName      string
	YourSkills    string
}

// TemplateService manages email templates and placeholder rendering
type TemplateService interface {
	CreateTemplate(t *models.EmailTemplate) error
	GetTemplate(id string) (*models.EmailTemplate, error)
	GetDefaultTemplate() (*models.EmailTemplate, error)
	ListTemplates() ([]*models.EmailTemplate, error)
	UpdateTemplate(t *models.EmailTemplate) error
	DeleteTemplate(id string) error

	// Render substitutes placeholder values into subject and body
	Render(t *models.EmailTemplate, fields TemplateFields) (subject, body string)

	// PreviewHTML renders the template body (markdown) to HTML for the editor
	// preview pane
	PreviewHTML(t *models.EmailTemplate, fields TemplateFields) (string, error)
}
