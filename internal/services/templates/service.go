package templates

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// starter is seeded on first run so personalization has a base template to
// work from before the user writes their own
var starter = models.EmailTemplate{
	Name:      "Introduction",
	Subject:   "Experienced candidate interested in opportunities at {company_name}",
	Body:      "Hi {recruiter_name},\n\nI came across your profile while researching {company_name} and wanted to reach out directly.\n\nI am {your_name}, and my background covers {your_skills}. I would welcome the chance to talk about roles you are currently hiring for.\n\nBest regards,\n{your_name}",
	IsDefault: true,
}

// Service manages email templates: CRUD over storage, placeholder rendering,
// and a markdown preview for the editor.
type Service struct {
	logger   arbor.ILogger
	storage  interfaces.TemplateStorage
	markdown goldmark.Markdown
}

// NewService creates a template service
func NewService(storage interfaces.TemplateStorage, logger arbor.ILogger) *Service {
	return &Service{
		logger:  logger,
		storage: storage,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
		),
	}
}

// EnsureStarterTemplate seeds the built-in template when the store is empty.
// Called once at startup; a user who deletes every template gets it back on
// the next restart.
func (s *Service) EnsureStarterTemplate() error {
	existing, err := s.storage.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to check existing templates: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seed := starter
	if err := s.storage.SaveTemplate(&seed); err != nil {
		return fmt.Errorf("failed to seed starter template: %w", err)
	}

	s.logger.Info().Str("template_id", seed.ID).Msg("Seeded starter email template")
	return nil
}

func (s *Service) CreateTemplate(t *models.EmailTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template name is required")
	}
	if strings.TrimSpace(t.Body) == "" {
		return fmt.Errorf("template body is required")
	}

	if t.IsDefault {
		if err := s.clearDefaultFlag(); err != nil {
			return err
		}
	}
	return s.storage.SaveTemplate(t)
}

func (s *Service) GetTemplate(id string) (*models.EmailTemplate, error) {
	return s.storage.GetTemplate(id)
}

func (s *Service) GetDefaultTemplate() (*models.EmailTemplate, error) {
	return s.storage.GetDefaultTemplate()
}

func (s *Service) ListTemplates() ([]*models.EmailTemplate, error) {
	return s.storage.ListTemplates()
}

func (s *Service) UpdateTemplate(t *models.EmailTemplate) error {
	if t.ID == "" {
		return fmt.Errorf("template ID is required")
	}
	if _, err := s.storage.GetTemplate(t.ID); err != nil {
		return err
	}

	if t.IsDefault {
		if err := s.clearDefaultFlag(); err != nil {
			return err
		}
	}
	return s.storage.SaveTemplate(t)
}

func (s *Service) DeleteTemplate(id string) error {
	return s.storage.DeleteTemplate(id)
}

// clearDefaultFlag unflags every template so at most one default exists
func (s *Service) clearDefaultFlag() error {
	all, err := s.storage.ListTemplates()
	if err != nil {
		return err
	}
	for _, existing := range all {
		if !existing.IsDefault {
			continue
		}
		existing.IsDefault = false
		if err := s.storage.SaveTemplate(existing); err != nil {
			return err
		}
	}
	return nil
}

// Render substitutes placeholder values into subject and body. Unknown
// placeholders are left in place so the user can spot them.
func (s *Service) Render(t *models.EmailTemplate, fields interfaces.TemplateFields) (string, string) {
	replacer := strings.NewReplacer(
		"{recruiter_name}", fields.RecruiterName,
		"{company_name}", fields.CompanyName,
		"{your_name}", fields.YourName,
		"{your_skills}", fields.YourSkills,
	)
	return replacer.Replace(t.Subject), replacer.Replace(t.Body)
}

// PreviewHTML renders the substituted body as markdown for the editor's
// preview pane
func (s *Service) PreviewHTML(t *models.EmailTemplate, fields interfaces.TemplateFields) (string, error) {
	_, body := s.Render(t, fields)

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render template preview: %w", err)
	}
	return buf.String(), nil
}
