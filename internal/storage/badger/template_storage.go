package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// TemplateStorage implements the TemplateStorage interface for Badger
type TemplateStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewTemplateStorage creates a new TemplateStorage instance
func NewTemplateStorage(db *BadgerDB, logger arbor.ILogger) interfaces.TemplateStorage {
	return &TemplateStorage{
		db:     db,
		logger: logger,
	}
}

func (s *TemplateStorage) SaveTemplate(t *models.EmailTemplate) error {
	if t.ID == "" {
		t.ID = common.NewTemplateID()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	if err := s.db.Store().Upsert(t.ID, t); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

func (s *TemplateStorage) GetTemplate(id string) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	if err := s.db.Store().Get(id, &t); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("template not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}

// GetDefaultTemplate returns the template flagged as default, or the oldest
// template when none is flagged
func (s *TemplateStorage) GetDefaultTemplate() (*models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	if err := s.db.Store().Find(&templates, badgerhold.Where("IsDefault").Eq(true)); err != nil {
		return nil, fmt.Errorf("failed to find default template: %w", err)
	}
	if len(templates) > 0 {
		return &templates[0], nil
	}

	all, err := s.ListTemplates()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no templates exist")
	}

	oldest := all[0]
	for _, t := range all[1:] {
		if t.CreatedAt.Before(oldest.CreatedAt) {
			oldest = t
		}
	}
	return oldest, nil
}

func (s *TemplateStorage) ListTemplates() ([]*models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	if err := s.db.Store().Find(&templates, nil); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	result := make([]*models.EmailTemplate, len(templates))
	for i := range templates {
		result[i] = &templates[i]
	}
	return result, nil
}

func (s *TemplateStorage) DeleteTemplate(id string) error {
	if err := s.db.Store().Delete(id, &models.EmailTemplate{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
