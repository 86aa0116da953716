package badger

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// RecruiterStorage implements the RecruiterStorage interface for Badger
type RecruiterStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewRecruiterStorage creates a new RecruiterStorage instance
func NewRecruiterStorage(db *BadgerDB, logger arbor.ILogger) interfaces.RecruiterStorage {
	return &RecruiterStorage{
		db:     db,
		logger: logger,
	}
}

func (s *RecruiterStorage) SaveRecruiter(r *models.Recruiter) error {
	if r.ID == "" {
		r.ID = common.NewRecruiterID()
	}
	if r.Status == "" {
		r.Status = models.RecruiterStatusPending
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	if err := s.db.Store().Upsert(r.ID, r); err != nil {
		return fmt.Errorf("failed to save recruiter: %w", err)
	}
	return nil
}

func (s *RecruiterStorage) GetRecruiter(id string) (*models.Recruiter, error) {
	var r models.Recruiter
	if err := s.db.Store().Get(id, &r); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("recruiter not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get recruiter: %w", err)
	}
	return &r, nil
}

func (s *RecruiterStorage) ListRecruiters() ([]*models.Recruiter, error) {
	var recruiters []models.Recruiter
	if err := s.db.Store().Find(&recruiters, nil); err != nil {
		return nil, fmt.Errorf("failed to list recruiters: %w", err)
	}

	result := make([]*models.Recruiter, len(recruiters))
	for i := range recruiters {
		result[i] = &recruiters[i]
	}
	return result, nil
}

func (s *RecruiterStorage) DeleteRecruiter(id string) error {
	if err := s.db.Store().Delete(id, &models.Recruiter{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete recruiter: %w", err)
	}
	return nil
}

// FindByContact scans stored recruiters for a matching email or profile URL,
// case-insensitively. Badgerhold cannot index a lowercased field, so this is
// a linear scan; recruiter counts here are small.
func (s *RecruiterStorage) FindByContact(email, profileURL string) (*models.Recruiter, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	profileURL = strings.ToLower(strings.TrimSpace(profileURL))
	if email == "" && profileURL == "" {
		return nil, nil
	}

	recruiters, err := s.ListRecruiters()
	if err != nil {
		return nil, err
	}

	for _, r := range recruiters {
		if email != "" && email != strings.ToLower(models.CandidateEmailNA) && strings.ToLower(r.Email) == email {
			return r, nil
		}
		if profileURL != "" && strings.ToLower(r.LinkedInProfileURL) == profileURL {
			return r, nil
		}
	}
	return nil, nil
}

func (s *RecruiterStorage) CountRecruiters() (int, error) {
	count, err := s.db.Store().Count(&models.Recruiter{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count recruiters: %w", err)
	}
	return int(count), nil
}
