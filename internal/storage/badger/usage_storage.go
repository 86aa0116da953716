package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// usageRecordID keys the single usage record; there is exactly one counter
const usageRecordID = "api_usage"

// UsageStorage implements the UsageStorage interface for Badger
type UsageStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewUsageStorage creates a new UsageStorage instance
func NewUsageStorage(db *BadgerDB, logger arbor.ILogger) interfaces.UsageStorage {
	return &UsageStorage{
		db:     db,
		logger: logger,
	}
}

// GetUsage returns the stored counter, creating a zeroed record dated today
// on first use
func (s *UsageStorage) GetUsage() (*models.APIUsage, error) {
	var u models.APIUsage
	err := s.db.Store().Get(usageRecordID, &u)
	if err == badgerhold.ErrNotFound {
		return &models.APIUsage{
			ID:            usageRecordID,
			Count:         0,
			LastResetDate: time.Now().Format("2006-01-02"),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}
	return &u, nil
}

func (s *UsageStorage) SaveUsage(u *models.APIUsage) error {
	if u.ID == "" {
		u.ID = usageRecordID
	}
	if err := s.db.Store().Upsert(u.ID, u); err != nil {
		return fmt.Errorf("failed to save usage: %w", err)
	}
	return nil
}
