package usage

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// Service enforces the daily AI-call allowance. The counter lives in storage
// keyed by date; a date rollover resets it lazily on the next read, and a
// cron job resets it at midnight so the dashboard shows a fresh allowance
// without waiting for a call.
type Service struct {
	logger  arbor.ILogger
	storage interfaces.UsageStorage
	config  common.UsageConfig
	cron    *cron.Cron

	mu sync.Mutex
}

// NewService creates a usage service
func NewService(storage interfaces.UsageStorage, config common.UsageConfig, logger arbor.ILogger) *Service {
	return &Service{
		logger:  logger,
		storage: storage,
		config:  config,
		cron:    cron.New(),
	}
}

// StartScheduler begins the midnight reset job
func (s *Service) StartScheduler() error {
	schedule := s.config.ResetSchedule
	if schedule == "" {
		schedule = "0 0 * * *"
	}

	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.resetIfStale(); err != nil {
			s.logger.Error().Err(err).Msg("Scheduled usage reset failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid usage reset schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", schedule).Msg("Usage reset scheduler started")
	return nil
}

// StopScheduler stops the reset job
func (s *Service) StopScheduler() {
	s.cron.Stop()
}

// CanMakeCall reports whether another AI call is allowed today
func (s *Service) CanMakeCall() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	usage, err := s.currentLocked()
	if err != nil {
		return false, err
	}
	return usage.Count < s.config.DailyLimit, nil
}

// RecordCall increments today's counter
func (s *Service) RecordCall() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	usage, err := s.currentLocked()
	if err != nil {
		return err
	}

	usage.Count++
	if err := s.storage.SaveUsage(usage); err != nil {
		return err
	}

	s.logger.Debug().
		Int("count", usage.Count).
		Int("limit", s.config.DailyLimit).
		Msg("AI call recorded")
	return nil
}

// Remaining returns how many calls are left today
func (s *Service) Remaining() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	usage, err := s.currentLocked()
	if err != nil {
		return 0, err
	}

	remaining := s.config.DailyLimit - usage.Count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Limit returns the configured daily allowance
func (s *Service) Limit() int {
	return s.config.DailyLimit
}

// currentLocked loads the counter and applies the date rollover. Callers must
// hold s.mu.
func (s *Service) currentLocked() (*models.APIUsage, error) {
	usage, err := s.storage.GetUsage()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if usage.LastResetDate != today {
		usage.Count = 0
		usage.LastResetDate = today
		if err := s.storage.SaveUsage(usage); err != nil {
			return nil, err
		}
		s.logger.Debug().Str("date", today).Msg("Usage counter reset for new day")
	}
	return usage, nil
}

func (s *Service) resetIfStale() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.currentLocked()
	return err
}
