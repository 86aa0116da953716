package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/handlers"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/services/export"
	"github.com/ternarybob/peto/internal/services/llm"
	"github.com/ternarybob/peto/internal/services/personalize"
	"github.com/ternarybob/peto/internal/services/scraper"
	"github.com/ternarybob/peto/internal/services/templates"
	"github.com/ternarybob/peto/internal/services/usage"
	"github.com/ternarybob/peto/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Domain services
	ScraperService     interfaces.ScraperService
	LLMService         interfaces.LLMService
	PersonalizeService interfaces.PersonalizeService
	TemplateService    interfaces.TemplateService
	UsageService       *usage.Service
	ExportService      interfaces.ExportService

	// HTTP handlers
	APIHandler         *handlers.APIHandler
	ScraperHandler     *handlers.ScraperHandler
	RecruiterHandler   *handlers.RecruiterHandler
	TemplateHandler    *handlers.TemplateHandler
	PersonalizeHandler *handlers.PersonalizeHandler
	UsageHandler       *handlers.UsageHandler
	WSHandler          *handlers.WebSocketHandler
}

// New wires the application together: storage, services, then handlers
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	a := &App{
		Config:         config,
		Logger:         logger,
		StorageManager: storageManager,
	}

	// Usage gate for AI calls
	usageService := usage.NewService(storageManager.UsageStorage(), config.Usage, logger)
	if err := usageService.StartScheduler(); err != nil {
		storageManager.Close()
		return nil, err
	}
	a.UsageService = usageService

	// LLM provider is optional: without an API key the app still scrapes,
	// stores, and renders templates; personalization degrades to
	// deterministic substitution.
	llmService, err := llm.NewService(&config.LLM, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("LLM provider unavailable, personalization will use fallback substitution")
		llmService = nil
	}
	a.LLMService = llmService
	a.PersonalizeService = personalize.NewService(llmService, usageService, logger)

	// Template service with the built-in starter
	templateService := templates.NewService(storageManager.TemplateStorage(), logger)
	if err := templateService.EnsureStarterTemplate(); err != nil {
		a.Close()
		return nil, err
	}
	a.TemplateService = templateService

	// Discovery pipeline with progress broadcast over WebSocket
	a.WSHandler = handlers.NewWebSocketHandler(logger)
	scraperService, err := scraper.NewService(scraper.FromAppConfig(config.Scraper), logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize scraper: %w", err)
	}
	scraperService.SetObserver(a.WSHandler)
	a.ScraperService = scraperService

	a.ExportService = export.NewService(logger)

	// Handlers
	a.APIHandler = handlers.NewAPIHandler()
	a.ScraperHandler = handlers.NewScraperHandler(a.ScraperService, logger)
	a.RecruiterHandler = handlers.NewRecruiterHandler(storageManager.RecruiterStorage(), a.ExportService, logger)
	a.TemplateHandler = handlers.NewTemplateHandler(a.TemplateService, logger)
	a.PersonalizeHandler = handlers.NewPersonalizeHandler(a.PersonalizeService, logger)
	a.UsageHandler = handlers.NewUsageHandler(a.UsageService, logger)

	logger.Info().Msg("Application initialized")
	return a, nil
}

// Close releases every component in reverse dependency order
func (a *App) Close() error {
	if a.UsageService != nil {
		a.UsageService.StopScheduler()
	}
	if a.LLMService != nil {
		a.LLMService.Close()
	}
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	return nil
}
