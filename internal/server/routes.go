package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// System endpoints
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Scraping
	mux.HandleFunc("/api/scrape", s.app.ScraperHandler.ScrapeHandler)

	// Recruiters
	mux.HandleFunc("/api/recruiters", s.app.RecruiterHandler.ListHandler)
	mux.HandleFunc("/api/recruiters/import", s.app.RecruiterHandler.SaveCandidatesHandler)
	mux.HandleFunc("/api/recruiters/export", s.app.RecruiterHandler.ExportHandler)
	mux.HandleFunc("/api/recruiters/", s.app.RecruiterHandler.ItemHandler)

	// Templates
	mux.HandleFunc("/api/templates", s.app.TemplateHandler.ListHandler)
	mux.HandleFunc("/api/templates/default", s.app.TemplateHandler.DefaultHandler)
	mux.HandleFunc("/api/templates/", s.app.TemplateHandler.ItemHandler)

	// Personalization and usage
	mux.HandleFunc("/api/personalize", s.app.PersonalizeHandler.Handle)
	mux.HandleFunc("/api/usage", s.app.UsageHandler.GetUsageHandler)

	// WebSocket progress stream
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// Catch-all
	mux.HandleFunc("/", s.app.APIHandler.NotFoundHandler)

	return mux
}
