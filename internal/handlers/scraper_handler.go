package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// ScraperHandler exposes the discovery pipeline over HTTP
type ScraperHandler struct {
	logger  arbor.ILogger
	scraper interfaces.ScraperService
}

func NewScraperHandler(scraper interfaces.ScraperService, logger arbor.ILogger) *ScraperHandler {
	return &ScraperHandler{
		logger:  logger,
		scraper: scraper,
	}
}

// ScrapeHandler runs a scrape for the posted query. The response always
// carries HTTP 200 with a status message; scrape failures are narrative, not
// transport errors.
func (h *ScraperHandler) ScrapeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.ScrapeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if req.Source != "" && !req.Source.Valid() {
		WriteError(w, http.StatusBadRequest, "Unknown source: "+string(req.Source))
		return
	}

	h.logger.Info().
		Str("query", strings.TrimSpace(req.Query)).
		Str("source", string(req.Source)).
		Msg("Scrape requested")

	result := h.scraper.ScrapeRecruiters(r.Context(), &req)
	WriteJSON(w, http.StatusOK, result)
}
