package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
)

// UsageHandler reports the daily AI-call allowance
type UsageHandler struct {
	logger arbor.ILogger
	usage  interfaces.UsageService
}

func NewUsageHandler(usage interfaces.UsageService, logger arbor.ILogger) *UsageHandler {
	return &UsageHandler{
		logger: logger,
		usage:  usage,
	}
}

// GetUsageHandler handles GET /api/usage
func (h *UsageHandler) GetUsageHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	remaining, err := h.usage.Remaining()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to read usage: "+err.Error())
		return
	}

	limit := h.usage.Limit()
	WriteJSON(w, http.StatusOK, map[string]int{
		"limit":     limit,
		"remaining": remaining,
		"used":      limit - remaining,
	})
}
