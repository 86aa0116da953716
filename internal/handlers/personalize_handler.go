package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
)

// PersonalizeHandler exposes AI email personalization
type PersonalizeHandler struct {
	logger      arbor.ILogger
	personalize interfaces.PersonalizeService
}

func NewPersonalizeHandler(personalize interfaces.PersonalizeService, logger arbor.ILogger) *PersonalizeHandler {
	return &PersonalizeHandler{
		logger:      logger,
		personalize: personalize,
	}
}

// PersonalizeHandler handles POST /api/personalize
func (h *PersonalizeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var input interfaces.PersonalizeInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	output, err := h.personalize.PersonalizeEmail(r.Context(), &input)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "daily AI call limit") {
			status = http.StatusTooManyRequests
		} else if strings.Contains(err.Error(), "required") {
			status = http.StatusBadRequest
		}
		WriteError(w, status, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, output)
}
