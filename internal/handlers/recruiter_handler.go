package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// RecruiterHandler manages the stored recruiter list
type RecruiterHandler struct {
	logger  arbor.ILogger
	storage interfaces.RecruiterStorage
	export  interfaces.ExportService
}

func NewRecruiterHandler(storage interfaces.RecruiterStorage, export interfaces.ExportService, logger arbor.ILogger) *RecruiterHandler {
	return &RecruiterHandler{
		logger:  logger,
		storage: storage,
		export:  export,
	}
}

// ListHandler handles GET (list) and POST (create) on /api/recruiters
func (h *RecruiterHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		recruiters, err := h.storage.ListRecruiters()
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to list recruiters: "+err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"recruiters": recruiters,
			"count":      len(recruiters),
		})

	case http.MethodPost:
		var recruiter models.Recruiter
		if !DecodeJSON(w, r, &recruiter) {
			return
		}
		if strings.TrimSpace(recruiter.RecruiterName) == "" {
			WriteError(w, http.StatusBadRequest, "Recruiter name is required")
			return
		}
		if err := h.storage.SaveRecruiter(&recruiter); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to save recruiter: "+err.Error())
			return
		}
		WriteJSON(w, http.StatusCreated, recruiter)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SaveCandidatesHandler handles POST /api/recruiters/import: it persists
// scraped candidates, skipping any whose contact details match a recruiter
// already on file.
func (h *RecruiterHandler) SaveCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req struct {
		Candidates []models.ContactCandidate `json:"candidates"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	saved := make([]*models.Recruiter, 0, len(req.Candidates))
	skipped := 0
	for i := range req.Candidates {
		c := &req.Candidates[i]
		if !c.HasContactInfo() && c.RecruiterName == "" {
			skipped++
			continue
		}

		existing, err := h.storage.FindByContact(c.Email, c.LinkedInProfileURL)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to check for duplicates: "+err.Error())
			return
		}
		if existing != nil {
			skipped++
			continue
		}

		recruiter := &models.Recruiter{
			RecruiterName:      c.RecruiterName,
			CompanyName:        c.CompanyName,
			Title:              c.Title,
			Email:              c.Email,
			LinkedInProfileURL: c.LinkedInProfileURL,
			Notes:              c.Notes,
			Status:             models.RecruiterStatusSaved,
		}
		if err := h.storage.SaveRecruiter(recruiter); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to save recruiter: "+err.Error())
			return
		}
		saved = append(saved, recruiter)
	}

	h.logger.Info().
		Int("saved", len(saved)).
		Int("skipped", skipped).
		Msg("Imported scraped candidates")

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"saved":      saved,
		"savedCount": len(saved),
		"skipped":    skipped,
	})
}

// ExportHandler handles GET /api/recruiters/export and streams the list as a
// PDF download
func (h *RecruiterHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	recruiters, err := h.storage.ListRecruiters()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to list recruiters: "+err.Error())
		return
	}

	data, err := h.export.ExportRecruitersPDF(recruiters)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="recruiters-%s.pdf"`, time.Now().Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ItemHandler handles GET/PUT/DELETE on /api/recruiters/{id}
func (h *RecruiterHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/recruiters/"), "/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Recruiter ID is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		recruiter, err := h.storage.GetRecruiter(id)
		if err != nil {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, recruiter)

	case http.MethodPut:
		existing, err := h.storage.GetRecruiter(id)
		if err != nil {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}

		var update models.Recruiter
		if !DecodeJSON(w, r, &update) {
			return
		}
		update.ID = existing.ID
		update.CreatedAt = existing.CreatedAt

		// Moving to sent stamps the contact time
		if update.Status == models.RecruiterStatusSent && existing.Status != models.RecruiterStatusSent {
			now := time.Now()
			update.LastContacted = &now
		}

		if err := h.storage.SaveRecruiter(&update); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to update recruiter: "+err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, update)

	case http.MethodDelete:
		if err := h.storage.DeleteRecruiter(id); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to delete recruiter: "+err.Error())
			return
		}
		WriteSuccess(w, "Recruiter deleted")

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
