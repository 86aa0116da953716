package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// TemplateHandler manages email templates
type TemplateHandler struct {
	logger    arbor.ILogger
	templates interfaces.TemplateService
}

func NewTemplateHandler(templates interfaces.TemplateService, logger arbor.ILogger) *TemplateHandler {
	return &TemplateHandler{
		logger:    logger,
		templates: templates,
	}
}

// ListHandler handles GET (list) and POST (create) on /api/templates
func (h *TemplateHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		templates, err := h.templates.ListTemplates()
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to list templates: "+err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"templates": templates,
			"count":     len(templates),
		})

	case http.MethodPost:
		var template models.EmailTemplate
		if !DecodeJSON(w, r, &template) {
			return
		}
		if err := h.templates.CreateTemplate(&template); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusCreated, template)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// DefaultHandler handles GET /api/templates/default
func (h *TemplateHandler) DefaultHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	template, err := h.templates.GetDefaultTemplate()
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, template)
}

// PreviewHandler handles POST /api/templates/{id}/preview: it renders the
// template with the posted field values and returns subject, body, and HTML.
func (h *TemplateHandler) PreviewHandler(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	template, err := h.templates.GetTemplate(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	var fields interfaces.TemplateFields
	if !DecodeJSON(w, r, &fields) {
		return
	}

	subject, body := h.templates.Render(template, fields)
	html, err := h.templates.PreviewHTML(template, fields)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to render preview: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"subject": subject,
		"body":    body,
		"html":    html,
	})
}

// ItemHandler handles GET/PUT/DELETE on /api/templates/{id} and dispatches
// /api/templates/{id}/preview
func (h *TemplateHandler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/templates/"), "/")
	if rest == "" {
		WriteError(w, http.StatusBadRequest, "Template ID is required")
		return
	}

	if id, ok := strings.CutSuffix(rest, "/preview"); ok {
		h.PreviewHandler(w, r, strings.Trim(id, "/"))
		return
	}
	id := rest

	switch r.Method {
	case http.MethodGet:
		template, err := h.templates.GetTemplate(id)
		if err != nil {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, template)

	case http.MethodPut:
		var template models.EmailTemplate
		if !DecodeJSON(w, r, &template) {
			return
		}
		template.ID = id
		if err := h.templates.UpdateTemplate(&template); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, template)

	case http.MethodDelete:
		if err := h.templates.DeleteTemplate(id); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to delete template: "+err.Error())
			return
		}
		WriteSuccess(w, "Template deleted")

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
