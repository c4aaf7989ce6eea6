package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

// SubmitApplication handles POST /applications.
func (h *Handlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.ApplicationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	application, err := h.applicationService.SubmitApplication(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logger.InfoContext(r.Context(), "Application submitted", "application_id", application.ID, "property_id", application.PropertyID)
	writeJSON(w, http.StatusCreated, application)
}

// ListApplications handles GET /admin/applications.
func (h *Handlers) ListApplications(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	apps, err := h.applicationService.ListApplications(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve applications")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// ListApplicationsByProperty handles GET /admin/properties/{id}/applications.
func (h *Handlers) ListApplicationsByProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	apps, err := h.applicationService.ListApplicationsByProperty(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve applications")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// GetApplication handles GET /admin/applications/{id}.
func (h *Handlers) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	application, err := h.applicationService.GetApplication(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve application")
		return
	}
	if application == nil {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}
	writeJSON(w, http.StatusOK, application)
}

// ReviewApplication handles PATCH /admin/applications/{id}/status.
func (h *Handlers) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var patch domain.ApplicationStatusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	application, err := h.applicationService.ReviewApplication(r.Context(), id, patch, claims.Sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if application == nil {
		writeError(w, http.StatusNotFound, "Application not found")
		return
	}
	writeJSON(w, http.StatusOK, application)
}
