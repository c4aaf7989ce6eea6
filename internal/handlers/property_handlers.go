package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

// ListProperties handles GET /properties.
func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	props, err := h.propertyService.ListProperties(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}
	writeJSON(w, http.StatusOK, props)
}

// ListAvailableProperties handles GET /properties/available.
func (h *Handlers) ListAvailableProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.propertyService.ListAvailableProperties(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}
	writeJSON(w, http.StatusOK, props)
}

// GetProperty handles GET /properties/{id}.
func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	property, err := h.propertyService.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}
	if property == nil {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// CreateProperty handles POST /admin/properties.
func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req domain.PropertyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	property, err := h.propertyService.CreateProperty(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

// UpdateProperty handles PATCH /admin/properties/{id}.
func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var patch domain.PropertyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	property, err := h.propertyService.UpdateProperty(r.Context(), id, &patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	if property == nil {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// DeleteProperty handles DELETE /admin/properties/{id}.
func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	deleted, err := h.propertyService.DeleteProperty(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
