package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

// ListUnits handles GET /properties/{id}/units.
func (h *Handlers) ListUnits(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	units, err := h.unitService.ListUnits(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve units")
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// ListAvailableUnits handles GET /properties/{id}/units/available.
func (h *Handlers) ListAvailableUnits(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	units, err := h.unitService.ListAvailableUnits(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve units")
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// GetUnit handles GET /units/{id}.
func (h *Handlers) GetUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	unit, err := h.unitService.GetUnit(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve unit")
		return
	}
	if unit == nil {
		writeError(w, http.StatusNotFound, "Unit not found")
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

// CreateUnit handles POST /admin/units.
func (h *Handlers) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req domain.UnitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	unit, err := h.unitService.CreateUnit(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

// UpdateUnit handles PATCH /admin/units/{id}.
func (h *Handlers) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var patch domain.UnitPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	unit, err := h.unitService.UpdateUnit(r.Context(), id, &patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update unit")
		return
	}
	if unit == nil {
		writeError(w, http.StatusNotFound, "Unit not found")
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

// DeleteUnit handles DELETE /admin/units/{id}.
func (h *Handlers) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid unit ID")
		return
	}

	deleted, err := h.unitService.DeleteUnit(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete unit")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Unit not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
