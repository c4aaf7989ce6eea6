package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

// OpenMaintenanceRequest handles POST /tenant/maintenance.
func (h *Handlers) OpenMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req domain.MaintenanceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	request, err := h.maintenanceService.OpenRequest(r.Context(), claims.Sub, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

// ListMyMaintenanceRequests handles GET /tenant/maintenance.
func (h *Handlers) ListMyMaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := h.maintenanceService.ListRequestsByTenant(r.Context(), claims.Sub)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve requests")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// ListMaintenanceRequests handles GET /admin/maintenance.
func (h *Handlers) ListMaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	requests, err := h.maintenanceService.ListRequests(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve requests")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// GetMaintenanceRequest handles GET /admin/maintenance/{id}.
func (h *Handlers) GetMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	request, err := h.maintenanceService.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve request")
		return
	}
	if request == nil {
		writeError(w, http.StatusNotFound, "Request not found")
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// UpdateMaintenanceRequest handles PATCH /admin/maintenance/{id}.
func (h *Handlers) UpdateMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var patch domain.MaintenancePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	request, err := h.maintenanceService.UpdateRequest(r.Context(), id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if request == nil {
		writeError(w, http.StatusNotFound, "Request not found")
		return
	}
	writeJSON(w, http.StatusOK, request)
}
