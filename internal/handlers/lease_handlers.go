package handlers

import (
	"net/http"
	"strconv"
)

// GetMyLease handles GET /tenant/lease. Tenants without an active lease
// get a 200 with has_active_lease=false, mirroring the dashboard view.
func (h *Handlers) GetMyLease(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	lease, err := h.leaseService.GetTenantLease(r.Context(), claims.Sub)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve lease")
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

// ListLeases handles GET /admin/leases. Accepts an optional property_id
// filter.
func (h *Handlers) ListLeases(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("property_id"); v != "" {
		propertyID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || propertyID <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}
		leases, err := h.leaseService.ListLeasesByProperty(r.Context(), propertyID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve leases")
			return
		}
		writeJSON(w, http.StatusOK, leases)
		return
	}

	limit, offset := parsePagination(r)
	leases, err := h.leaseService.ListLeases(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve leases")
		return
	}
	writeJSON(w, http.StatusOK, leases)
}

// GetLease handles GET /admin/leases/{id}.
func (h *Handlers) GetLease(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lease ID")
		return
	}

	lease, err := h.leaseService.GetLease(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve lease")
		return
	}
	if lease == nil {
		writeError(w, http.StatusNotFound, "Lease not found")
		return
	}
	writeJSON(w, http.StatusOK, lease)
}
