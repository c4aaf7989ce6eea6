package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

// ScheduleTour handles POST /tours. Public intake for tour requests; the
// confirmation email is dispatched asynchronously so a mail outage never
// rejects the booking.
func (h *Handlers) ScheduleTour(w http.ResponseWriter, r *http.Request) {
	var req domain.TourBookingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	booking, err := h.tourService.ScheduleTour(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}

	logger.InfoContext(r.Context(), "Tour scheduled", "booking_id", booking.ID, "property_id", booking.PropertyID)
	writeJSON(w, http.StatusCreated, booking)
}

// ListTours handles GET /admin/tours.
func (h *Handlers) ListTours(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	tours, err := h.tourService.ListTours(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve tours")
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

// ListToursByProperty handles GET /properties/{id}/tours.
func (h *Handlers) ListToursByProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	tours, err := h.tourService.ListToursByProperty(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve tours")
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

// GetTour handles GET /admin/tours/{id}.
func (h *Handlers) GetTour(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid tour ID")
		return
	}

	booking, err := h.tourService.GetTour(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve tour")
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "Tour not found")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// UpdateTourStatus handles PATCH /admin/tours/{id}/status. Only operators
// move a booking out of pending.
func (h *Handlers) UpdateTourStatus(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid tour ID")
		return
	}

	var patch domain.TourStatusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	booking, err := h.tourService.UpdateTourStatus(r.Context(), id, patch, claims.Sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "Tour not found")
		return
	}

	logger.InfoContext(r.Context(), "Tour status updated",
		"booking_id", booking.ID,
		"status", string(booking.Status),
		"admin_id", strconv.FormatInt(claims.Sub, 10),
	)
	writeJSON(w, http.StatusOK, booking)
}
