package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

// SubmitContactMessage handles POST /contact.
func (h *Handlers) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	message, err := h.contactService.SubmitMessage(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// ListContactMessages handles GET /admin/contact.
func (h *Handlers) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	messages, err := h.contactService.ListMessages(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// UpdateContactStatus handles PATCH /admin/contact/{id}/status.
func (h *Handlers) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var body struct {
		Status domain.ContactStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	message, err := h.contactService.UpdateMessageStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if message == nil {
		writeError(w, http.StatusNotFound, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, message)
}
