package http

import (
	"encoding/json"
	"net/http"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/service"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var contact domain.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondError(w, http.StatusBadRequest, "geçersiz istek gövdesi")
		return
	}

	if err := h.svc.Submit(r.Context(), &contact); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Mesajınız başarıyla gönderildi"})
}

func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	skip := queryInt(r, "skip", 0)

	contacts, total, err := h.svc.List(r.Context(), limit, skip)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items": contacts,
		"total": total,
	})
}
