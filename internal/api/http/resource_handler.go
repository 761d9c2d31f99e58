package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
	"keeso-backend/internal/service"

	"github.com/gorilla/mux"
)

// ResourceHandler serves every content collection through one parameterized
// CRUD surface; the collections differ only in schema.
type ResourceHandler struct {
	svc service.ContentService
}

func NewResourceHandler(svc service.ContentService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

type resourcePayload struct {
	Title    string         `json:"title"`
	Category string         `json:"category"`
	Attrs    map[string]any `json:"attrs"`
}

func (h *ResourceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	t, ok := resourceType(w, r)
	if !ok {
		return
	}

	opts := repository.ListOptions{
		Limit:    queryInt(r, "limit", 20),
		Skip:     queryInt(r, "skip", 0),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	items, total, err := h.svc.List(r.Context(), t, opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.Resource{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

func (h *ResourceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	t, ok := resourceType(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Get(r.Context(), t, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ResourceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	t, ok := resourceType(w, r)
	if !ok {
		return
	}

	var payload resourcePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "geçersiz istek gövdesi")
		return
	}
	if payload.Title == "" {
		respondError(w, http.StatusBadRequest, "başlık gerekli")
		return
	}

	res, err := h.svc.Create(r.Context(), t, payload.Title, payload.Category, payload.Attrs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ResourceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	t, ok := resourceType(w, r)
	if !ok {
		return
	}

	var payload resourcePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "geçersiz istek gövdesi")
		return
	}

	res, err := h.svc.Update(r.Context(), t, mux.Vars(r)["id"], payload.Title, payload.Category, payload.Attrs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ResourceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	t, ok := resourceType(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), t, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "kayıt silindi"})
}

func resourceType(w http.ResponseWriter, r *http.Request) (domain.ResourceType, bool) {
	t := domain.ResourceType(mux.Vars(r)["type"])
	if !t.IsValid() {
		respondError(w, http.StatusNotFound, "bilinmeyen kaynak tipi")
		return "", false
	}
	return t, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
