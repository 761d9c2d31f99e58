package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognized becomes a generic 500: internal detail stays in the logs.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "kayıt bulunamadı")
	case errors.Is(err, service.ErrAmbiguousLookup):
		respondError(w, http.StatusConflict, "sorgu birden fazla kayıtla eşleşti")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "e-posta veya şifre hatalı")
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnsupportedFileType):
		respondError(w, http.StatusBadRequest, "desteklenmeyen dosya tipi")
	case errors.Is(err, service.ErrFileTooLarge):
		respondError(w, http.StatusBadRequest, "dosya boyutu çok büyük")
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "beklenmeyen bir hata oluştu")
	}
}
