package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"keeso-backend/internal/service"
	"keeso-backend/internal/storage"

	"github.com/gorilla/mux"
)

type UploadHandler struct {
	svc service.UploadService
}

func NewUploadHandler(svc service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// HandleUpload stores a single file from the back office and returns its
// public URL.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmissionMemory); err != nil {
		respondError(w, http.StatusBadRequest, "geçersiz form verisi")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "dosya gerekli")
		return
	}
	defer file.Close()

	stored, err := h.svc.Store(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stored)
}

// DownloadHandler serves stored files for the local storage backend. The
// firebase backend hands out storage.googleapis.com URLs instead and never
// hits this route.
type DownloadHandler struct {
	store storage.StorageInterface
}

func NewDownloadHandler(store storage.StorageInterface) *DownloadHandler {
	return &DownloadHandler{store: store}
}

func (h *DownloadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["filename"]

	file, err := h.store.ReadFile(r.Context(), key)
	if err != nil {
		respondError(w, http.StatusNotFound, "dosya bulunamadı")
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
