package http

import (
	"encoding/json"
	"net/http"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/service"

	"github.com/gorilla/mux"
)

const maxSubmissionMemory = 32 << 20 // form parse buffer, not the per-file cap

type MembershipHandler struct {
	svc service.MembershipService
}

func NewMembershipHandler(svc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// HandleSubmit accepts the public application form: applicant fields plus
// zero or more attached documents, all in one multipart request.
func (h *MembershipHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmissionMemory); err != nil {
		respondError(w, http.StatusBadRequest, "geçersiz form verisi")
		return
	}

	app := &domain.MembershipApplication{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Address:   r.FormValue("address"),
		TaxNumber: r.FormValue("tax_number"),
		Note:      r.FormValue("note"),
	}

	var files []service.AttachmentUpload
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			f, err := header.Open()
			if err != nil {
				respondError(w, http.StatusBadRequest, "dosya okunamadı")
				return
			}
			defer f.Close()
			files = append(files, service.AttachmentUpload{
				Filename: header.Filename,
				Size:     header.Size,
				Content:  f,
			})
		}
	}

	created, err := h.svc.Submit(r.Context(), app, files)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      created.ID,
		"message": "Başvurunuz başarıyla alındı",
	})
}

// HandleStatusLookup answers the unauthenticated self-service status check.
// The query is matched against email and tax number; the response is the
// minimal projection only.
func (h *MembershipHandler) HandleStatusLookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "sorgu değeri gerekli")
		return
	}

	result, err := h.svc.Lookup(r.Context(), query)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *MembershipHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	skip := queryInt(r, "skip", 0)

	apps, total, err := h.svc.List(r.Context(), limit, skip)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.MembershipApplication{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items": apps,
		"total": total,
	})
}

func (h *MembershipHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status domain.ApplicationStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "geçersiz istek gövdesi")
		return
	}

	app, err := h.svc.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}
