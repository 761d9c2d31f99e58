package http

import (
	"context"
	"net/http"

	"keeso-backend/internal/service"
	"keeso-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Pinger reports backend liveness for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Auth       service.AuthService
	Membership service.MembershipService
	Content    service.ContentService
	Contact    service.ContactService
	Settings   service.SettingsService
	Uploads    service.UploadService
	AuthMW     *AuthMiddleware
	Storage    storage.StorageInterface // download route, local backend only
	ServeFiles bool
	BaseURL    string
	DB         Pinger
}

// NewRouter wires the full route table. Public routes come first; anything
// mutating content or reading applicant data sits behind the auth middleware.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	authHandler := NewAuthHandler(cfg.Auth)
	membershipHandler := NewMembershipHandler(cfg.Membership)
	resourceHandler := NewResourceHandler(cfg.Content)
	contactHandler := NewContactHandler(cfg.Contact)
	settingsHandler := NewSettingsHandler(cfg.Settings)
	uploadHandler := NewUploadHandler(cfg.Uploads)
	sitemapHandler := NewSitemapHandler(cfg.Content, cfg.BaseURL)

	api := r.PathPrefix("/api").Subrouter()

	// Public surface
	api.HandleFunc("/auth/login", authHandler.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/membership", membershipHandler.HandleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/membership/status", membershipHandler.HandleStatusLookup).Methods(http.MethodGet)
	api.HandleFunc("/contact", contactHandler.HandleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/settings", settingsHandler.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/sitemap.xml", sitemapHandler.HandleSitemap).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler(cfg.DB)).Methods(http.MethodGet)

	// Administrative surface. Registered before the generic {type} routes:
	// mux falls through to later siblings when a subrouter does not match,
	// so /api/membership (admin list) is claimed here while
	// /api/announcements still reaches the public resource handler below.
	admin := api.NewRoute().Subrouter()
	admin.Use(cfg.AuthMW.RequireAuth)
	admin.HandleFunc("/membership", membershipHandler.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/membership/{id}/status", membershipHandler.HandleUpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/contacts", contactHandler.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/settings", settingsHandler.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/upload", uploadHandler.HandleUpload).Methods(http.MethodPost)
	admin.HandleFunc("/{type}", resourceHandler.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/{type}/{id}", resourceHandler.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/{type}/{id}", resourceHandler.HandleDelete).Methods(http.MethodDelete)

	// Public content reads
	api.HandleFunc("/{type}", resourceHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/{type}/{id}", resourceHandler.HandleGet).Methods(http.MethodGet)

	// Stored files, when this server is the storage backend
	if cfg.ServeFiles {
		downloadHandler := NewDownloadHandler(cfg.Storage)
		r.HandleFunc("/uploads/{filename}", downloadHandler.HandleDownload).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				respondError(w, http.StatusServiceUnavailable, "database unreachable")
				return
			}
		}
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "keeso-api",
		})
	}
}
