package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildSubmission(t *testing.T, fields map[string]string, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, name := range fileNames {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("dummy content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMembershipHandler_Submit(t *testing.T) {
	fields := map[string]string{
		"name":       "Örnek Kuyumcu Ltd.",
		"email":      "info@ornek.com.tr",
		"phone":      "+90 212 555 0000",
		"address":    "Kapalıçarşı No: 1",
		"tax_number": "1234567890",
	}

	t.Run("Created", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("Submit", mock.Anything, mock.MatchedBy(func(a *domain.MembershipApplication) bool {
			return a.Email == "info@ornek.com.tr" && a.TaxNumber == "1234567890"
		}), mock.AnythingOfType("[]service.AttachmentUpload")).
			Return(&domain.MembershipApplication{ID: "app-1"}, nil)

		body, contentType := buildSubmission(t, fields, "vergi-levhasi.pdf")
		req := httptest.NewRequest(http.MethodPost, "/api/membership", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "app-1", resp["id"])
	})

	t.Run("Missing Field", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.ErrMissingField)

		incomplete := map[string]string{"name": "Örnek"}
		body, contentType := buildSubmission(t, incomplete)
		req := httptest.NewRequest(http.MethodPost, "/api/membership", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMembershipHandler_StatusLookup(t *testing.T) {
	t.Run("Query Required", func(t *testing.T) {
		_, router := newTestRouter()
		req := httptest.NewRequest(http.MethodGet, "/api/membership/status", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Found", func(t *testing.T) {
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mocks, router := newTestRouter()
		mocks.membership.On("Lookup", mock.Anything, "1234567890").
			Return(&domain.ApplicationStatusResult{
				Name:      "Örnek Kuyumcu Ltd.",
				Status:    domain.ApplicationStatusPending,
				CreatedAt: created,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/membership/status?query=1234567890", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Örnek Kuyumcu Ltd.", resp["name"])
		assert.Equal(t, "pending", resp["status"])
		// Minimal projection only, nothing sensitive leaks
		assert.NotContains(t, resp, "email")
		assert.NotContains(t, resp, "address")
		assert.NotContains(t, resp, "files")
	})

	t.Run("Not Found", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("Lookup", mock.Anything, "nobody@example.com").
			Return(nil, service.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/membership/status?query=nobody%40example.com", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Ambiguous", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("Lookup", mock.Anything, "1234567890").
			Return(nil, service.ErrAmbiguousLookup)

		req := httptest.NewRequest(http.MethodGet, "/api/membership/status?query=1234567890", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMembershipHandler_AdminRoutes(t *testing.T) {
	t.Run("List Requires Auth", func(t *testing.T) {
		_, router := newTestRouter()
		req := httptest.NewRequest(http.MethodGet, "/api/membership", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("List With Token", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("List", mock.Anything, 50, 0).
			Return([]domain.MembershipApplication{{ID: "app-1"}}, 1, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/membership", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["total"])
	})

	t.Run("Update Status", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatusApproved).
			Return(&domain.MembershipApplication{ID: "app-1", Status: domain.ApplicationStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/membership/app-1/status",
			strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Authorization", "Bearer "+adminToken())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Update Status Invalid Transition", func(t *testing.T) {
		mocks, router := newTestRouter()
		mocks.membership.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatusRejected).
			Return(nil, service.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPut, "/api/membership/app-1/status",
			strings.NewReader(`{"status":"rejected"}`))
		req.Header.Set("Authorization", "Bearer "+adminToken())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		_, router := newTestRouter()
		req := httptest.NewRequest(http.MethodGet, "/api/membership", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
