package http

import (
	"encoding/xml"
	"net/http"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository"
	"keeso-backend/internal/service"
)

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler generates sitemap.xml from the static pages plus the most
// recent announcements.
type SitemapHandler struct {
	content service.ContentService
	baseURL string
}

func NewSitemapHandler(content service.ContentService, baseURL string) *SitemapHandler {
	return &SitemapHandler{
		content: content,
		baseURL: baseURL,
	}
}

var staticPages = []struct {
	path     string
	priority string
}{
	{"/", "1.0"},
	{"/kurumsal", "0.8"},
	{"/uyelik", "0.8"},
	{"/hizmetler", "0.8"},
	{"/duyurular", "0.9"},
	{"/ziyaretler", "0.7"},
	{"/odeme", "0.7"},
	{"/iletisim", "0.8"},
}

func (h *SitemapHandler) HandleSitemap(w http.ResponseWriter, r *http.Request) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + p.path, Priority: p.priority})
	}

	announcements, _, err := h.content.List(r.Context(), domain.ResourceAnnouncements, repository.ListOptions{Limit: 50})
	if err != nil {
		// A sitemap without announcement URLs beats no sitemap at all.
		logger.Error("Failed to list announcements for sitemap", "error", err)
	}
	for _, a := range announcements {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + "/duyurular/" + a.ID, Priority: "0.6"})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		logger.Error("Failed to encode sitemap", "error", err)
	}
}
