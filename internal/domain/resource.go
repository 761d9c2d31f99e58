package domain

import (
	"regexp"
	"strings"
	"time"
)

// ResourceType names one of the CRUD-managed content collections. The
// collections differ only in schema, so they share one repository and one
// handler; type-specific fields live in Attrs.
type ResourceType string

const (
	ResourceAnnouncements ResourceType = "announcements"
	ResourceDocuments     ResourceType = "documents"
	ResourceVisits        ResourceType = "visits"
	ResourceTrainings     ResourceType = "trainings"
	ResourceBoardMembers  ResourceType = "board-members"
	ResourcePress         ResourceType = "press"
	ResourceCondolences   ResourceType = "condolences"
	ResourcePayments      ResourceType = "payments"
	ResourcePageSections  ResourceType = "page-sections"
)

var resourceTypes = map[ResourceType]bool{
	ResourceAnnouncements: true,
	ResourceDocuments:     true,
	ResourceVisits:        true,
	ResourceTrainings:     true,
	ResourceBoardMembers:  true,
	ResourcePress:         true,
	ResourceCondolences:   true,
	ResourcePayments:      true,
	ResourcePageSections:  true,
}

// IsValid reports whether t names a known content collection.
func (t ResourceType) IsValid() bool {
	return resourceTypes[t]
}

// Resource is one content item of any collection. Title and Category are
// promoted to columns because listing filters on them; everything else is
// schema-free JSON.
type Resource struct {
	ID        string         `json:"id"`
	Type      ResourceType   `json:"-"`
	Title     string         `json:"title"`
	Category  string         `json:"category,omitempty"`
	Slug      string         `json:"slug,omitempty"`
	Attrs     map[string]any `json:"attrs"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// turkish characters mapped before lowercasing; İ lowercases to i̇ otherwise
var slugReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// Slugify builds a URL-friendly slug from a Turkish title.
func Slugify(title string) string {
	s := slugReplacer.Replace(title)
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
