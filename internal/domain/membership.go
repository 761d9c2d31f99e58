package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the lifecycle state of a membership application.
// Applications start out pending; approved and rejected are terminal.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether s permits no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return s == ApplicationStatusPending && next.IsTerminal()
}

// MembershipApplication is a membership request submitted by an applicant
// through the public site. Email and tax number are the only permitted
// lookup keys for the public status check.
type MembershipApplication struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	TaxNumber string            `json:"tax_number"`
	Note      string            `json:"note,omitempty"`
	Files     []string          `json:"files"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// ErrMissingField wraps the name of a required applicant field that was empty.
var ErrMissingField = errors.New("missing required field")

// Validate checks that all required applicant fields are present and non-empty.
// The note and attachments are optional.
func (a *MembershipApplication) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"email", a.Email},
		{"phone", a.Phone},
		{"address", a.Address},
		{"tax_number", a.TaxNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// ApplicationStatusResult is the minimal projection returned by the public
// status lookup. It deliberately excludes address, note and attachments:
// the lookup is unauthenticated.
type ApplicationStatusResult struct {
	Name      string            `json:"name"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
