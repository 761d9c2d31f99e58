package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_IsValid(t *testing.T) {
	assert.True(t, ApplicationStatusPending.IsValid())
	assert.True(t, ApplicationStatusApproved.IsValid())
	assert.True(t, ApplicationStatusRejected.IsValid())
	assert.False(t, ApplicationStatus("archived").IsValid())
	assert.False(t, ApplicationStatus("").IsValid())
}

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	t.Run("Pending Moves To Terminal", func(t *testing.T) {
		assert.True(t, ApplicationStatusPending.CanTransitionTo(ApplicationStatusApproved))
		assert.True(t, ApplicationStatusPending.CanTransitionTo(ApplicationStatusRejected))
	})

	t.Run("Terminal States Are Final", func(t *testing.T) {
		assert.False(t, ApplicationStatusApproved.CanTransitionTo(ApplicationStatusRejected))
		assert.False(t, ApplicationStatusApproved.CanTransitionTo(ApplicationStatusPending))
		assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusApproved))
	})

	t.Run("No Self Transition Back To Pending", func(t *testing.T) {
		assert.False(t, ApplicationStatusPending.CanTransitionTo(ApplicationStatusPending))
	})
}

func TestMembershipApplication_Validate(t *testing.T) {
	valid := MembershipApplication{
		Name:      "Örnek Kuyumcu Ltd.",
		Email:     "info@ornek.com.tr",
		Phone:     "+90 212 555 0000",
		Address:   "Kapalıçarşı No: 1, İstanbul",
		TaxNumber: "1234567890",
	}

	t.Run("Valid", func(t *testing.T) {
		app := valid
		assert.NoError(t, app.Validate())
	})

	t.Run("Note And Files Optional", func(t *testing.T) {
		app := valid
		app.Note = ""
		app.Files = nil
		assert.NoError(t, app.Validate())
	})

	t.Run("Missing Required Field", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(*MembershipApplication)
		}{
			{"name", func(a *MembershipApplication) { a.Name = "" }},
			{"email", func(a *MembershipApplication) { a.Email = "" }},
			{"phone", func(a *MembershipApplication) { a.Phone = "" }},
			{"address", func(a *MembershipApplication) { a.Address = "" }},
			{"tax_number", func(a *MembershipApplication) { a.TaxNumber = "  " }},
		}
		for _, tc := range cases {
			app := valid
			tc.mutate(&app)
			err := app.Validate()
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tc.field)
		}
	})
}
