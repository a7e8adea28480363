package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBootcamp() *Bootcamp {
	return &Bootcamp{
		ID:   1,
		Name: "Full Stack Development",
		Schedule: map[ScheduleKey]string{
			ScheduleMorning: "8:00 AM - 12:00 PM",
			ScheduleEvening: "6:00 PM - 10:00 PM",
		},
		StartDates: []string{"2025-05-01", "2025-06-15"},
		PaymentPlans: []PaymentPlan{
			{Type: "Pago Completo", Price: "$2999", Discount: "15%"},
			{Type: "Mensual", Price: "$1100", Installments: 3},
		},
	}
}

func TestValidateSelection_OK(t *testing.T) {
	sel := Selection{Schedule: ScheduleMorning, StartDate: "2025-05-01", PaymentPlan: "Mensual"}

	require.NoError(t, ValidateSelection(sel, testBootcamp()))
}

func TestValidateSelection_MissingFields(t *testing.T) {
	cases := map[string]Selection{
		"schedule":     {StartDate: "2025-05-01", PaymentPlan: "Mensual"},
		"start date":   {Schedule: ScheduleMorning, PaymentPlan: "Mensual"},
		"payment plan": {Schedule: ScheduleMorning, StartDate: "2025-05-01"},
		"blank":        {Schedule: "  ", StartDate: " ", PaymentPlan: "\t"},
	}

	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateSelection(sel, testBootcamp())
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateSelection_NotOffered(t *testing.T) {
	cases := map[string]Selection{
		"schedule":     {Schedule: ScheduleAfternoon, StartDate: "2025-05-01", PaymentPlan: "Mensual"},
		"start date":   {Schedule: ScheduleMorning, StartDate: "2030-01-01", PaymentPlan: "Mensual"},
		"payment plan": {Schedule: ScheduleMorning, StartDate: "2025-05-01", PaymentPlan: "Quincenal"},
	}

	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateSelection(sel, testBootcamp())
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateSelection_NilBootcamp(t *testing.T) {
	sel := Selection{Schedule: ScheduleMorning, StartDate: "2025-05-01", PaymentPlan: "Mensual"}

	assert.ErrorIs(t, ValidateSelection(sel, nil), ErrBootcampNotFound)
}

func TestNewRegistration_Defaults(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	who := &Identity{UID: "u1", Email: "ana@x.com"}
	sel := Selection{Schedule: " morning ", StartDate: "2025-05-01", PaymentPlan: "Mensual"}

	reg := NewRegistration("r1", who, testBootcamp(), sel, now)

	assert.Equal(t, StatusPending, reg.Status)
	assert.Equal(t, PaymentPending, reg.PaymentStatus)
	assert.Equal(t, ScheduleMorning, reg.Schedule)
	assert.Equal(t, "Full Stack Development", reg.BootcampName)
	assert.Equal(t, now, reg.CreatedAt)
	assert.Equal(t, now, reg.UpdatedAt)
	assert.Equal(t, 1, reg.Version)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Maria.g", DisplayName("maria.g@x.com"))
	assert.Equal(t, "Ñandu", DisplayName("ñandu@x.com"))
	assert.Equal(t, "", DisplayName("@x.com"))
}

func TestNormalizeAdminEmail(t *testing.T) {
	email, err := NormalizeAdminEmail("  boss@x.com ")
	require.NoError(t, err)
	assert.Equal(t, "boss@x.com", email)

	_, err = NormalizeAdminEmail("not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NormalizeAdminEmail("")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, MsgMustSignIn, UserMessage(ErrNotSignedIn))
	assert.Equal(t, MsgAdminExists, UserMessage(ErrAdminExists))
	assert.Equal(t, MsgInternal, UserMessage(assert.AnError))
}

func TestNewConfirmation(t *testing.T) {
	reg := &Registration{
		UserEmail:    "maria@x.com",
		BootcampName: "Full Stack Development",
		Schedule:     ScheduleEvening,
		StartDate:    "2025-06-15",
	}

	c := NewConfirmation(reg, testBootcamp())

	assert.Equal(t, "maria@x.com", c.To)
	assert.Equal(t, "Maria", c.ToName)
	assert.Equal(t, "6:00 PM - 10:00 PM", c.Schedule)
	assert.Equal(t, "2025-06-15", c.StartDate)

	assert.Equal(t, "evening", NewConfirmation(reg, nil).Schedule)
}
