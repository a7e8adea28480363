package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

var RegistrationStatuses = []RegistrationStatus{StatusPending, StatusApproved, StatusRejected}

func (s RegistrationStatus) Valid() bool {
	return slices.Contains(RegistrationStatuses, s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPartial   PaymentStatus = "partial"
	PaymentCompleted PaymentStatus = "completed"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPartial, PaymentCompleted}

func (s PaymentStatus) Valid() bool {
	return slices.Contains(PaymentStatuses, s)
}

type Registration struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	UserEmail     string             `json:"user_email"`
	BootcampID    int                `json:"bootcamp_id"`
	BootcampName  string             `json:"bootcamp_name"`
	Schedule      ScheduleKey        `json:"schedule"`
	StartDate     string             `json:"start_date"`
	PaymentPlan   string             `json:"payment_plan"`
	Status        RegistrationStatus `json:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status"`
	Notes         string             `json:"notes"`
	Version       int                `json:"version"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Selection is what the visitor picked in the registration form.
type Selection struct {
	Schedule    ScheduleKey
	StartDate   string
	PaymentPlan string
}

func (s Selection) normalized() Selection {
	return Selection{
		Schedule:    ScheduleKey(strings.TrimSpace(string(s.Schedule))),
		StartDate:   strings.TrimSpace(s.StartDate),
		PaymentPlan: strings.TrimSpace(s.PaymentPlan),
	}
}

// Complete reports whether all three choices are present.
func (s Selection) Complete() bool {
	n := s.normalized()
	return n.Schedule != "" && n.StartDate != "" && n.PaymentPlan != ""
}

// ValidateSelection checks the form choices against the bootcamp as it is
// now in the catalog. It performs no I/O.
func ValidateSelection(sel Selection, b *Bootcamp) error {
	if !sel.Complete() {
		return fmt.Errorf("%w: schedule, start_date and payment_plan are required", ErrValidation)
	}
	if b == nil {
		return ErrBootcampNotFound
	}

	sel = sel.normalized()
	if _, ok := b.Schedule[sel.Schedule]; !ok {
		return fmt.Errorf("%w: schedule %q is not offered by %s", ErrValidation, sel.Schedule, b.Name)
	}
	if !slices.Contains(b.StartDates, sel.StartDate) {
		return fmt.Errorf("%w: start date %q is not offered by %s", ErrValidation, sel.StartDate, b.Name)
	}
	if _, ok := b.PaymentPlan(sel.PaymentPlan); !ok {
		return fmt.Errorf("%w: payment plan %q is not offered by %s", ErrValidation, sel.PaymentPlan, b.Name)
	}

	return nil
}

// NewRegistration assembles a pending registration for the identity.
func NewRegistration(id string, who *Identity, b *Bootcamp, sel Selection, now time.Time) *Registration {
	sel = sel.normalized()
	return &Registration{
		ID:            id,
		UserID:        who.UID,
		UserEmail:     who.Email,
		BootcampID:    b.ID,
		BootcampName:  b.Name,
		Schedule:      sel.Schedule,
		StartDate:     sel.StartDate,
		PaymentPlan:   sel.PaymentPlan,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// RegistrationUpdate is a field-level change. Nil fields are left alone.
// ExpectedVersion, when set, turns the write into a compare-and-swap;
// otherwise the last write wins.
type RegistrationUpdate struct {
	Status          *RegistrationStatus
	PaymentStatus   *PaymentStatus
	Notes           *string
	ExpectedVersion *int
	UpdatedAt       time.Time
}

func (u RegistrationUpdate) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.Notes == nil
}
