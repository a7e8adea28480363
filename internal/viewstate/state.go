// Package viewstate holds what the page shows for one browser session and
// the pure transitions between those states.
package viewstate

import "github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// State is a snapshot. Reduce never mutates its input, so a State handed
// out by the Store may be read without locking.
type State struct {
	Identity         *domain.Identity          `json:"identity"`
	IsAdmin          bool                      `json:"is_admin"`
	Registrations    []*domain.Registration    `json:"registrations"`
	AllRegistrations []*domain.Registration    `json:"all_registrations"`
	Admins           []*domain.Admin           `json:"admins"`
	Filter           domain.RegistrationFilter `json:"filter"`
	Message          *Message                  `json:"message,omitempty"`
}

func (s State) SignedIn() bool {
	return s.Identity != nil
}

// Visible is the admin list narrowed by the current filter.
func (s State) Visible() []*domain.Registration {
	if !s.IsAdmin {
		return nil
	}
	return s.Filter.Apply(s.AllRegistrations)
}

// Event is one of the inputs Reduce understands.
type Event interface {
	event()
}

// IdentitySet reports the identity after sign-in, sign-out (nil) or restore.
type IdentitySet struct {
	Identity *domain.Identity
}

// AdminStatusChecked carries a directory lookup result for UID.
type AdminStatusChecked struct {
	UID     string
	IsAdmin bool
}

// RegistrationsLoaded carries the registrations owned by UID.
type RegistrationsLoaded struct {
	UID           string
	Registrations []*domain.Registration
}

type AllRegistrationsLoaded struct {
	Registrations []*domain.Registration
}

type AdminsLoaded struct {
	Admins []*domain.Admin
}

type FilterChanged struct {
	Filter domain.RegistrationFilter
}

type MutationSucceeded struct {
	Message string
}

type OperationFailed struct {
	Message string
}

func (IdentitySet) event()            {}
func (AdminStatusChecked) event()     {}
func (RegistrationsLoaded) event()    {}
func (AllRegistrationsLoaded) event() {}
func (AdminsLoaded) event()           {}
func (FilterChanged) event()          {}
func (MutationSucceeded) event()      {}
func (OperationFailed) event()        {}
