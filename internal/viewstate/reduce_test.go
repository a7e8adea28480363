package viewstate

import (
	"testing"
	"time"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ana  = &domain.Identity{UID: "u-ana", Email: "ana@x.com"}
	luis = &domain.Identity{UID: "u-luis", Email: "luis@x.com"}
)

func adminState() State {
	s := Reduce(State{}, IdentitySet{Identity: ana})
	s = Reduce(s, AdminStatusChecked{UID: ana.UID, IsAdmin: true})
	s = Reduce(s, RegistrationsLoaded{UID: ana.UID, Registrations: []*domain.Registration{{ID: "r1"}}})
	s = Reduce(s, AllRegistrationsLoaded{Registrations: []*domain.Registration{{ID: "r1"}, {ID: "r2"}}})
	return Reduce(s, AdminsLoaded{Admins: []*domain.Admin{{ID: "a1", Email: ana.Email}}})
}

func TestReduce_SignOutClearsEverything(t *testing.T) {
	s := Reduce(adminState(), IdentitySet{Identity: nil})

	assert.False(t, s.SignedIn())
	assert.False(t, s.IsAdmin)
	assert.Empty(t, s.Registrations)
	assert.Empty(t, s.AllRegistrations)
	assert.Empty(t, s.Admins)
}

func TestReduce_IdentityChangeResetsDerivedData(t *testing.T) {
	s := Reduce(adminState(), IdentitySet{Identity: luis})

	require.True(t, s.SignedIn())
	assert.Equal(t, luis.UID, s.Identity.UID)
	assert.False(t, s.IsAdmin)
	assert.Empty(t, s.Registrations)
	assert.Empty(t, s.AllRegistrations)
}

func TestReduce_SameIdentityKeepsData(t *testing.T) {
	s := Reduce(adminState(), IdentitySet{Identity: &domain.Identity{UID: ana.UID, Email: ana.Email, Name: "Ana"}})

	assert.True(t, s.IsAdmin)
	assert.Len(t, s.Registrations, 1)
	assert.Equal(t, "Ana", s.Identity.Name)
}

func TestReduce_DropsResultsForAnotherIdentity(t *testing.T) {
	s := Reduce(State{}, IdentitySet{Identity: luis})
	s = Reduce(s, AdminStatusChecked{UID: ana.UID, IsAdmin: true})
	s = Reduce(s, RegistrationsLoaded{UID: ana.UID, Registrations: []*domain.Registration{{ID: "r1"}}})

	assert.False(t, s.IsAdmin)
	assert.Empty(t, s.Registrations)
}

func TestReduce_AdminDataRequiresFlag(t *testing.T) {
	s := Reduce(State{}, IdentitySet{Identity: luis})
	s = Reduce(s, AllRegistrationsLoaded{Registrations: []*domain.Registration{{ID: "r1"}}})
	s = Reduce(s, AdminsLoaded{Admins: []*domain.Admin{{ID: "a1"}}})

	assert.Empty(t, s.AllRegistrations)
	assert.Empty(t, s.Admins)
	assert.Empty(t, s.Visible())
}

func TestReduce_LosingAdminClearsAdminData(t *testing.T) {
	s := Reduce(adminState(), AdminStatusChecked{UID: ana.UID, IsAdmin: false})

	assert.False(t, s.IsAdmin)
	assert.Empty(t, s.AllRegistrations)
	assert.Empty(t, s.Admins)
	assert.Len(t, s.Registrations, 1)
}

func TestReduce_FilterNarrowsVisible(t *testing.T) {
	s := adminState()
	s = Reduce(s, AllRegistrationsLoaded{Registrations: []*domain.Registration{
		{ID: "1", UserEmail: "a@x.com", Status: domain.StatusPending, PaymentStatus: domain.PaymentPending},
		{ID: "2", UserEmail: "b@x.com", Status: domain.StatusApproved, PaymentStatus: domain.PaymentCompleted},
	}})
	s = Reduce(s, FilterChanged{Filter: domain.RegistrationFilter{Status: "approved"}})

	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "2", visible[0].ID)
	assert.Len(t, s.AllRegistrations, 2)
}

func TestReduce_Messages(t *testing.T) {
	s := Reduce(State{}, MutationSucceeded{Message: domain.MsgAdminAdded})
	require.NotNil(t, s.Message)
	assert.Equal(t, MessageSuccess, s.Message.Kind)

	s = Reduce(s, OperationFailed{Message: domain.MsgUpdateFailed})
	assert.Equal(t, MessageError, s.Message.Kind)
	assert.Equal(t, domain.MsgUpdateFailed, s.Message.Text)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := adminState()
	_ = Reduce(before, IdentitySet{Identity: nil})

	assert.True(t, before.IsAdmin)
	assert.Len(t, before.AllRegistrations, 2)
}

func TestStore_DispatchAndTakeMessage(t *testing.T) {
	store := NewStore(time.Minute)

	st := store.Dispatch("s1", IdentitySet{Identity: ana}, MutationSucceeded{Message: domain.MsgWelcome})
	assert.Equal(t, ana.UID, st.Identity.UID)

	shown := store.TakeMessage("s1")
	require.NotNil(t, shown.Message)
	assert.Equal(t, domain.MsgWelcome, shown.Message.Text)
	assert.Nil(t, store.Get("s1").Message)

	assert.False(t, store.Get("other").SignedIn())

	store.Delete("s1")
	assert.False(t, store.Get("s1").SignedIn())
}
