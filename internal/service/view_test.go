package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports/mocks"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

func TestViewSync_SignInLoadsAdminFlagAndRegistrations(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	regs := mocks.NewMockRegistrationRepo(t)
	views := viewstate.NewStore(time.Minute)
	vs := NewViewSync(views, NewAdminService(admins, newTestLogger(t)), regs, newTestLogger(t))

	admins.EXPECT().GetByEmail(mock.Anything, "ana@x.com").Return(&domain.Admin{ID: "a1"}, nil)
	regs.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Registration{{ID: "r1"}}, nil)

	vs.HandleIdentityChange(context.Background(), session.IdentityChange{
		Kind: session.ChangeSignIn, SessionID: "s1", Identity: who,
	})

	st := views.Get("s1")
	require.True(t, st.SignedIn())
	assert.True(t, st.IsAdmin)
	assert.Len(t, st.Registrations, 1)
}

func TestViewSync_SignOutClearsSynchronously(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	regs := mocks.NewMockRegistrationRepo(t)
	views := viewstate.NewStore(time.Minute)
	vs := NewViewSync(views, NewAdminService(admins, newTestLogger(t)), regs, newTestLogger(t))

	views.Dispatch("s1",
		viewstate.IdentitySet{Identity: who},
		viewstate.AdminStatusChecked{UID: who.UID, IsAdmin: true},
		viewstate.RegistrationsLoaded{UID: who.UID, Registrations: []*domain.Registration{{ID: "r1"}}},
	)

	vs.HandleIdentityChange(context.Background(), session.IdentityChange{Kind: session.ChangeSignOut, SessionID: "s1"})

	st := views.Get("s1")
	assert.False(t, st.SignedIn())
	assert.False(t, st.IsAdmin)
	assert.Empty(t, st.Registrations)
}

func TestViewSync_LoadFailureSetsMessage(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	regs := mocks.NewMockRegistrationRepo(t)
	views := viewstate.NewStore(time.Minute)
	vs := NewViewSync(views, NewAdminService(admins, newTestLogger(t)), regs, newTestLogger(t))

	admins.EXPECT().GetByEmail(mock.Anything, "ana@x.com").Return(nil, domain.ErrAdminNotFound)
	regs.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, errors.New("db error"))

	vs.HandleIdentityChange(context.Background(), session.IdentityChange{
		Kind: session.ChangeRestore, SessionID: "s1", Identity: who,
	})

	st := views.Get("s1")
	require.NotNil(t, st.Message)
	assert.Equal(t, domain.MsgLoadFailed, st.Message.Text)
	assert.False(t, st.IsAdmin)
}
