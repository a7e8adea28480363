package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports/mocks"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

func TestParseAuthzPolicy(t *testing.T) {
	p, err := ParseAuthzPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyPerAction, p)

	p, err = ParseAuthzPolicy("per_session")
	require.NoError(t, err)
	assert.Equal(t, PolicyPerSession, p)

	_, err = ParseAuthzPolicy("never")
	assert.Error(t, err)
}

func TestAuthorizer_PerAction(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	views := viewstate.NewStore(time.Minute)
	authz := NewAuthorizer(NewAdminService(repo, newTestLogger(t)), views, PolicyPerAction)

	boss := &domain.Identity{UID: "u-boss", Email: "boss@x.com"}
	views.Dispatch("s1", viewstate.IdentitySet{Identity: boss})

	repo.EXPECT().GetByEmail(mock.Anything, "boss@x.com").Return(&domain.Admin{ID: "a1"}, nil).Once()
	require.NoError(t, authz.RequireAdmin(context.Background(), "s1", boss))
	assert.True(t, views.Get("s1").IsAdmin)

	// removed from the roster in the meantime
	repo.EXPECT().GetByEmail(mock.Anything, "boss@x.com").Return(nil, domain.ErrAdminNotFound).Once()
	assert.ErrorIs(t, authz.RequireAdmin(context.Background(), "s1", boss), domain.ErrForbidden)
	assert.False(t, views.Get("s1").IsAdmin)
}

func TestAuthorizer_PerSession(t *testing.T) {
	views := viewstate.NewStore(time.Minute)
	authz := NewAuthorizer(nil, views, PolicyPerSession)

	boss := &domain.Identity{UID: "u-boss", Email: "boss@x.com"}
	views.Dispatch("s1",
		viewstate.IdentitySet{Identity: boss},
		viewstate.AdminStatusChecked{UID: boss.UID, IsAdmin: true},
	)

	require.NoError(t, authz.RequireAdmin(context.Background(), "s1", boss))
	assert.ErrorIs(t, authz.RequireAdmin(context.Background(), "s2", boss), domain.ErrForbidden)
}

func TestAuthorizer_NotSignedIn(t *testing.T) {
	authz := NewAuthorizer(nil, viewstate.NewStore(time.Minute), PolicyPerAction)

	assert.ErrorIs(t, authz.RequireAdmin(context.Background(), "s1", nil), domain.ErrNotSignedIn)
}
