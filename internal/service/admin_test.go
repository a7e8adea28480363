package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports/mocks"
)

func TestAdminService_IsAdmin(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "boss@x.com").Return(&domain.Admin{ID: "a1"}, nil)
	repo.EXPECT().GetByEmail(mock.Anything, "ana@x.com").Return(nil, domain.ErrAdminNotFound)
	repo.EXPECT().GetByEmail(mock.Anything, "err@x.com").Return(nil, errors.New("db error"))

	assert.True(t, svc.IsAdmin(context.Background(), "boss@x.com"))
	assert.False(t, svc.IsAdmin(context.Background(), "ana@x.com"))
	assert.False(t, svc.IsAdmin(context.Background(), "err@x.com"))
	assert.False(t, svc.IsAdmin(context.Background(), ""))
}

func TestAdminService_Add_Success(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "new@x.com").Return(nil, domain.ErrAdminNotFound)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return a.Email == "new@x.com" && a.Role == domain.RoleAdmin && !a.CreatedAt.IsZero()
	})).Return(nil)

	admin, err := svc.Add(context.Background(), "  new@x.com ")

	require.NoError(t, err)
	assert.Equal(t, "new@x.com", admin.Email)
	assert.NotEmpty(t, admin.ID)
}

func TestAdminService_Add_InvalidEmail(t *testing.T) {
	svc := NewAdminService(nil, newTestLogger(t))

	_, err := svc.Add(context.Background(), "not-an-email")

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Equal(t, "Por favor ingresa un correo válido", domain.UserMessage(err))
}

func TestAdminService_Add_Exists(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "boss@x.com").Return(&domain.Admin{ID: "a1", Email: "boss@x.com"}, nil)

	_, err := svc.Add(context.Background(), "boss@x.com")

	assert.ErrorIs(t, err, domain.ErrAdminExists)
	assert.Equal(t, "Este correo ya está registrado como administrador", domain.UserMessage(err))
}

func TestAdminService_Add_RaceOnInsert(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "boss@x.com").Return(nil, domain.ErrAdminNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAdminExists)

	_, err := svc.Add(context.Background(), "boss@x.com")

	assert.ErrorIs(t, err, domain.ErrAdminExists)
}

func TestAdminService_Remove(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "a2").Return(nil)

	require.NoError(t, svc.Remove(context.Background(), "a2"))
}

func TestAdminService_Remove_Errors(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrAdminNotFound)
	repo.EXPECT().Delete(mock.Anything, "only").Return(domain.ErrLastAdmin)

	assert.ErrorIs(t, svc.Remove(context.Background(), "missing"), domain.ErrAdminNotFound)
	assert.ErrorIs(t, svc.Remove(context.Background(), "only"), domain.ErrLastAdmin)
}

func TestAdminService_List(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, newTestLogger(t))

	expected := []*domain.Admin{{ID: "a1"}, {ID: "a2"}}
	repo.EXPECT().List(mock.Anything).Return(expected, nil)

	admins, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, admins)
}
