package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

const (
	adminID = "0b6c9a52-3f0e-4f7b-9d7e-2f1a7c4b8e11"
	otherID = "9d2e4f60-1a3b-4c5d-8e9f-a0b1c2d3e4f5"
)

func TestAdminRepo_Delete(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewAdminRepo(db)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT id FROM admins FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(adminID).AddRow(otherID))
	dbMock.ExpectExec(`DELETE FROM admins WHERE id = \$1`).
		WithArgs(adminID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), adminID))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestAdminRepo_Delete_LastAdmin(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewAdminRepo(db)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT id FROM admins FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(adminID))
	dbMock.ExpectRollback()

	err := repo.Delete(context.Background(), adminID)

	assert.ErrorIs(t, err, domain.ErrLastAdmin)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestAdminRepo_Delete_Unknown(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewAdminRepo(db)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT id FROM admins FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(otherID).AddRow(adminID))
	dbMock.ExpectRollback()

	err := repo.Delete(context.Background(), "5e1f0c3a-7b2d-4e6f-8a9b-c0d1e2f3a4b5")

	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestAdminRepo_Delete_ExecFailureRollsBack(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewAdminRepo(db)

	dbErr := errors.New("connection reset")
	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT id FROM admins FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(adminID).AddRow(otherID))
	dbMock.ExpectExec(`DELETE FROM admins WHERE id = \$1`).
		WithArgs(adminID).
		WillReturnError(dbErr)
	dbMock.ExpectRollback()

	err := repo.Delete(context.Background(), adminID)

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestAdminRepo_Create_Duplicate(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewAdminRepo(db)

	dbMock.ExpectExec(`INSERT INTO admins`).WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Admin{ID: adminID, Email: "boss@x.com", Role: domain.RoleAdmin})

	assert.ErrorIs(t, err, domain.ErrAdminExists)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
