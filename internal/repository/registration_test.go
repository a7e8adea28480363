package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

const regID = "6f1c2d4e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"

var registrationCols = []string{
	"id", "user_id", "user_email", "bootcamp_id", "bootcamp_name",
	"schedule", "start_date", "payment_plan", "status", "payment_status",
	"notes", "version", "created_at", "updated_at",
}

func registrationRow(status string, version int64) *sqlmock.Rows {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(registrationCols).AddRow(
		regID, "u1", "ana@x.com", int64(2), "Data Science",
		"evening", "2025-05-15", "Mensual", status, "pending",
		"", version, now, now,
	)
}

func TestRegistrationRepo_Update_WithExpectedVersion(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	status := domain.StatusApproved
	version := 3
	dbMock.ExpectQuery(`UPDATE registrations`).
		WithArgs(regID, "approved", nil, nil, sqlmock.AnyArg(), int64(3)).
		WillReturnRows(registrationRow("approved", 4))

	reg, err := repo.Update(context.Background(), regID, domain.RegistrationUpdate{
		Status:          &status,
		ExpectedVersion: &version,
		UpdatedAt:       time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, reg.Status)
	assert.Equal(t, 4, reg.Version)
	assert.Equal(t, domain.ScheduleEvening, reg.Schedule)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegistrationRepo_Update_WithoutVersionIsUnconditional(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	notes := ""
	dbMock.ExpectQuery(`UPDATE registrations`).
		WithArgs(regID, nil, nil, "", sqlmock.AnyArg(), nil).
		WillReturnRows(registrationRow("pending", 2))

	_, err := repo.Update(context.Background(), regID, domain.RegistrationUpdate{Notes: &notes})

	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegistrationRepo_Update_VersionMoved(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	status := domain.StatusRejected
	version := 1
	dbMock.ExpectQuery(`UPDATE registrations`).
		WillReturnRows(sqlmock.NewRows(registrationCols))
	dbMock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM registrations WHERE id = \$1\)`).
		WithArgs(regID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.Update(context.Background(), regID, domain.RegistrationUpdate{Status: &status, ExpectedVersion: &version})

	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegistrationRepo_Update_Missing(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	status := domain.StatusRejected
	dbMock.ExpectQuery(`UPDATE registrations`).
		WillReturnRows(sqlmock.NewRows(registrationCols))
	dbMock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(regID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.Update(context.Background(), regID, domain.RegistrationUpdate{Status: &status})

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegistrationRepo_MalformedIDNeverQueries(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	_, err := repo.Update(context.Background(), "42", domain.RegistrationUpdate{})
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)

	err = repo.Delete(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegistrationRepo_Delete(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	dbMock.ExpectExec(`DELETE FROM registrations WHERE id = \$1`).
		WithArgs(regID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec(`DELETE FROM registrations WHERE id = \$1`).
		WithArgs(regID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), regID))
	assert.ErrorIs(t, repo.Delete(context.Background(), regID), domain.ErrRegistrationNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRegistrationRepo_ListAll_Empty(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	dbMock.ExpectQuery(`SELECT .+ FROM registrations\s+ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(registrationCols))

	regs, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.NotNil(t, regs)
	assert.Empty(t, regs)
}

func TestRegistrationRepo_Create_Error(t *testing.T) {
	db, dbMock := newMockDB(t)
	repo := NewRegistrationRepo(db)

	dbErr := errors.New("connection reset")
	dbMock.ExpectExec(`INSERT INTO registrations`).WillReturnError(dbErr)

	err := repo.Create(context.Background(), &domain.Registration{ID: regID})

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
