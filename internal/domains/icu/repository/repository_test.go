package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/infras/otel/mocks"
	"hms/infras/postgres"
	"hms/internal/domains/icu/model"
	"hms/internal/domains/icu/repository"
	"hms/shared"
	"hms/shared/constant"
)

func setupRepo(t *testing.T) (sqlmock.Sqlmock, repository.ICU) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return mock, repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel())
}

func TestICURepository_GetJoinsHospital(t *testing.T) {
	mock, repo := setupRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "hospital_id", "hospital_name", "hospital_address", "hospital_longitude", "hospital_latitude",
		"specialization", "status", "fees", "is_reserved", "reserved_by",
		"created_at", "modified_at", "created_by", "modified_by",
	}).AddRow(
		"icu-1", "h-1", "Cairo General", "Tahrir St", 31.0, 30.0,
		"Cardiac ICU", "Available", 100.0, false, nil,
		now, now, "admin", "admin",
	)

	mock.ExpectPrepare(`SELECT .*hospitals\.name AS hospital_name.* FROM icu_rooms\s+JOIN hospitals ON hospitals\.id = icu_rooms\.hospital_id\s+WHERE \(icu_rooms\.id = \$1\)`).
		ExpectQuery().
		WithArgs("icu-1").
		WillReturnRows(rows)

	icu, err := repo.Get(context.Background(), shared.FilterByID("icu-1", model.FieldID, model.TableName))
	require.NoError(t, err)

	assert.Equal(t, "icu-1", icu.ID)
	assert.Equal(t, "Cairo General", icu.HospitalName)
	assert.Equal(t, "Tahrir St", icu.HospitalAddress)
	assert.Equal(t, model.StatusAvailable, icu.Status)
	assert.Nil(t, icu.ReservedBy)
	assert.InDelta(t, 31.0, icu.Location().Longitude, 0.0001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestICURepository_GetMissing(t *testing.T) {
	mock, repo := setupRepo(t)

	mock.ExpectPrepare(`SELECT .* FROM icu_rooms`).
		ExpectQuery().
		WithArgs("icu-404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	icu, err := repo.Get(context.Background(), shared.FilterByID("icu-404", model.FieldID, model.TableName))
	require.NoError(t, err)

	assert.Equal(t, constant.Empty, icu.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestICURepository_CompareAndSet(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "room still available", affected: 1},
		{name: "room already taken", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := setupRepo(t)

			mock.ExpectExec(`UPDATE icu_rooms SET is_reserved = \$1, reserved_by = \$2, status = \$3\s+WHERE \(icu_rooms\.id = \$4 AND icu_rooms\.status = \$5\)`).
				WithArgs(true, "user-1", "Occupied", "icu-1", "Available").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			filter := repository.WithStatus(shared.FilterByID("icu-1", model.FieldID, model.TableName), model.StatusAvailable)

			affected, err := repo.CompareAndSet(context.Background(), map[string]any{
				model.FieldStatus:     model.StatusOccupied,
				model.FieldIsReserved: true,
				model.FieldReservedBy: "user-1",
			}, filter)

			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
