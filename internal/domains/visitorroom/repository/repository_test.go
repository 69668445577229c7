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
	"hms/internal/domains/visitorroom/model"
	"hms/internal/domains/visitorroom/repository"
	"hms/shared"
	gRepo "hms/shared/repository"
)

func setupRepo(t *testing.T) (sqlmock.Sqlmock, *postgres.Connection, repository.VisitorRoom) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, conn, repository.New(conn, mocks.NewOtel())
}

func TestVisitorRoomRepository_ReserveInTx(t *testing.T) {
	mock, conn, repo := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE visitor_rooms SET reserved_by = \$1, status = \$2\s+WHERE \(visitor_rooms\.id = \$3 AND visitor_rooms\.status = \$4\)`).
		WithArgs("p-1", "Reserved", "vr-1", "Available").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO visitor_room_reservations \(id, room_id, user_id, time_slot, reserved_at\)`).
		WithArgs("r-1", "vr-1", "p-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	transactor := gRepo.NewTransactor(conn, mocks.NewOtel())

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		filter := repository.WithStatus(shared.FilterByID("vr-1", model.FieldID, model.TableName), model.StatusAvailable)

		affected, err := repo.CompareAndSetTx(context.Background(), tx, map[string]any{
			model.FieldStatus:     model.StatusReserved,
			model.FieldReservedBy: "p-1",
		}, filter)
		if err != nil {
			return err
		}

		assert.Equal(t, int64(1), affected)

		return repo.InsertReservationTx(context.Background(), tx, model.Reservation{
			ID:         "r-1",
			RoomID:     "vr-1",
			UserID:     "p-1",
			ReservedAt: time.Now(),
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorRoomRepository_ReserveRollsBack(t *testing.T) {
	mock, conn, repo := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE visitor_rooms SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	errTaken := assert.AnError

	err := gRepo.NewTransactor(conn, mocks.NewOtel()).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		affected, err := repo.CompareAndSetTx(context.Background(), tx, map[string]any{
			model.FieldStatus: model.StatusReserved,
		}, repository.WithStatus(shared.FilterByID("vr-1", model.FieldID, model.TableName), model.StatusAvailable))
		if err != nil {
			return err
		}

		if affected == 0 {
			return errTaken
		}

		return nil
	})

	require.ErrorIs(t, err, errTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorRoomRepository_GetReservations(t *testing.T) {
	mock, _, repo := setupRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "room_id", "user_id", "user_name", "time_slot", "reserved_at"}).
		AddRow("r-2", "vr-1", "p-1", "amr", "10:00-11:00", now).
		AddRow("r-1", "vr-1", "p-2", nil, nil, now.Add(-time.Hour))

	mock.ExpectPrepare(`SELECT .*users\.user_name AS user_name.* FROM visitor_room_reservations\s+LEFT JOIN users ON users\.id = visitor_room_reservations\.user_id\s+WHERE \(visitor_room_reservations\.room_id = \$1\)\s+ORDER BY visitor_room_reservations\.reserved_at DESC`).
		ExpectQuery().
		WithArgs("vr-1").
		WillReturnRows(rows)

	reservations, err := repo.GetReservations(context.Background(), "vr-1")
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	require.NotNil(t, reservations[0].UserName)
	assert.Equal(t, "amr", *reservations[0].UserName)
	require.NotNil(t, reservations[0].TimeSlot)
	assert.Nil(t, reservations[1].UserName)
	assert.Nil(t, reservations[1].TimeSlot)
	require.NoError(t, mock.ExpectationsWereMet())
}
