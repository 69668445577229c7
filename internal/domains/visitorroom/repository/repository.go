package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/visitorroom/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

type VisitorRoom interface {
	Insert(ctx context.Context, model model.VisitorRoom) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VisitorRoom, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VisitorRoom, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CompareAndSet(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	CompareAndSetTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	InsertReservationTx(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error
	// GetReservations returns the history of roomID, newest first.
	GetReservations(ctx context.Context, roomID string) ([]model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.VisitorRoom]
	reservations gRepo.Repository[model.Reservation]
}

func New(db *postgres.Connection, otel otel.Otel) VisitorRoom {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.VisitorRoom](model.EntityName, model.TableName, model.FieldID, db, otel),
		reservations: gRepo.NewRepository[model.Reservation](model.HistoryEntityName, model.HistoryTableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) InsertReservationTx(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error {
	return r.reservations.InsertTx(ctx, tx, reservation)
}

func (r *repositoryImpl) GetReservations(ctx context.Context, roomID string) ([]model.Reservation, error) {
	return r.reservations.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.HistoryTableName + "." + model.FieldHistoryReservedAt,
		SortDir: gDto.SortDirDesc,
	}, gDto.And(gDto.Eq(model.HistoryTableName, model.FieldHistoryRoomID, roomID)))
}

// WithStatus narrows filter to rooms currently in status.
func WithStatus(filter gDto.FilterGroup, status model.Status) gDto.FilterGroup {
	filter.Add(gDto.Filter{
		ArgName:  model.ArgCurrentStatus,
		Table:    model.TableName,
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    status,
	})

	return filter
}
