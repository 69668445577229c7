package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/icu/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type ICU interface {
	Insert(ctx context.Context, model model.ICU) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ICU, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ICU, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// CompareAndSet returns how many rows matched filter and were changed.
	CompareAndSet(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ICU]
}

func New(db *postgres.Connection, otel otel.Otel) ICU {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ICU](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// WithStatus narrows filter to rows currently in status.
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

// Available selects the rooms open for reservation, oldest first.
func Available() (gDto.QueryParams, gDto.FilterGroup) {
	return gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.And(gDto.Eq(model.TableName, model.FieldStatus, model.StatusAvailable))
}
