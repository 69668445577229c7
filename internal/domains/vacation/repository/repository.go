package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/vacation/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type Vacation interface {
	Insert(ctx context.Context, model model.Vacation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vacation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Vacation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CompareAndSet(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Vacation]
}

func New(db *postgres.Connection, otel otel.Otel) Vacation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vacation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Pending narrows filter to requests nobody has decided yet.
func Pending(filter gDto.FilterGroup) gDto.FilterGroup {
	filter.Add(gDto.Filter{
		ArgName:  "current_status",
		Table:    model.TableName,
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    model.StatusPending,
	})

	return filter
}
