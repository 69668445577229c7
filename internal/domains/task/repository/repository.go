package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/task/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type Task interface {
	Insert(ctx context.Context, model model.Task) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
