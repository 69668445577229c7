package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/shift/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type Shift interface {
	Insert(ctx context.Context, model model.Shift) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Shift, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Shift]
}

func New(db *postgres.Connection, otel otel.Otel) Shift {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Shift](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
