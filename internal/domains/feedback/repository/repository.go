package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/feedback/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type Feedback interface {
	Insert(ctx context.Context, model model.Feedback) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Feedback, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Feedback]
}

func New(db *postgres.Connection, otel otel.Otel) Feedback {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Feedback](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
