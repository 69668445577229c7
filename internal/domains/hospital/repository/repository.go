package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/hospital/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"
)

const queryRatings = `SELECT hospitals.id AS hospital_id, hospitals.name,
	COALESCE(AVG(feedbacks.rating), 0) AS average_rating, COUNT(feedbacks.id) AS total_feedbacks
	FROM hospitals LEFT JOIN feedbacks ON feedbacks.hospital_id = hospitals.id
	GROUP BY hospitals.id, hospitals.name
	ORDER BY average_rating DESC, hospitals.name ASC`

type Hospital interface {
	Insert(ctx context.Context, model model.Hospital) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hospital, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hospital, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetRatings(ctx context.Context) ([]model.Rating, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hospital]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hospital {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hospital](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetRatings returns one row per hospital, hospitals without feedback included.
func (r *repositoryImpl) GetRatings(ctx context.Context) ([]model.Rating, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hospital.GetRatings")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRatings)

	ratings := []model.Rating{}

	if err := r.db.Read.SelectContext(ctx, &ratings, queryRatings); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return ratings, fmt.Errorf("failed to get hospital ratings: %w", err)
	}

	return ratings, nil
}
