package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/internal/domains/feedback/model/dto"
	"hms/internal/domains/feedback/repository"
	hospitalModel "hms/internal/domains/hospital/model"
	hospitalRepo "hms/internal/domains/hospital/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/failure"

	"github.com/rs/zerolog/log"
)

// cache keys owned by the hospital service
const (
	cacheGetHospital     = "hospital:get"
	cacheHospitalRatings = "hospital:ratings"
)

type Feedback interface {
	Create(ctx context.Context, hospitalID string, req dto.CreateFeedbackRequest) (dto.FeedbackResponse, error)
}

type serviceImpl struct {
	repo         repository.Feedback
	hospitalRepo hospitalRepo.Hospital
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Feedback, hospitalRepo hospitalRepo.Hospital, cache cache.RedisCache, otel otel.Otel) Feedback {
	return &serviceImpl{
		repo:         repo,
		hospitalRepo: hospitalRepo,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, hospitalID string, req dto.CreateFeedbackRequest) (res dto.FeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.hospitalRepo.Exist(ctx, shared.FilterByID(hospitalID, hospitalModel.FieldID, hospitalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hospital existence")

		return res, fmt.Errorf("failed to check hospital existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Hospital not found") //nolint:wrapcheck
	}

	feedback := req.ToModel(hospitalID, shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, feedback); err != nil {
		log.Error().Err(err).Msg("failed to insert feedback")

		return res, fmt.Errorf("failed to insert feedback: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHospital, hospitalID)); err != nil {
			log.Error().Err(err).Msg("failed to delete hospital cache")
		}

		if err := s.cache.Delete(c, cacheHospitalRatings); err != nil {
			log.Error().Err(err).Msg("failed to delete hospital ratings cache")
		}
	}()

	res.FromModel(feedback)

	return res, nil
}
