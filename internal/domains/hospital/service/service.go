package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"hms/config"
	"hms/infras/otel"
	"hms/infras/s3"
	feedbackModel "hms/internal/domains/feedback/model"
	feedbackDto "hms/internal/domains/feedback/model/dto"
	feedbackRepo "hms/internal/domains/feedback/repository"
	"hms/internal/domains/hospital/model"
	"hms/internal/domains/hospital/model/dto"
	"hms/internal/domains/hospital/repository"
	"hms/internal/domains/icu/availability"
	userModel "hms/internal/domains/user/model"
	userRepo "hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/geo"
	"hms/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHospital    = "hospital:get"
	cacheGetAllHospital = "hospital:gets"
	cacheCountHospital  = "hospital:count"
	cacheRatings        = "hospital:ratings"
)

type Hospital interface {
	Create(ctx context.Context, req dto.CreateHospitalRequest) (dto.HospitalResponse, error)
	// GetAll orders by distance from origin when origin is set.
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, origin *geo.Point) (dto.GetHospitalsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HospitalDetailResponse, error)
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
	AssignManager(ctx context.Context, id string, req dto.AssignManagerRequest) error
	AssignBackupManager(ctx context.Context, id string, req dto.AssignManagerRequest) error
	Delete(ctx context.Context, id string) error
	GetRatings(ctx context.Context) ([]dto.RatingResponse, error)
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.ImageResponse, error)
}

type serviceImpl struct {
	repo         repository.Hospital
	feedbackRepo feedbackRepo.Feedback
	userRepo     userRepo.User
	availability availability.Notifier
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(
	repo repository.Hospital,
	feedbackRepo feedbackRepo.Feedback,
	userRepo userRepo.User,
	availability availability.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Hospital {
	return &serviceImpl{
		repo:         repo,
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		availability: availability,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHospitalRequest) (res dto.HospitalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hospital := req.ToModel(shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, hospital); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString("hospital email is already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert hospital")

		return res, fmt.Errorf("failed to insert hospital: %w", err)
	}

	s.invalidateLists(ctx, constant.Empty)

	res.FromModel(hospital)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, origin *geo.Point) (res dto.GetHospitalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if origin != nil {
		return s.getNearest(ctx, req, filter, *origin)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHospital, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hospitals")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count hospitals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hospitals")

		return res, fmt.Errorf("failed to get hospitals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hospitals to cache")
		}
	}()

	return res, nil
}

// getNearest loads every match, ranks it in memory and pages the result.
func (s *serviceImpl) getNearest(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, origin geo.Point) (res dto.GetHospitalsResponse, err error) {
	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hospitals")

		return res, fmt.Errorf("failed to get hospitals: %w", err)
	}

	res.FromRanked(geo.SortByDistance(origin, models, s.cfg.Geo.MaxRadiusKM), req)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHospital, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hospitals")

		return res, fmt.Errorf("failed to count hospitals: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hospital count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HospitalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHospital, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hospital")

		return res, nil
	}

	hospital, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	feedbacks, err := s.feedbackRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  feedbackModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, gDto.And(gDto.Eq(feedbackModel.TableName, feedbackModel.FieldHospitalID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hospital feedbacks")

		return res, fmt.Errorf("failed to get hospital feedbacks: %w", err)
	}

	res.FromModel(hospital)
	res.Feedbacks = feedbackDto.FromModels(feedbacks)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hospital to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Block(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Block")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, map[string]any{model.FieldStatus: model.StatusBlocked})
}

func (s *serviceImpl) Unblock(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unblock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, map[string]any{model.FieldStatus: model.StatusActive})
}

func (s *serviceImpl) AssignManager(ctx context.Context, id string, req dto.AssignManagerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignManager")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureManager(ctx, req.ManagerID); err != nil {
		return err
	}

	return s.update(ctx, id, map[string]any{model.FieldAssignedManager: req.ManagerID})
}

func (s *serviceImpl) AssignBackupManager(ctx context.Context, id string, req dto.AssignManagerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignBackupManager")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureManager(ctx, req.ManagerID); err != nil {
		return err
	}

	return s.update(ctx, id, map[string]any{model.FieldBackupManager: req.ManagerID})
}

func (s *serviceImpl) ensureManager(ctx context.Context, managerID string) error {
	exist, err := s.userRepo.Exist(ctx, gDto.And(
		gDto.Eq(userModel.TableName, userModel.FieldID, managerID),
		gDto.Eq(userModel.TableName, userModel.FieldRole, constant.RoleManager),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check manager existence")

		return fmt.Errorf("failed to check manager existence: %w", err)
	}

	if !exist {
		return failure.NotFound("Manager not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hospital, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hospital")

		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	// The hospital's ICU rooms went with it.
	s.availability.Notify()

	if key := s.s3.ObjectKeyFromURL(hospital.Image); key != constant.Empty {
		go func() {
			if err := s.s3.Delete(context.WithoutCancel(ctx), key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to delete hospital image")
			}
		}()
	}

	s.invalidateLists(ctx, id)

	return nil
}

func (s *serviceImpl) GetRatings(ctx context.Context) (res []dto.RatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRatings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheRatings, &res); err == nil {
		return res, nil
	}

	ratings, err := s.repo.GetRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get hospital ratings: %w", err)
	}

	res = dto.FromRatings(ratings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRatings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hospital ratings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hospital, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	data, err := io.ReadAll(req.ImageFile)
	if err != nil {
		return res, fmt.Errorf("failed to read image: %w", err)
	}

	object := s3.Object{
		Directory:   model.EntityName,
		Name:        uuid.NewString() + strings.ToLower(filepath.Ext(req.Image.Filename)),
		ContentType: req.Image.Header.Get(constant.RequestHeaderContentType),
		Data:        data,
	}

	url, err := s.s3.Upload(ctx, object)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hospital image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	if err = s.update(ctx, id, map[string]any{model.FieldImage: url}); err != nil {
		if delErr := s.s3.Delete(ctx, object.Key()); delErr != nil {
			log.Warn().Err(delErr).Str("key", object.Key()).Msg("failed to remove orphaned image")
		}

		return res, err
	}

	if oldKey := s.s3.ObjectKeyFromURL(hospital.Image); oldKey != constant.Empty {
		if err := s.s3.Delete(ctx, oldKey); err != nil {
			log.Warn().Err(err).Str("key", oldKey).Msg("failed to delete previous hospital image")
		}
	}

	res.Image = url

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Hospital, error) {
	hospital, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hospital")

		return hospital, fmt.Errorf("failed to get hospital: %w", err)
	}

	if hospital.ID == constant.Empty {
		return hospital, failure.NotFound("Hospital not found") //nolint:wrapcheck
	}

	return hospital, nil
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hospital existence")

		return fmt.Errorf("failed to check hospital existence: %w", err)
	}

	if !exist {
		return failure.NotFound("Hospital not found") //nolint:wrapcheck
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = shared.ActorFromContext(ctx)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hospital")

		return fmt.Errorf("failed to update hospital: %w", err)
	}

	s.invalidateLists(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHospital, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete hospital cache")
			}
		}

		if err := s.cache.Delete(c, cacheRatings); err != nil {
			log.Error().Err(err).Msg("failed to delete hospital ratings cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHospital)
		shared.InvalidateCaches(c, s.cache, cacheCountHospital)
	}()
}
