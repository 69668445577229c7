package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	hospitalModel "hms/internal/domains/hospital/model"
	hospitalRepo "hms/internal/domains/hospital/repository"
	"hms/internal/domains/icu/availability"
	"hms/internal/domains/icu/model"
	"hms/internal/domains/icu/model/dto"
	"hms/internal/domains/icu/repository"
	userModel "hms/internal/domains/user/model"
	userRepo "hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/audit"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/geo"
	gRepo "hms/shared/repository"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	errICUNotFound       = "ICU not found"
	errICUNotAvailable   = "ICU is not available for reservation"
	errICUNotOccupied    = "ICU is not occupied"
	errICUNotToBeCleaned = "ICU is not waiting to be cleaned"
	errICUNotCleaned     = "ICU has not been cleaned"
	errICUChanged        = "ICU was modified by another request, please retry"
)

type ICU interface {
	Register(ctx context.Context, req dto.RegisterICURequest) (dto.ICUResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetICUsResponse, error)
	Get(ctx context.Context, id string) (dto.ICUResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateICURequest) error
	Delete(ctx context.Context, id string) error
	// GetAvailableNear lists Available ICUs nearest first.
	GetAvailableNear(ctx context.Context, origin geo.Point) ([]dto.AvailableICUResponse, error)
	Reserve(ctx context.Context, req dto.ReserveICURequest) (dto.ICUResponse, error)
	Vacate(ctx context.Context, id string) (dto.ICUResponse, error)
	GetToBeCleaned(ctx context.Context, req gDto.QueryParams) (dto.GetICUsResponse, error)
	MarkCleaned(ctx context.Context, id string) (dto.ICUResponse, error)
	Release(ctx context.Context, id string) (dto.ICUResponse, error)
}

type serviceImpl struct {
	repo         repository.ICU
	hospitalRepo hospitalRepo.Hospital
	userRepo     userRepo.User
	availability availability.Notifier
	audit        audit.Publisher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.ICU,
	hospitalRepo hospitalRepo.Hospital,
	userRepo userRepo.User,
	availability availability.Notifier,
	audit audit.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) ICU {
	return &serviceImpl{
		repo:         repo,
		hospitalRepo: hospitalRepo,
		userRepo:     userRepo,
		availability: availability,
		audit:        audit,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterICURequest) (res dto.ICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Specialization == constant.Empty || req.Status == constant.Empty {
		return res, failure.BadRequestFromString("Specialization and status are required") //nolint:wrapcheck
	}

	hospital, err := s.hospitalRepo.Get(ctx, shared.FilterByID(req.HospitalID, hospitalModel.FieldID, hospitalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hospital")

		return res, fmt.Errorf("failed to get hospital: %w", err)
	}

	if hospital.ID == constant.Empty {
		return res, failure.NotFound("Hospital not found") //nolint:wrapcheck
	}

	icu := req.ToModel(shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, icu); err != nil {
		log.Error().Err(err).Msg("failed to insert icu")

		return res, fmt.Errorf("failed to insert icu: %w", err)
	}

	icu.HospitalName = hospital.Name
	icu.HospitalAddress = hospital.Address
	icu.HospitalLongitude = hospital.Longitude
	icu.HospitalLatitude = hospital.Latitude

	s.availability.Notify()

	res.FromModel(icu)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetICUsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count icus")

		return res, fmt.Errorf("failed to count icus: %w", err)
	}

	icus, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get icus")

		return res, fmt.Errorf("failed to get icus: %w", err)
	}

	res.FromModels(icus, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	icu, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(icu)

	return res, nil
}

// Update edits an ICU outside the reservation flow. It never occupies a room
// and drops the reservation when an occupied room changes status.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateICURequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status == model.StatusOccupied {
		return failure.BadRequestFromString("ICU can only become Occupied through a reservation") //nolint:wrapcheck
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, shared.ActorFromContext(ctx))
	if req.Status != constant.Empty && current.Status == model.StatusOccupied {
		fields[model.FieldIsReserved] = false
		fields[model.FieldReservedBy] = nil
	}

	affected, err := s.repo.CompareAndSet(ctx, fields, repository.WithStatus(shared.FilterByID(id, model.FieldID, model.TableName), current.Status))
	if err != nil {
		log.Error().Err(err).Msg("failed to update icu")

		return fmt.Errorf("failed to update icu: %w", err)
	}

	if affected == 0 {
		return failure.BadRequestFromString(errICUChanged) //nolint:wrapcheck
	}

	s.availability.Notify()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check icu existence")

		return fmt.Errorf("failed to check icu existence: %w", err)
	}

	if !exist {
		return failure.NotFound(errICUNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete icu")

		return fmt.Errorf("failed to delete icu: %w", err)
	}

	s.availability.Notify()

	return nil
}

func (s *serviceImpl) GetAvailableNear(ctx context.Context, origin geo.Point) (res []dto.AvailableICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableNear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	icus, err := s.available(ctx)
	if err != nil {
		return nil, err
	}

	return dto.FromRanked(geo.SortByDistance(origin, icus, s.cfg.Geo.MaxRadiusKM)), nil
}

// Reserve occupies an Available ICU for a user. The status check and the
// write are one statement, so of two concurrent reservations only one wins.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveICURequest) (res dto.ICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, req.ICUID); err != nil {
		return res, err
	}

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return res, fmt.Errorf("failed to check user existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	icu, err := s.transition(ctx, req.ICUID, model.StatusAvailable, map[string]any{
		model.FieldStatus:     model.StatusOccupied,
		model.FieldIsReserved: true,
		model.FieldReservedBy: req.UserID,
	}, errICUNotAvailable)
	if err != nil {
		return res, err
	}

	s.audit.Record(ctx, audit.Event{
		Type:       audit.EventICUReserved,
		ResourceID: icu.ID,
		HospitalID: icu.HospitalID,
		UserID:     req.UserID,
		Fee:        icu.Fees,
		OccurredAt: timezone.Now(),
	})

	res.FromModel(icu)

	return res, nil
}

func (s *serviceImpl) Vacate(ctx context.Context, id string) (res dto.ICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Vacate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	icu, err := s.transition(ctx, id, model.StatusOccupied, map[string]any{
		model.FieldStatus:     model.StatusToBeCleaned,
		model.FieldIsReserved: false,
		model.FieldReservedBy: nil,
	}, errICUNotOccupied)
	if err != nil {
		return res, err
	}

	res.FromModel(icu)

	return res, nil
}

func (s *serviceImpl) GetToBeCleaned(ctx context.Context, req gDto.QueryParams) (res dto.GetICUsResponse, err error) {
	return s.GetAll(ctx, req, gDto.And(gDto.Eq(model.TableName, model.FieldStatus, model.StatusToBeCleaned)))
}

func (s *serviceImpl) MarkCleaned(ctx context.Context, id string) (res dto.ICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCleaned")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	icu, err := s.transition(ctx, id, model.StatusToBeCleaned, map[string]any{
		model.FieldStatus: model.StatusCleaned,
	}, errICUNotToBeCleaned)
	if err != nil {
		return res, err
	}

	res.FromModel(icu)

	return res, nil
}

func (s *serviceImpl) Release(ctx context.Context, id string) (res dto.ICUResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	icu, err := s.transition(ctx, id, model.StatusCleaned, map[string]any{
		model.FieldStatus: model.StatusAvailable,
	}, errICUNotCleaned)
	if err != nil {
		return res, err
	}

	res.FromModel(icu)

	return res, nil
}

// transition moves an ICU from status from by applying mod in a single
// conditional update. A room that is gone reports NotFound; one in any other
// status reports conflict. Success is broadcast once. The room is read back
// from the primary so the response never predates the write.
func (s *serviceImpl) transition(ctx context.Context, id string, from model.Status, mod map[string]any, conflict string) (model.ICU, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	mod[constant.FieldModifiedAt] = timezone.Now()
	mod[constant.FieldModifiedBy] = shared.ActorFromContext(ctx)

	affected, err := s.repo.CompareAndSet(ctx, mod, repository.WithStatus(filter, from))
	if err != nil {
		log.Error().Err(err).Str("icu", id).Msg("failed to update icu status")

		return model.ICU{}, fmt.Errorf("failed to update icu status: %w", err)
	}

	if affected > 0 {
		s.availability.Notify()
	}

	icu, err := s.find(gRepo.WithPrimary(ctx), id)
	if err != nil {
		return icu, err
	}

	if affected == 0 {
		log.Info().Str("icu", id).Str("status", string(icu.Status)).Str("expected", string(from)).Msg("icu status transition rejected")

		return model.ICU{}, failure.BadRequestFromString(conflict) //nolint:wrapcheck
	}

	return icu, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.ICU, error) {
	icu, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get icu")

		return icu, fmt.Errorf("failed to get icu: %w", err)
	}

	if icu.ID == constant.Empty {
		return icu, failure.NotFound(errICUNotFound) //nolint:wrapcheck
	}

	return icu, nil
}

func (s *serviceImpl) available(ctx context.Context) ([]model.ICU, error) {
	params, filter := repository.Available()

	icus, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available icus")

		return nil, fmt.Errorf("failed to get available icus: %w", err)
	}

	return icus, nil
}
