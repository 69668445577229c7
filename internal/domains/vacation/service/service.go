package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/internal/domains/vacation/model"
	"hms/internal/domains/vacation/model/dto"
	"hms/internal/domains/vacation/repository"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Vacation interface {
	// Request files a vacation for the calling employee.
	Request(ctx context.Context, req dto.CreateVacationRequest) (dto.VacationResponse, error)
	Decide(ctx context.Context, id string, req dto.DecideVacationRequest) (dto.VacationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetVacationsResponse, error)
}

type serviceImpl struct {
	repo repository.Vacation
	otel otel.Otel
}

func New(repo repository.Vacation, otel otel.Otel) Vacation {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Request(ctx context.Context, req dto.CreateVacationRequest) (res dto.VacationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Request")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.EndDate.Before(req.StartDate) {
		return res, failure.BadRequestFromString("endDate must not be before startDate") //nolint:wrapcheck
	}

	if shared.RoleFromContext(ctx) == constant.RolePatient {
		return res, failure.Forbidden("only employees can request vacations") //nolint:wrapcheck
	}

	vacation := req.ToModel(shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, vacation); err != nil {
		log.Error().Err(err).Msg("failed to insert vacation")

		return res, fmt.Errorf("failed to insert vacation: %w", err)
	}

	res.FromModel(vacation)

	return res, nil
}

// Decide approves or rejects a pending request. A request is decided once.
func (s *serviceImpl) Decide(ctx context.Context, id string, req dto.DecideVacationRequest) (res dto.VacationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status == model.StatusPending {
		return res, failure.BadRequestFromString("status must be Approved or Rejected") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	vacation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vacation")

		return res, fmt.Errorf("failed to get vacation: %w", err)
	}

	if vacation.ID == constant.Empty {
		return res, failure.NotFound("Vacation not found") //nolint:wrapcheck
	}

	now := timezone.Now()
	actor := shared.ActorFromContext(ctx)

	affected, err := s.repo.CompareAndSet(ctx, map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}, repository.Pending(filter))
	if err != nil {
		log.Error().Err(err).Msg("failed to decide vacation")

		return res, fmt.Errorf("failed to decide vacation: %w", err)
	}

	if affected == 0 {
		return res, failure.BadRequestFromString("vacation has already been decided") //nolint:wrapcheck
	}

	vacation.Status = req.Status
	vacation.ModifiedAt = now
	vacation.ModifiedBy = actor
	res.FromModel(vacation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetVacationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if status != constant.Empty {
		if !model.Status(status).IsValid() {
			return res, failure.BadRequestFromString("unknown vacation status") //nolint:wrapcheck
		}

		filter = gDto.And(gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vacations")

		return res, fmt.Errorf("failed to count vacations: %w", err)
	}

	params.SortBy = model.TableName + "." + model.FieldStartDate
	params.SortDir = gDto.SortDirAsc

	vacations, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vacations")

		return res, fmt.Errorf("failed to get vacations: %w", err)
	}

	res.FromModels(vacations, total, params.Limit)

	return res, nil
}
