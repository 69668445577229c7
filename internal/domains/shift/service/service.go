package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/internal/domains/shift/model"
	"hms/internal/domains/shift/model/dto"
	"hms/internal/domains/shift/repository"
	userModel "hms/internal/domains/user/model"
	userRepo "hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"

	"github.com/rs/zerolog/log"
)

type Shift interface {
	Create(ctx context.Context, req dto.CreateShiftRequest) (dto.ShiftResponse, error)
	// GetSchedule lists the shifts of an employee, earliest first. Nurses
	// may only read their own schedule.
	GetSchedule(ctx context.Context, employeeID string) ([]dto.ShiftResponse, error)
}

type serviceImpl struct {
	repo     repository.Shift
	userRepo userRepo.User
	otel     otel.Otel
}

func New(repo repository.Shift, userRepo userRepo.User, otel otel.Otel) Shift {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateShiftRequest) (res dto.ShiftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.EndTime.After(req.StartTime) {
		return res, failure.BadRequestFromString("endTime must be after startTime") //nolint:wrapcheck
	}

	employee, err := s.employee(ctx, req.EmployeeID)
	if err != nil {
		return res, err
	}

	shift := req.ToModel(shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, shift); err != nil {
		log.Error().Err(err).Msg("failed to insert shift")

		return res, fmt.Errorf("failed to insert shift: %w", err)
	}

	shift.EmployeeName = employee.UserName
	res.FromModel(shift)

	return res, nil
}

func (s *serviceImpl) GetSchedule(ctx context.Context, employeeID string) (res []dto.ShiftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSchedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.RoleFromContext(ctx) == constant.RoleNurse && shared.ActorFromContext(ctx) != employeeID {
		return nil, failure.Forbidden("nurses can only view their own schedule") //nolint:wrapcheck
	}

	if _, err = s.employee(ctx, employeeID); err != nil {
		return nil, err
	}

	shifts, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}, gDto.And(gDto.Eq(model.TableName, model.FieldEmployeeID, employeeID)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shifts")

		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	return dto.FromModels(shifts), nil
}

func (s *serviceImpl) employee(ctx context.Context, id string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return user, fmt.Errorf("failed to get employee: %w", err)
	}

	if user.ID == constant.Empty || user.Role == constant.RolePatient {
		return user, failure.NotFound("Employee not found") //nolint:wrapcheck
	}

	return user, nil
}
