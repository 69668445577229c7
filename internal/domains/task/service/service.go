package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"hms/infras/otel"
	"hms/internal/domains/task/model"
	"hms/internal/domains/task/model/dto"
	"hms/internal/domains/task/repository"
	userModel "hms/internal/domains/user/model"
	userRepo "hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

// AssignableRoles are the staff roles that can receive tasks.
var AssignableRoles = []string{constant.RoleNurse, constant.RoleCleaner, constant.RoleReceptionist}

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	GetByRole(ctx context.Context, params gDto.QueryParams, role string) (dto.GetTasksResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetTasksResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateTaskStatusRequest) (dto.TaskResponse, error)
}

type serviceImpl struct {
	repo     repository.Task
	userRepo userRepo.User
	otel     otel.Otel
}

func New(repo repository.Task, userRepo userRepo.User, otel otel.Otel) Task {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := s.userRepo.Get(ctx, shared.FilterByID(req.EmployeeID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty || !slices.Contains(AssignableRoles, employee.Role) {
		return res, failure.NotFound("Employee not found or is not eligible for tasks") //nolint:wrapcheck
	}

	task := req.ToModel(shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to insert task")

		return res, fmt.Errorf("failed to insert task: %w", err)
	}

	task.EmployeeName = employee.UserName
	task.EmployeeRole = employee.Role
	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) GetByRole(ctx context.Context, params gDto.QueryParams, role string) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if role != constant.Empty {
		if !slices.Contains(AssignableRoles, role) {
			return res, failure.BadRequestFromString("role does not take tasks") //nolint:wrapcheck
		}

		filter = gDto.And(gDto.Eq(userModel.TableName, userModel.FieldRole, role))
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, gDto.And(gDto.Eq(model.TableName, model.FieldEmployeeID, shared.ActorFromContext(ctx))))
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tasks")

		return res, fmt.Errorf("failed to count tasks: %w", err)
	}

	params.SortBy = model.TableName + "." + model.FieldDeadline
	params.SortDir = gDto.SortDirAsc

	tasks, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res.FromModels(tasks, total, params.Limit)

	return res, nil
}

// UpdateStatus is open to the assignee and to managers.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateTaskStatusRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	task, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get task")

		return res, fmt.Errorf("failed to get task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("Task not found") //nolint:wrapcheck
	}

	actor := shared.ActorFromContext(ctx)
	role := shared.RoleFromContext(ctx)

	if task.EmployeeID != actor && role != constant.RoleManager && role != constant.RoleAdmin {
		return res, failure.Forbidden("task is assigned to another employee") //nolint:wrapcheck
	}

	now := timezone.Now()

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update task status")

		return res, fmt.Errorf("failed to update task status: %w", err)
	}

	task.Status = req.Status
	task.ModifiedAt = now
	task.ModifiedBy = actor
	res.FromModel(task)

	return res, nil
}
