package task

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/task/model/dto"
	"hms/internal/domains/task/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Task
	otel    otel.Otel
}

func New(service service.Task, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tasks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasksByRole)
		routerGroup.Get("/mine", handler.GetMyTasks)
		routerGroup.Patch("/{id}/status", handler.UpdateTaskStatus)
	})
}

// CreateTask assigns a task to an employee.
// @Summary Create a task
// @Description The employee must be a Nurse, Cleaner or Receptionist.
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task created")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTasksByRole lists the tasks of every employee with a role.
// @Summary Get tasks by role
// @Tags Task
// @Produce json
// @Param role query string true "Nurse, Cleaner or Receptionist"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetTasksResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks [get]
// @Security BearerAuth
func (handler *Handler) GetTasksByRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasksByRole")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetByRole(ctx, queryParams, r.URL.Query().Get(constant.RequestParamRole))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMyTasks lists the tasks assigned to the caller.
// @Summary Get my tasks
// @Tags Task
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetTasksResponse
// @Failure 500 {object} response.Error
// @Router /v1/tasks/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTaskStatus moves a task to another status.
// @Summary Update task status
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "Update Task Status Request"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tasks/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaskStatus")
	defer scope.End()

	req := dto.UpdateTaskStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update task status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
