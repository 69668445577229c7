package shift

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/shift/model/dto"
	"hms/internal/domains/shift/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Shift
	otel    otel.Otel
}

func New(service service.Shift, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/shifts", handler.CreateShift)
	router.Get("/nurses/{id}/schedule", handler.GetSchedule)
}

// CreateShift schedules a shift for an employee.
// @Summary Create a shift
// @Description Break time defaults to 30 mins.
// @Tags Shift
// @Accept json
// @Produce json
// @Param request body dto.CreateShiftRequest true "Create Shift Request"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shifts [post]
// @Security BearerAuth
func (handler *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShift")
	defer scope.End()

	req := dto.CreateShiftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create shift")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSchedule lists an employee's shifts.
// @Summary Get a schedule
// @Tags Shift
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {array} dto.ShiftResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/nurses/{id}/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	res, err := handler.service.GetSchedule(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
