package vacation

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/vacation/model/dto"
	"hms/internal/domains/vacation/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vacation
	otel    otel.Otel
}

func New(service service.Vacation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vacations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RequestVacation)
		routerGroup.Get("/", handler.GetVacations)
		routerGroup.Patch("/{id}", handler.DecideVacation)
	})
}

// RequestVacation files a vacation for the caller.
// @Summary Request a vacation
// @Tags Vacation
// @Accept json
// @Produce json
// @Param request body dto.CreateVacationRequest true "Create Vacation Request"
// @Success 201 {object} dto.VacationResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vacations [post]
// @Security BearerAuth
func (handler *Handler) RequestVacation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestVacation")
	defer scope.End()

	req := dto.CreateVacationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Request(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request vacation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVacations lists vacations, optionally by status.
// @Summary Get vacations
// @Tags Vacation
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetVacationsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vacations [get]
// @Security BearerAuth
func (handler *Handler) GetVacations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVacations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vacations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DecideVacation approves or rejects a pending vacation.
// @Summary Decide a vacation
// @Tags Vacation
// @Accept json
// @Produce json
// @Param id path string true "Vacation ID"
// @Param request body dto.DecideVacationRequest true "Decide Vacation Request"
// @Success 200 {object} dto.VacationResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/vacations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) DecideVacation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideVacation")
	defer scope.End()

	req := dto.DecideVacationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Decide(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide vacation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
