package icu

import (
	"context"
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/icu/model"
	"hms/internal/domains/icu/model/dto"
	"hms/internal/domains/icu/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/geo"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ICU
	otel    otel.Otel
}

func New(service service.ICU, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/icus", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterICU)
		routerGroup.Get("/", handler.GetICUs)
		routerGroup.Get("/available", handler.GetAvailableICUs)
		routerGroup.Get("/to-be-cleaned", handler.GetToBeCleaned)
		routerGroup.Post("/reserve", handler.ReserveICU)
		routerGroup.Get("/{id}", handler.GetICUByID)
		routerGroup.Patch("/{id}", handler.UpdateICU)
		routerGroup.Delete("/{id}", handler.DeleteICU)
		routerGroup.Patch("/{id}/vacate", handler.VacateICU)
		routerGroup.Patch("/{id}/clean", handler.CleanICU)
		routerGroup.Patch("/{id}/release", handler.ReleaseICU)
	})
}

// RegisterICU handles the registration of a new ICU.
// @Summary Register an ICU
// @Description Register an ICU under a hospital. Fees default to 100.
// @Tags ICU
// @Accept json
// @Produce json
// @Param request body dto.RegisterICURequest true "Register ICU Request"
// @Success 201 {object} dto.ICUResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus [post]
// @Security BearerAuth
func (handler *Handler) RegisterICU(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterICU")
	defer scope.End()

	req := dto.RegisterICURequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register icu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("ICU registered")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetICUs lists ICUs.
// @Summary Get ICUs
// @Tags ICU
// @Produce json
// @Param hospitalId query string false "Hospital ID"
// @Param specialization query string false "Specialization"
// @Param status query string false "Status"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetICUsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus [get]
// @Security BearerAuth
func (handler *Handler) GetICUs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetICUs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldFees, constant.FieldCreatedAt)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if hospitalID := query.Get(constant.RequestParamHospitalID); hospitalID != "" {
		filterGroup.Add(gDto.Eq(model.TableName, model.FieldHospitalID, hospitalID))
	}

	if specialization := query.Get(constant.RequestParamSpecialization); specialization != "" {
		if !model.Specialization(specialization).IsValid() {
			response.WithError(w, failure.BadRequestFromString("specialization is not supported"))

			return
		}

		filterGroup.Add(gDto.Eq(model.TableName, model.FieldSpecialization, specialization))
	}

	if status := query.Get(constant.RequestParamStatus); status != "" {
		if !model.Status(status).IsValid() {
			response.WithError(w, failure.BadRequestFromString("status is not supported"))

			return
		}

		filterGroup.Add(gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get icus")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailableICUs lists Available ICUs nearest first.
// @Summary Get available ICUs near a location
// @Description Available ICUs ordered by distance, limited to GEO_MAX_RADIUS_KM when set.
// @Tags ICU
// @Produce json
// @Param location query string true "longitude,latitude"
// @Success 200 {array} dto.AvailableICUResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableICUs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableICUs")
	defer scope.End()

	raw := r.URL.Query().Get(constant.RequestParamLocation)
	if raw == "" {
		raw = r.URL.Query().Get(constant.RequestParamUserLocation)
	}

	origin, err := geo.ParseLocation(raw)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	res, err := handler.service.GetAvailableNear(ctx, origin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available icus")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetToBeCleaned lists ICUs waiting for cleaning.
// @Summary Get ICUs to be cleaned
// @Tags ICU
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetICUsResponse
// @Failure 500 {object} response.Error
// @Router /v1/icus/to-be-cleaned [get]
// @Security BearerAuth
func (handler *Handler) GetToBeCleaned(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetToBeCleaned")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, constant.FieldCreatedAt)

	res, err := handler.service.GetToBeCleaned(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get icus to be cleaned")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReserveICU reserves an Available ICU for a patient.
// @Summary Reserve an ICU
// @Description Atomically moves the ICU from Available to Occupied. Of concurrent reservations of one ICU exactly one wins.
// @Tags ICU
// @Accept json
// @Produce json
// @Param request body dto.ReserveICURequest true "Reserve ICU Request"
// @Success 200 {object} dto.ICUResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus/reserve [post]
// @Security BearerAuth
func (handler *Handler) ReserveICU(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReserveICU")
	defer scope.End()

	req := dto.ReserveICURequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("icu_id", req.ICUID).Msg("failed to reserve icu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("ICU reserved")

	response.WithJSON(w, http.StatusOK, res)
}

// GetICUByID returns a single ICU.
// @Summary Get an ICU by ID
// @Tags ICU
// @Produce json
// @Param id path string true "ICU ID"
// @Success 200 {object} dto.ICUResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetICUByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetICUByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get icu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateICU updates specialization, status or fees.
// @Summary Update an ICU
// @Description Status Occupied can only be reached through a reservation.
// @Tags ICU
// @Accept json
// @Produce json
// @Param id path string true "ICU ID"
// @Param request body dto.UpdateICURequest true "Update ICU Request"
// @Success 200 {object} response.Message "ICU updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateICU(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateICU")
	defer scope.End()

	req := dto.UpdateICURequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update icu")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "ICU updated successfully")
}

// DeleteICU removes an ICU.
// @Summary Delete an ICU
// @Tags ICU
// @Produce json
// @Param id path string true "ICU ID"
// @Success 200 {object} response.Message "ICU deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/icus/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteICU(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteICU")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete icu")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "ICU deleted successfully")
}

// VacateICU moves an Occupied ICU to To Be Cleaned.
// @Summary Vacate an ICU
// @Tags ICU
// @Produce json
// @Param id path string true "ICU ID"
// @Success 200 {object} dto.ICUResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/icus/{id}/vacate [patch]
// @Security BearerAuth
func (handler *Handler) VacateICU(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "VacateICU", handler.service.Vacate)
}

// CleanICU moves a To Be Cleaned ICU to Cleaned.
// @Summary Mark an ICU as cleaned
// @Tags ICU
// @Produce json
// @Param id path string true "ICU ID"
// @Success 200 {object} dto.ICUResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/icus/{id}/clean [patch]
// @Security BearerAuth
func (handler *Handler) CleanICU(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CleanICU", handler.service.MarkCleaned)
}

// ReleaseICU moves a Cleaned ICU back to Available.
// @Summary Release an ICU
// @Tags ICU
// @Produce json
// @Param id path string true "ICU ID"
// @Success 200 {object} dto.ICUResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/icus/{id}/release [patch]
// @Security BearerAuth
func (handler *Handler) ReleaseICU(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ReleaseICU", handler.service.Release)
}

func (handler *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	move func(ctx context.Context, id string) (dto.ICUResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := move(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("icu_id", id).Str("op", op).Msg("failed to move icu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
