package visitorroom

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/visitorroom/model"
	"hms/internal/domains/visitorroom/model/dto"
	"hms/internal/domains/visitorroom/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.VisitorRoom
	otel    otel.Otel
}

func New(service service.VisitorRoom, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visitor-rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVisitorRoom)
		routerGroup.Get("/", handler.GetVisitorRooms)
		routerGroup.Post("/reserve", handler.ReserveRoom)
		routerGroup.Post("/kids-area/reserve", handler.ReserveKidsArea)
		routerGroup.Get("/{id}", handler.GetVisitorRoomByID)
		routerGroup.Get("/{id}/history", handler.GetHistory)
		routerGroup.Post("/{id}/release", handler.ReleaseRoom)
	})
}

// CreateVisitorRoom handles the creation of a visitor room.
// @Summary Create a visitor room
// @Description Rooms start Available. Fees default to 200. Room numbers are unique.
// @Tags VisitorRoom
// @Accept json
// @Produce json
// @Param request body dto.CreateVisitorRoomRequest true "Create Visitor Room Request"
// @Success 201 {object} dto.VisitorRoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateVisitorRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVisitorRoom")
	defer scope.End()

	req := dto.CreateVisitorRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create visitor room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Visitor room created")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVisitorRooms lists visitor rooms.
// @Summary Get visitor rooms
// @Tags VisitorRoom
// @Produce json
// @Param hospitalId query string false "Hospital ID"
// @Param roomType query string false "Normal Room or Kids Area"
// @Param status query string false "Available or Reserved"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetVisitorRoomsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-rooms [get]
// @Security BearerAuth
func (handler *Handler) GetVisitorRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitorRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldRoomNumber, model.FieldFees, constant.FieldCreatedAt)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if hospitalID := query.Get(constant.RequestParamHospitalID); hospitalID != "" {
		filterGroup.Add(gDto.Eq(model.TableName, model.FieldHospitalID, hospitalID))
	}

	if roomType := query.Get(constant.RequestParamRoomType); roomType != "" {
		if !model.RoomType(roomType).IsValid() {
			response.WithError(w, failure.BadRequestFromString("roomType must be Normal Room or Kids Area"))

			return
		}

		filterGroup.Add(gDto.Eq(model.TableName, model.FieldRoomType, roomType))
	}

	if status := query.Get(constant.RequestParamStatus); status != "" {
		if !model.Status(status).IsValid() {
			response.WithError(w, failure.BadRequestFromString("status must be Available or Reserved"))

			return
		}

		filterGroup.Add(gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReserveRoom reserves a normal visitor room.
// @Summary Reserve a visitor room
// @Description Charges the room fee to the user. Fails with 400 when the room is not Available.
// @Tags VisitorRoom
// @Accept json
// @Produce json
// @Param request body dto.ReserveRoomRequest true "Reserve Room Request"
// @Success 200 {object} dto.VisitorRoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-rooms/reserve [post]
// @Security BearerAuth
func (handler *Handler) ReserveRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReserveRoom")
	defer scope.End()

	req := dto.ReserveRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to reserve visitor room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReserveKidsArea books a kids area time slot.
// @Summary Reserve a kids area
// @Tags VisitorRoom
// @Accept json
// @Produce json
// @Param request body dto.ReserveKidsAreaRequest true "Reserve Kids Area Request"
// @Success 200 {object} dto.VisitorRoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-rooms/kids-area/reserve [post]
// @Security BearerAuth
func (handler *Handler) ReserveKidsArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReserveKidsArea")
	defer scope.End()

	req := dto.ReserveKidsAreaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReserveKidsArea(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to reserve kids area")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVisitorRoomByID returns a single visitor room.
// @Summary Get a visitor room by ID
// @Tags VisitorRoom
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.VisitorRoomResponse
// @Failure 404 {object} response.Error
// @Router /v1/visitor-rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetVisitorRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitorRoomByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHistory lists the reservations of a room, newest first.
// @Summary Get reservation history
// @Tags VisitorRoom
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} dto.ReservationResponse
// @Failure 404 {object} response.Error
// @Router /v1/visitor-rooms/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	res, err := handler.service.GetHistory(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReleaseRoom makes a Reserved room Available again.
// @Summary Release a visitor room
// @Tags VisitorRoom
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.VisitorRoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/visitor-rooms/{id}/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseRoom")
	defer scope.End()

	res, err := handler.service.Release(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release visitor room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
