package hospital

import (
	"context"
	"net/http"

	"hms/infras/otel"
	feedbackDto "hms/internal/domains/feedback/model/dto"
	feedbackService "hms/internal/domains/feedback/service"
	"hms/internal/domains/hospital/model"
	"hms/internal/domains/hospital/model/dto"
	"hms/internal/domains/hospital/service"
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
	service  service.Hospital
	feedback feedbackService.Feedback
	otel     otel.Otel
}

func New(service service.Hospital, feedback feedbackService.Feedback, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		feedback: feedback,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hospitals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHospital)
		routerGroup.Get("/", handler.GetHospitals)
		routerGroup.Get("/ratings", handler.GetRatings)
		routerGroup.Get("/{id}", handler.GetHospitalByID)
		routerGroup.Delete("/{id}", handler.DeleteHospital)
		routerGroup.Patch("/{id}/block", handler.BlockHospital)
		routerGroup.Patch("/{id}/unblock", handler.UnblockHospital)
		routerGroup.Patch("/{id}/manager", handler.AssignManager)
		routerGroup.Patch("/{id}/backup-manager", handler.AssignBackupManager)
		routerGroup.Post("/{id}/image", handler.UploadImage)
		routerGroup.Post("/{id}/feedbacks", handler.CreateFeedback)
	})
}

// CreateHospital handles the creation of a new hospital.
// @Summary Create a new hospital
// @Description Create an Active hospital at the given coordinates.
// @Tags Hospital
// @Accept json
// @Produce json
// @Param request body dto.CreateHospitalRequest true "Create Hospital Request"
// @Success 201 {object} dto.HospitalResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hospitals [post]
// @Security BearerAuth
func (handler *Handler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHospital")
	defer scope.End()

	req := dto.CreateHospitalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hospital")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hospital created")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetHospitals lists hospitals.
// @Summary Get hospitals
// @Description Paginated hospitals. With location the list is ordered nearest first and carries distances.
// @Tags Hospital
// @Produce json
// @Param name query string false "Filter by name"
// @Param status query string false "Active or Blocked"
// @Param location query string false "longitude,latitude"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetHospitalsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hospitals [get]
func (handler *Handler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHospitals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Add(gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		if !model.Status(status).IsValid() {
			response.WithError(w, failure.BadRequestFromString("status must be Active or Blocked"))

			return
		}

		filterGroup.Add(gDto.Eq(model.TableName, model.FieldStatus, status))
	}

	var origin *geo.Point

	if raw := r.URL.Query().Get(constant.RequestParamLocation); raw != "" {
		point, err := geo.ParseLocation(raw)
		if err != nil {
			response.WithError(w, failure.BadRequest(err))

			return
		}

		origin = &point
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup, origin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hospitals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRatings reports the average feedback rating per hospital.
// @Summary Get hospital ratings
// @Tags Hospital
// @Produce json
// @Success 200 {array} dto.RatingResponse
// @Failure 500 {object} response.Error
// @Router /v1/hospitals/ratings [get]
// @Security BearerAuth
func (handler *Handler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatings")
	defer scope.End()

	res, err := handler.service.GetRatings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ratings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHospitalByID returns a hospital with its feedbacks.
// @Summary Get a hospital by ID
// @Tags Hospital
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} dto.HospitalDetailResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hospitals/{id} [get]
func (handler *Handler) GetHospitalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHospitalByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hospital")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteHospital deletes a hospital and its image.
// @Summary Delete a hospital
// @Tags Hospital
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Message "Hospital deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hospitals/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHospital")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hospital")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hospital deleted successfully")
}

// BlockHospital sets a hospital to Blocked.
// @Summary Block a hospital
// @Tags Hospital
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Message "Hospital blocked successfully"
// @Failure 404 {object} response.Error
// @Router /v1/hospitals/{id}/block [patch]
// @Security BearerAuth
func (handler *Handler) BlockHospital(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockHospital")
	defer scope.End()

	if err := handler.service.Block(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block hospital")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hospital blocked successfully")
}

// UnblockHospital sets a hospital back to Active.
// @Summary Unblock a hospital
// @Tags Hospital
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Message "Hospital unblocked successfully"
// @Failure 404 {object} response.Error
// @Router /v1/hospitals/{id}/unblock [patch]
// @Security BearerAuth
func (handler *Handler) UnblockHospital(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockHospital")
	defer scope.End()

	if err := handler.service.Unblock(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock hospital")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hospital unblocked successfully")
}

// AssignManager sets the hospital's manager.
// @Summary Assign a manager
// @Tags Hospital
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param request body dto.AssignManagerRequest true "Assign Manager Request"
// @Success 200 {object} response.Message "Manager assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hospitals/{id}/manager [patch]
// @Security BearerAuth
func (handler *Handler) AssignManager(w http.ResponseWriter, r *http.Request) {
	handler.assign(w, r, "AssignManager", handler.service.AssignManager, "Manager assigned successfully")
}

// AssignBackupManager sets the hospital's backup manager.
// @Summary Assign a backup manager
// @Tags Hospital
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param request body dto.AssignManagerRequest true "Assign Manager Request"
// @Success 200 {object} response.Message "Backup manager assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hospitals/{id}/backup-manager [patch]
// @Security BearerAuth
func (handler *Handler) AssignBackupManager(w http.ResponseWriter, r *http.Request) {
	handler.assign(w, r, "AssignBackupManager", handler.service.AssignBackupManager, "Backup manager assigned successfully")
}

func (handler *Handler) assign(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	assign func(ctx context.Context, id string, req dto.AssignManagerRequest) error,
	message string,
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
	defer scope.End()

	req := dto.AssignManagerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := assign(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("op", op).Msg("failed to assign manager")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, message)
}

// UploadImage replaces the hospital's image.
// @Summary Upload hospital image
// @Description png, jpg or jpeg up to 1 MB. The previous image is removed from storage.
// @Tags Hospital
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Hospital ID"
// @Param file formData file true "Image"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hospitals/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UploadImageRequest{}

	file, header, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Image = header
		req.ImageFile = file

		defer file.Close()
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload hospital image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateFeedback rates a hospital.
// @Summary Leave feedback
// @Tags Hospital
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param request body feedbackDto.CreateFeedbackRequest true "Create Feedback Request"
// @Success 201 {object} feedbackDto.FeedbackResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hospitals/{id}/feedbacks [post]
// @Security BearerAuth
func (handler *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFeedback")
	defer scope.End()

	req := feedbackDto.CreateFeedbackRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.feedback.Create(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create feedback")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
