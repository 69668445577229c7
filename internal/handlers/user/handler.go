package user

import (
	"context"
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/user/model"
	"hms/internal/domains/user/model/dto"
	"hms/internal/domains/user/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/employees", handler.CreateEmployee)
		routerGroup.Delete("/employees/{userName}", handler.DeleteEmployee)
		routerGroup.Post("/managers", handler.CreateManager)
		routerGroup.Get("/managers", handler.GetManagers)
		routerGroup.Get("/managers/{id}/hospitals", handler.GetManagerHospitals)
		routerGroup.Post("/admins", handler.CreateAdmin)
		routerGroup.Get("/admins", handler.GetAdmins)
	})

	router.Route("/patients/{id}", func(routerGroup chi.Router) {
		routerGroup.Patch("/medical-history", handler.UpdateMedicalHistory)
		routerGroup.Get("/fees", handler.GetTotalFees)
		routerGroup.Get("/medicine-schedule", handler.GetMedicineSchedule)
		routerGroup.Get("/services", handler.GetServices)
	})

	router.Route("/doctors/patients", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDoctorPatients)
		routerGroup.Get("/{id}/health", handler.GetPatientHealth)
		routerGroup.Get("/{id}/medical-history", handler.GetPatientMedicalHistory)
		routerGroup.Patch("/{id}/medicine-schedule", handler.UpdateMedicineSchedule)
	})
}

// CreateEmployee handles the creation of a hospital employee.
// @Summary Add an employee
// @Description Role must be Doctor, Nurse, Cleaner or Receptionist.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	handler.create(writer, request, "CreateEmployee", handler.service.CreateEmployee)
}

// CreateManager handles the creation of a manager account.
// @Summary Add a manager
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/managers [post]
// @Security BearerAuth
func (handler *Handler) CreateManager(writer http.ResponseWriter, request *http.Request) {
	handler.create(writer, request, "CreateManager", handler.service.CreateManager)
}

// CreateAdmin handles the creation of an admin account.
// @Summary Add an admin
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/admins [post]
// @Security BearerAuth
func (handler *Handler) CreateAdmin(writer http.ResponseWriter, request *http.Request) {
	handler.create(writer, request, "CreateAdmin", handler.service.CreateAdmin)
}

func (handler *Handler) create(
	writer http.ResponseWriter,
	request *http.Request,
	op string,
	create func(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error),
) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("op", op).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeleteEmployee removes an employee by user name.
// @Summary Delete an employee
// @Tags User
// @Produce json
// @Param userName path string true "User name"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/employees/{userName} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	if err := handler.service.DeleteEmployee(ctx, chi.URLParam(request, constant.RequestParamUserName)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Employee deleted successfully")
}

// GetManagers lists manager accounts.
// @Summary Get managers
// @Tags User
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetUsersResponse
// @Failure 500 {object} response.Error
// @Router /v1/users/managers [get]
// @Security BearerAuth
func (handler *Handler) GetManagers(writer http.ResponseWriter, request *http.Request) {
	handler.listByRole(writer, request, constant.RoleManager)
}

// GetAdmins lists admin accounts.
// @Summary Get admins
// @Tags User
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetUsersResponse
// @Failure 500 {object} response.Error
// @Router /v1/users/admins [get]
// @Security BearerAuth
func (handler *Handler) GetAdmins(writer http.ResponseWriter, request *http.Request) {
	handler.listByRole(writer, request, constant.RoleAdmin)
}

func (handler *Handler) listByRole(writer http.ResponseWriter, request *http.Request, role string) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsersByRole")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(model.TableName, model.FieldUserName, constant.FieldCreatedAt)

	res, err := handler.service.GetByRole(ctx, role, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("role", role).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetManagerHospitals returns a manager with the hospitals assigned to them.
// @Summary Get a manager's hospitals
// @Tags User
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} dto.ManagerHospitalsResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/managers/{id}/hospitals [get]
// @Security BearerAuth
func (handler *Handler) GetManagerHospitals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetManagerHospitals")
	defer scope.End()

	res, err := handler.service.GetManagerHospitals(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get manager hospitals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateMedicalHistory updates a patient's medical history and current condition.
// @Summary Update medical history
// @Tags Patient
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.UpdateMedicalHistoryRequest true "Update Medical History Request"
// @Success 200 {object} response.Message "Medical history updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/patients/{id}/medical-history [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMedicalHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMedicalHistory")
	defer scope.End()

	req := dto.UpdateMedicalHistoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateMedicalHistory(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update medical history")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Medical history updated successfully")
}

// GetTotalFees returns the fees charged to a patient.
// @Summary Get total fees
// @Tags Patient
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.FeesResponse
// @Failure 404 {object} response.Error
// @Router /v1/patients/{id}/fees [get]
// @Security BearerAuth
func (handler *Handler) GetTotalFees(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTotalFees")
	defer scope.End()

	res, err := handler.service.GetTotalFees(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get total fees")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMedicineSchedule returns a patient's medicine schedule.
// @Summary Get medicine schedule
// @Tags Patient
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.MedicineScheduleResponse
// @Failure 404 {object} response.Error
// @Router /v1/patients/{id}/medicine-schedule [get]
// @Security BearerAuth
func (handler *Handler) GetMedicineSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMedicineSchedule")
	defer scope.End()

	res, err := handler.service.GetMedicineSchedule(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get medicine schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetServices lists the services reserved by a patient.
// @Summary Get reserved services
// @Tags Patient
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {array} dto.ServiceResponse
// @Failure 404 {object} response.Error
// @Router /v1/patients/{id}/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	res, err := handler.service.GetServices(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reserved services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDoctorPatients lists the caller's patients.
// @Summary Get my patients
// @Tags Doctor
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetUsersResponse
// @Failure 500 {object} response.Error
// @Router /v1/doctors/patients [get]
// @Security BearerAuth
func (handler *Handler) GetDoctorPatients(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctorPatients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(model.TableName, model.FieldUserName, constant.FieldCreatedAt)

	res, err := handler.service.GetDoctorPatients(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get doctor patients")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPatientHealth returns a patient's current condition and admission date.
// @Summary Get patient health
// @Tags Doctor
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.PatientHealthResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/doctors/patients/{id}/health [get]
// @Security BearerAuth
func (handler *Handler) GetPatientHealth(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientHealth")
	defer scope.End()

	res, err := handler.service.GetPatientHealth(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient health")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPatientMedicalHistory returns a patient's medical history.
// @Summary Get patient medical history
// @Tags Doctor
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} dto.MedicalHistoryResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/doctors/patients/{id}/medical-history [get]
// @Security BearerAuth
func (handler *Handler) GetPatientMedicalHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientMedicalHistory")
	defer scope.End()

	res, err := handler.service.GetPatientMedicalHistory(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get patient medical history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateMedicineSchedule replaces a patient's medicine schedule.
// @Summary Update medicine schedule
// @Tags Doctor
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.UpdateMedicineScheduleRequest true "Update Medicine Schedule Request"
// @Success 200 {object} response.Message "Medicine schedule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/doctors/patients/{id}/medicine-schedule [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMedicineSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMedicineSchedule")
	defer scope.End()

	req := dto.UpdateMedicineScheduleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateMedicineSchedule(ctx, chi.URLParam(request, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update medicine schedule")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Medicine schedule updated successfully")
}
