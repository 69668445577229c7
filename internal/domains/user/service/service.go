package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"hms/config"
	"hms/infras/otel"
	hospitalModel "hms/internal/domains/hospital/model"
	hospitalDto "hms/internal/domains/hospital/model/dto"
	hospitalRepo "hms/internal/domains/hospital/repository"
	"hms/internal/domains/user/model"
	"hms/internal/domains/user/model/dto"
	"hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/password"

	"github.com/rs/zerolog/log"
)

const cacheGetAllUser = "user:gets"

// EmployeeRoles are the roles a manager may hire.
var EmployeeRoles = []string{constant.RoleDoctor, constant.RoleNurse, constant.RoleCleaner, constant.RoleReceptionist}

type User interface {
	CreateEmployee(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	DeleteEmployee(ctx context.Context, userName string) error
	CreateManager(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	CreateAdmin(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetByRole(ctx context.Context, role string, req gDto.QueryParams) (dto.GetUsersResponse, error)
	GetManagerHospitals(ctx context.Context, id string) (dto.ManagerHospitalsResponse, error)

	UpdateMedicalHistory(ctx context.Context, patientID string, req dto.UpdateMedicalHistoryRequest) error
	GetTotalFees(ctx context.Context, patientID string) (dto.FeesResponse, error)
	GetMedicineSchedule(ctx context.Context, patientID string) (dto.MedicineScheduleResponse, error)
	GetServices(ctx context.Context, patientID string) ([]dto.ServiceResponse, error)

	GetDoctorPatients(ctx context.Context, req gDto.QueryParams) (dto.GetUsersResponse, error)
	GetPatientHealth(ctx context.Context, patientID string) (dto.PatientHealthResponse, error)
	GetPatientMedicalHistory(ctx context.Context, patientID string) (dto.MedicalHistoryResponse, error)
	UpdateMedicineSchedule(ctx context.Context, patientID string, req dto.UpdateMedicineScheduleRequest) error
}

type serviceImpl struct {
	repo         repository.User
	hospitalRepo hospitalRepo.Hospital
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.User, hospitalRepo hospitalRepo.Hospital, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:         repo,
		hospitalRepo: hospitalRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateEmployee(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEmployee")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(EmployeeRoles, req.Role) {
		return res, failure.BadRequestFromString("role must be one of Doctor, Nurse, Cleaner or Receptionist") //nolint:wrapcheck
	}

	return s.create(ctx, req, req.Role)
}

func (s *serviceImpl) CreateManager(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateManager")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.create(ctx, req, constant.RoleManager)
}

func (s *serviceImpl) CreateAdmin(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.create(ctx, req, constant.RoleAdmin)
}

func (s *serviceImpl) create(ctx context.Context, req dto.CreateUserRequest, role string) (res dto.UserResponse, err error) {
	exist, err := s.repo.Exist(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldUserName, req.UserName)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return res, fmt.Errorf("failed to check user existence: %w", err)
	}

	if exist {
		return res, failure.BadRequestFromString("User is already registered") //nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(shared.ActorFromContext(ctx), role, hashed)

	if err = s.repo.Insert(ctx, user); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString("User is already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert user")

		return res, fmt.Errorf("failed to insert user: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) DeleteEmployee(ctx context.Context, userName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEmployee")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldUserName, userName),
		gDto.Filter{Table: model.TableName, Field: model.FieldRole, Operator: gDto.FilterOperatorIn, Value: EmployeeRoles},
	)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee existence")

		return fmt.Errorf("failed to check employee existence: %w", err)
	}

	if !exist {
		return failure.NotFound("Employee not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetByRole(ctx context.Context, role string, req gDto.QueryParams) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, gDto.And(gDto.Eq(model.TableName, model.FieldRole, role)))
}

func (s *serviceImpl) GetDoctorPatients(ctx context.Context, req gDto.QueryParams) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDoctorPatients")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, gDto.And(
		gDto.Eq(model.TableName, model.FieldRole, constant.RolePatient),
		gDto.Eq(model.TableName, model.FieldAssignedDoctor, shared.ActorFromContext(ctx)),
	))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetManagerHospitals(ctx context.Context, id string) (res dto.ManagerHospitalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetManagerHospitals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	manager, err := s.repo.Get(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldRole, constant.RoleManager),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get manager")

		return res, fmt.Errorf("failed to get manager: %w", err)
	}

	if manager.ID == constant.Empty {
		return res, failure.NotFound("Manager not found") //nolint:wrapcheck
	}

	hospitals, err := s.hospitalRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Eq(hospitalModel.TableName, hospitalModel.FieldAssignedManager, id),
			gDto.Eq(hospitalModel.TableName, hospitalModel.FieldBackupManager, id),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get manager hospitals")

		return res, fmt.Errorf("failed to get manager hospitals: %w", err)
	}

	res.Manager.FromModel(manager)
	res.Hospitals = make([]hospitalDto.HospitalResponse, len(hospitals))

	for i, hospital := range hospitals {
		res.Hospitals[i].FromModel(hospital)
	}

	return res, nil
}

func (s *serviceImpl) UpdateMedicalHistory(ctx context.Context, patientID string, req dto.UpdateMedicalHistoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMedicalHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.MedicalHistory == constant.Empty && req.CurrentCondition == constant.Empty {
		return failure.BadRequestFromString("medicalHistory or currentCondition is required") //nolint:wrapcheck
	}

	if _, err = s.patient(ctx, patientID); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.ActorFromContext(ctx)), shared.FilterByID(patientID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update medical history")

		return fmt.Errorf("failed to update medical history: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetTotalFees(ctx context.Context, patientID string) (res dto.FeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTotalFees")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patient, err := s.patient(ctx, patientID)
	if err != nil {
		return res, err
	}

	res.TotalFees = patient.TotalFees

	return res, nil
}

func (s *serviceImpl) GetMedicineSchedule(ctx context.Context, patientID string) (res dto.MedicineScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMedicineSchedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patient, err := s.patient(ctx, patientID)
	if err != nil {
		return res, err
	}

	res.MedicineSchedule = patient.MedicineSchedule

	return res, nil
}

func (s *serviceImpl) GetServices(ctx context.Context, patientID string) (res []dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.patient(ctx, patientID); err != nil {
		return nil, err
	}

	services, err := s.repo.GetServices(ctx, patientID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reserved services")

		return nil, fmt.Errorf("failed to get reserved services: %w", err)
	}

	return dto.FromServices(services), nil
}

func (s *serviceImpl) GetPatientHealth(ctx context.Context, patientID string) (res dto.PatientHealthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPatientHealth")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patient, err := s.assignedPatient(ctx, patientID)
	if err != nil {
		return res, err
	}

	res.PatientID = patient.ID
	res.CurrentCondition = patient.CurrentCondition
	res.AdmissionDate = patient.AdmissionDate

	return res, nil
}

func (s *serviceImpl) GetPatientMedicalHistory(ctx context.Context, patientID string) (res dto.MedicalHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPatientMedicalHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patient, err := s.assignedPatient(ctx, patientID)
	if err != nil {
		return res, err
	}

	res.PatientID = patient.ID
	res.MedicalHistory = patient.MedicalHistory
	res.CurrentCondition = patient.CurrentCondition

	return res, nil
}

func (s *serviceImpl) UpdateMedicineSchedule(ctx context.Context, patientID string, req dto.UpdateMedicineScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMedicineSchedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.assignedPatient(ctx, patientID); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.ActorFromContext(ctx)), shared.FilterByID(patientID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update medicine schedule")

		return fmt.Errorf("failed to update medicine schedule: %w", err)
	}

	return nil
}

// patient loads a patient record. Patients may only read their own.
func (s *serviceImpl) patient(ctx context.Context, patientID string) (model.User, error) {
	if shared.RoleFromContext(ctx) == constant.RolePatient && shared.ActorFromContext(ctx) != patientID {
		return model.User{}, failure.Forbidden("patients can only access their own records") //nolint:wrapcheck
	}

	patient, err := s.repo.Get(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, patientID),
		gDto.Eq(model.TableName, model.FieldRole, constant.RolePatient),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient")

		return patient, fmt.Errorf("failed to get patient: %w", err)
	}

	if patient.ID == constant.Empty {
		return patient, failure.NotFound("User not found") //nolint:wrapcheck
	}

	return patient, nil
}

// assignedPatient loads a patient only when the caller is their assigned doctor.
func (s *serviceImpl) assignedPatient(ctx context.Context, patientID string) (model.User, error) {
	patient, err := s.patient(ctx, patientID)
	if err != nil {
		return patient, err
	}

	if patient.AssignedDoctorID == nil || *patient.AssignedDoctorID != shared.ActorFromContext(ctx) {
		return model.User{}, failure.Forbidden("Access denied. You are not assigned to this patient.") //nolint:wrapcheck
	}

	return patient, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
}
