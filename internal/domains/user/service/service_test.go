package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	hospitalMocks "hms/internal/domains/hospital/mocks"
	hospitalModel "hms/internal/domains/hospital/model"
	userMocks "hms/internal/domains/user/mocks"
	"hms/internal/domains/user/model"
	"hms/internal/domains/user/model/dto"
	"hms/internal/domains/user/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/password"
)

type deps struct {
	repo     *userMocks.MockUser
	hospital *hospitalMocks.MockHospital
	cache    *cacheMocks.MockRedisCache
}

func setup(t *testing.T) (service.User, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:     userMocks.NewMockUser(ctrl),
		hospital: hospitalMocks.NewMockHospital(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(d.repo, d.hospital, cfg, d.cache, mocks.NewOtel()), d
}

func ctxAs(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func employeeRequest(role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		UserName:  "nurse.joy",
		FirstName: "Joy",
		LastName:  "Hassan",
		Gender:    "Female",
		Phone:     "0100000000",
		Password:  "secret1",
		Role:      role,
	}
}

func TestUserService_CreateEmployee(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "nurse hired",
			role: constant.RoleNurse,
			setupMock: func(d deps) {
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
					assert.Equal(t, constant.RoleNurse, user.Role)
					assert.True(t, user.Active)
					assert.NoError(t, password.Verify("secret1", user.Password))

					return nil
				})
			},
		},
		{
			name:      "manager role is not an employee role",
			role:      constant.RoleManager,
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "user name taken",
			role: constant.RoleDoctor,
			setupMock: func(d deps) {
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "database error",
			role: constant.RoleCleaner,
			setupMock: func(d deps) {
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			res, err := svc.CreateEmployee(ctxAs("manager-1", constant.RoleManager), employeeRequest(tt.role))

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "nurse.joy", res.UserName)
			assert.Equal(t, tt.role, res.Role)
		})
	}
}

func TestUserService_CreateManagerAndAdmin(t *testing.T) {
	svc, d := setup(t)

	var roles []string

	d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
		roles = append(roles, user.Role)

		return nil
	}).Times(2)

	ctx := ctxAs("admin-1", constant.RoleAdmin)

	_, err := svc.CreateManager(ctx, employeeRequest(constant.RolePatient))
	require.NoError(t, err)

	_, err = svc.CreateAdmin(ctx, employeeRequest(""))
	require.NoError(t, err)

	assert.Equal(t, []string{constant.RoleManager, constant.RoleAdmin}, roles)
}

func TestUserService_DeleteEmployee(t *testing.T) {
	t.Run("missing employee", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteEmployee(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("only employee roles are deleted", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "users.role IN")
			assert.Equal(t, "nurse.joy", args[model.FieldUserName])

			return nil
		})

		require.NoError(t, svc.DeleteEmployee(context.Background(), "nurse.joy"))
	})
}

func TestUserService_GetByRole(t *testing.T) {
	svc, d := setup(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.User{{ID: "a-1", Role: constant.RoleAdmin}}, nil)

	res, err := svc.GetByRole(context.Background(), constant.RoleAdmin, params)
	require.NoError(t, err)

	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Users, 1)
}

func TestUserService_GetManagerHospitals(t *testing.T) {
	t.Run("manager with hospitals", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "m-1", UserName: "mona", Role: constant.RoleManager}, nil)
		d.hospital.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]hospitalModel.Hospital, error) {
				assert.Equal(t, gDto.FilterGroupOperatorOr, filter.Operator)

				return []hospitalModel.Hospital{{ID: "h-1"}, {ID: "h-2"}}, nil
			})

		res, err := svc.GetManagerHospitals(context.Background(), "m-1")
		require.NoError(t, err)

		assert.Equal(t, "mona", res.Manager.UserName)
		assert.Len(t, res.Hospitals, 2)
	})

	t.Run("not a manager", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.GetManagerHospitals(context.Background(), "p-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_PatientRecords(t *testing.T) {
	patient := model.User{ID: "p-1", Role: constant.RolePatient, TotalFees: 300, MedicineSchedule: "Aspirin 8am"}

	t.Run("patient reads own fees", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(patient, nil)

		res, err := svc.GetTotalFees(ctxAs("p-1", constant.RolePatient), "p-1")
		require.NoError(t, err)
		assert.InDelta(t, 300.0, res.TotalFees, 0.001)
	})

	t.Run("patient cannot read another patient", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.GetMedicineSchedule(ctxAs("p-2", constant.RolePatient), "p-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("unknown patient", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.GetMedicineSchedule(ctxAs("m-1", constant.RoleManager), "p-9")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("services in reservation order", func(t *testing.T) {
		svc, d := setup(t)

		first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(patient, nil)
		d.repo.EXPECT().GetServices(gomock.Any(), "p-1").Return([]model.ReservedService{
			{ID: "s-1", ResourceID: "room-1", Category: model.CategoryVisitorRoom, Fee: 200, ReservedAt: first},
			{ID: "s-2", ResourceID: "room-2", Category: model.CategoryKidsArea, ReservedAt: first.Add(time.Hour)},
		}, nil)

		res, err := svc.GetServices(ctxAs("p-1", constant.RolePatient), "p-1")
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "s-1", res[0].ID)
		assert.Equal(t, model.CategoryKidsArea, res[1].Category)
	})

	t.Run("medical history needs content", func(t *testing.T) {
		svc, _ := setup(t)

		err := svc.UpdateMedicalHistory(ctxAs("p-1", constant.RolePatient), "p-1", dto.UpdateMedicalHistoryRequest{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("medical history updated", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(patient, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "stable", fields["current_condition"])
			assert.Equal(t, "p-1", fields[constant.FieldModifiedBy])

			return nil
		})

		err := svc.UpdateMedicalHistory(ctxAs("p-1", constant.RolePatient), "p-1", dto.UpdateMedicalHistoryRequest{CurrentCondition: "stable"})
		require.NoError(t, err)
	})
}

func TestUserService_DoctorAccess(t *testing.T) {
	doctor := "d-1"
	admitted := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	patient := model.User{
		ID:               "p-1",
		Role:             constant.RolePatient,
		AssignedDoctorID: &doctor,
		CurrentCondition: "stable",
		MedicalHistory:   "asthma",
		AdmissionDate:    &admitted,
	}

	t.Run("assigned doctor reads health", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(patient, nil)

		res, err := svc.GetPatientHealth(ctxAs(doctor, constant.RoleDoctor), "p-1")
		require.NoError(t, err)
		assert.Equal(t, "stable", res.CurrentCondition)
		assert.Equal(t, &admitted, res.AdmissionDate)
	})

	t.Run("other doctor is denied", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(patient, nil)

		_, err := svc.GetPatientMedicalHistory(ctxAs("d-2", constant.RoleDoctor), "p-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, "Access denied. You are not assigned to this patient.", err.Error())
	})

	t.Run("assigned doctor updates schedule", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(patient, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "Ventolin twice daily", fields["medicine_schedule"])

			return nil
		})

		err := svc.UpdateMedicineSchedule(ctxAs(doctor, constant.RoleDoctor), "p-1", dto.UpdateMedicineScheduleRequest{MedicineSchedule: "Ventolin twice daily"})
		require.NoError(t, err)
	})

	t.Run("doctor lists own patients", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, doctor, args[model.FieldAssignedDoctor])

			return 1, nil
		})
		d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.User{patient}, nil)

		res, err := svc.GetDoctorPatients(ctxAs(doctor, constant.RoleDoctor), gDto.QueryParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, res.Users, 1)
	})
}
