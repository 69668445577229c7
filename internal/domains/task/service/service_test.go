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

	"hms/infras/otel/mocks"
	taskMocks "hms/internal/domains/task/mocks"
	"hms/internal/domains/task/model"
	"hms/internal/domains/task/model/dto"
	"hms/internal/domains/task/service"
	userMocks "hms/internal/domains/user/mocks"
	userModel "hms/internal/domains/user/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
)

func setup(t *testing.T) (service.Task, *taskMocks.MockTask, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := taskMocks.NewMockTask(ctrl)
	users := userMocks.NewMockUser(ctrl)

	return service.New(repo, users, mocks.NewOtel()), repo, users
}

func asUser(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestTaskService_Create(t *testing.T) {
	req := dto.CreateTaskRequest{
		Name:       "Restock ward B",
		EmployeeID: "e-1",
		Deadline:   time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC),
		Priority:   model.PriorityHigh,
	}

	tests := []struct {
		name      string
		setupMock func(repo *taskMocks.MockTask, users *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "nurse gets the task",
			setupMock: func(repo *taskMocks.MockTask, users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "e-1", UserName: "joy", Role: constant.RoleNurse}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task model.Task) error {
					assert.Equal(t, model.StatusNotStarted, task.Status)
					assert.Equal(t, "e-1", task.EmployeeID)

					return nil
				})
			},
		},
		{
			name: "doctors do not take tasks",
			setupMock: func(_ *taskMocks.MockTask, users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "e-1", Role: constant.RoleDoctor}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown employee",
			setupMock: func(_ *taskMocks.MockTask, users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "database error",
			setupMock: func(repo *taskMocks.MockTask, users *userMocks.MockUser) {
				users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "e-1", Role: constant.RoleCleaner}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, users := setup(t)
			tt.setupMock(repo, users)

			res, err := svc.Create(asUser("m-1", constant.RoleManager), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "joy", res.EmployeeName)
			assert.Equal(t, constant.RoleNurse, res.EmployeeRole)
			assert.Equal(t, "m-1", res.CreatedBy)
		})
	}
}

func TestTaskService_GetByRole(t *testing.T) {
	t.Run("filters on the employee role", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "users.role")
			assert.Equal(t, constant.RoleCleaner, args[userModel.FieldRole])

			return 1, nil
		})
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Task, error) {
			assert.Equal(t, "tasks.deadline", params.SortBy)

			return []model.Task{{ID: "t-1", EmployeeRole: constant.RoleCleaner}}, nil
		})

		res, err := svc.GetByRole(context.Background(), gDto.QueryParams{Limit: 10}, constant.RoleCleaner)
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Tasks, 1)
	})

	t.Run("role without tasks", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.GetByRole(context.Background(), gDto.QueryParams{}, constant.RolePatient)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTaskService_GetMine(t *testing.T) {
	svc, repo, _ := setup(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		_, args := filter.GetWhereClause()
		assert.Equal(t, "e-1", args[model.FieldEmployeeID])

		return 0, nil
	})
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Task{}, nil)

	res, err := svc.GetMine(asUser("e-1", constant.RoleNurse), gDto.QueryParams{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Tasks)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	task := model.Task{ID: "t-1", EmployeeID: "e-1", Status: model.StatusNotStarted}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(repo *taskMocks.MockTask)
		wantCode  int
	}{
		{
			name: "assignee moves the task on",
			ctx:  asUser("e-1", constant.RoleNurse),
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(task, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, model.StatusInProgress, fields[model.FieldStatus])

					return nil
				})
			},
		},
		{
			name: "manager may update any task",
			ctx:  asUser("m-1", constant.RoleManager),
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(task, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "another nurse is refused",
			ctx:  asUser("e-2", constant.RoleNurse),
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(task, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "unknown task",
			ctx:  asUser("e-1", constant.RoleNurse),
			setupMock: func(repo *taskMocks.MockTask) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := setup(t)
			tt.setupMock(repo)

			res, err := svc.UpdateStatus(tt.ctx, "t-1", dto.UpdateTaskStatusRequest{Status: model.StatusInProgress})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(model.StatusInProgress), res.Status)
		})
	}
}
