package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	hospitalMocks "hms/internal/domains/hospital/mocks"
	hospitalModel "hms/internal/domains/hospital/model"
	userMocks "hms/internal/domains/user/mocks"
	userModel "hms/internal/domains/user/model"
	roomMocks "hms/internal/domains/visitorroom/mocks"
	"hms/internal/domains/visitorroom/model"
	"hms/internal/domains/visitorroom/model/dto"
	"hms/internal/domains/visitorroom/service"
	"hms/shared/audit"
	auditMocks "hms/shared/audit/mocks"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	repoMocks "hms/shared/repository/mocks"
)

type deps struct {
	repo       *roomMocks.MockVisitorRoom
	hospital   *hospitalMocks.MockHospital
	user       *userMocks.MockUser
	transactor *repoMocks.MockTransactor
	audit      *auditMocks.MockPublisher
	cache      *cacheMocks.MockRedisCache
}

func setup(t *testing.T) (service.VisitorRoom, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:       roomMocks.NewMockVisitorRoom(ctrl),
		hospital:   hospitalMocks.NewMockHospital(ctrl),
		user:       userMocks.NewMockUser(ctrl),
		transactor: repoMocks.NewMockTransactor(ctrl),
		audit:      auditMocks.NewMockPublisher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(d.repo, d.hospital, d.user, d.transactor, d.audit, &config.Config{}, d.cache, mocks.NewOtel())

	return svc, d
}

// runTx executes the unit of work directly, as a committed transaction would.
func runTx(d deps) {
	d.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	})
}

func room(roomType model.RoomType, status model.Status) model.VisitorRoom {
	return model.VisitorRoom{
		ID:           "vr-1",
		HospitalID:   "h-1",
		HospitalName: "Cairo General",
		RoomNumber:   "101",
		Capacity:     4,
		RoomType:     roomType,
		Status:       status,
		Fees:         200,
	}
}

func TestVisitorRoomService_Create(t *testing.T) {
	req := dto.CreateVisitorRoomRequest{HospitalID: "h-1", RoomNumber: "101", Capacity: 4, RoomType: model.RoomTypeNormal}

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "room created with default fee",
			setupMock: func(d deps) {
				d.hospital.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hospitalModel.Hospital{ID: "h-1", Name: "Cairo General"}, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.VisitorRoom) error {
					assert.Equal(t, model.StatusAvailable, room.Status)
					assert.InDelta(t, float64(model.DefaultFees), room.Fees, 0)

					return nil
				})
			},
		},
		{
			name: "hospital not found",
			setupMock: func(d deps) {
				d.hospital.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hospitalModel.Hospital{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "room number taken",
			setupMock: func(d deps) {
				d.hospital.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hospitalModel.Hospital{ID: "h-1"}, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "database error",
			setupMock: func(d deps) {
				d.hospital.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hospitalModel.Hospital{ID: "h-1"}, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			res, err := svc.Create(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Cairo General", res.HospitalName)
			assert.Equal(t, string(model.StatusAvailable), res.Status)
		})
	}
}

func TestVisitorRoomService_GetAll(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, dest any) error {
			res, ok := dest.(*dto.GetVisitorRoomsResponse)
			require.True(t, ok)

			res.TotalData = 7

			return nil
		})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 7, res.TotalData)
	})

	t.Run("cache miss", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
		d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.VisitorRoom{room(model.RoomTypeNormal, model.StatusAvailable)}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 11, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Rooms, 1)
	})
}

func TestVisitorRoomService_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "room reserved and fee charged",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				runTx(d)
				d.repo.EXPECT().CompareAndSetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
						assert.Equal(t, model.StatusReserved, mod[model.FieldStatus])
						assert.Equal(t, "p-1", mod[model.FieldReservedBy])

						_, args := filter.GetWhereClause()
						assert.Equal(t, model.StatusAvailable, args[model.ArgCurrentStatus])

						return 1, nil
					})
				d.repo.EXPECT().InsertReservationTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, reservation model.Reservation) error {
						assert.Equal(t, "vr-1", reservation.RoomID)
						assert.Nil(t, reservation.TimeSlot)

						return nil
					})
				d.user.EXPECT().InsertServiceTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, svc userModel.ReservedService) error {
						assert.Equal(t, userModel.CategoryVisitorRoom, svc.Category)
						assert.InDelta(t, 200.0, svc.Fee, 0)

						return nil
					})
				d.user.EXPECT().AddFeesTx(gomock.Any(), gomock.Any(), "p-1", 200.0).Return(nil)
				d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event audit.Event) {
					assert.Equal(t, audit.EventVisitorRoomReserved, event.Type)
					assert.Equal(t, "h-1", event.HospitalID)
				})
			},
		},
		{
			name: "taken by a concurrent request",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				runTx(d)
				d.repo.EXPECT().CompareAndSetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Room is not available for reservation",
		},
		{
			name: "kids area cannot be booked as a room",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeKidsArea, model.StatusAvailable), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VisitorRoom{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown user",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "fee update fails",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				runTx(d)
				d.repo.EXPECT().CompareAndSetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				d.repo.EXPECT().InsertReservationTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.user.EXPECT().InsertServiceTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.user.EXPECT().AddFeesTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			res, err := svc.Reserve(context.Background(), dto.ReserveRoomRequest{UserID: "p-1", RoomID: "vr-1"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(model.StatusReserved), res.Status)
			require.NotNil(t, res.ReservedBy)
			assert.Equal(t, "p-1", *res.ReservedBy)
		})
	}
}

func TestVisitorRoomService_ReserveKidsArea(t *testing.T) {
	req := dto.ReserveKidsAreaRequest{
		ReserveRoomRequest: dto.ReserveRoomRequest{UserID: "p-1", RoomID: "vr-1"},
		TimeSlot:           "10:00-11:00",
	}

	t.Run("free slot recorded", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeKidsArea, model.StatusAvailable), nil)
		d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		runTx(d)
		d.repo.EXPECT().CompareAndSetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		d.repo.EXPECT().InsertReservationTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, reservation model.Reservation) error {
				require.NotNil(t, reservation.TimeSlot)
				assert.Equal(t, "10:00-11:00", *reservation.TimeSlot)

				return nil
			})
		d.user.EXPECT().InsertServiceTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, svc userModel.ReservedService) error {
				assert.Equal(t, userModel.CategoryKidsArea, svc.Category)
				assert.Zero(t, svc.Fee)

				return nil
			})
		d.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		_, err := svc.ReserveKidsArea(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("normal room rejected", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)

		_, err := svc.ReserveKidsArea(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, "Kids area is not available", err.Error())
	})
}

func TestVisitorRoomService_Release(t *testing.T) {
	t.Run("released", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusReserved), nil)
		d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusAvailable, mod[model.FieldStatus])
				assert.Contains(t, mod, model.FieldReservedBy)

				_, args := filter.GetWhereClause()
				assert.Equal(t, model.StatusReserved, args[model.ArgCurrentStatus])

				return 1, nil
			})

		res, err := svc.Release(context.Background(), "vr-1")
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusAvailable), res.Status)
		assert.Nil(t, res.ReservedBy)
	})

	t.Run("not reserved", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)
		d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Release(context.Background(), "vr-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestVisitorRoomService_GetHistory(t *testing.T) {
	t.Run("history of an existing room", func(t *testing.T) {
		svc, d := setup(t)

		name := "amr"
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusReserved), nil)
		d.repo.EXPECT().GetReservations(gomock.Any(), "vr-1").Return([]model.Reservation{
			{ID: "r-2", RoomID: "vr-1", UserID: "p-1", UserName: &name},
			{ID: "r-1", RoomID: "vr-1", UserID: "p-2"},
		}, nil)

		res, err := svc.GetHistory(context.Background(), "vr-1")
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "r-2", res[0].ID)
		assert.Equal(t, &name, res[0].UserName)
		assert.Nil(t, res[1].UserName)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VisitorRoom{}, nil)

		_, err := svc.GetHistory(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func actorCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestVisitorRoomService_Get(t *testing.T) {
	svc, d := setup(t)

	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.RoomTypeNormal, model.StatusAvailable), nil)

	res, err := svc.Get(actorCtx(), "vr-1")
	require.NoError(t, err)
	assert.Equal(t, "101", res.RoomNumber)
	assert.Equal(t, string(model.RoomTypeNormal), res.RoomType)
}
