package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	hospitalMocks "hms/internal/domains/hospital/mocks"
	hospitalModel "hms/internal/domains/hospital/model"
	"hms/internal/domains/icu/availability"
	availabilityMocks "hms/internal/domains/icu/availability/mocks"
	icuMocks "hms/internal/domains/icu/mocks"
	"hms/internal/domains/icu/model"
	"hms/internal/domains/icu/model/dto"
	"hms/internal/domains/icu/repository"
	"hms/internal/domains/icu/service"
	userMocks "hms/internal/domains/user/mocks"
	"hms/shared/audit"
	auditMocks "hms/shared/audit/mocks"
	"hms/shared/broadcast"
	broadcastMocks "hms/shared/broadcast/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/geo"
	gRepo "hms/shared/repository"
)

type deps struct {
	repo        *icuMocks.MockICU
	hospital    *hospitalMocks.MockHospital
	user        *userMocks.MockUser
	notifier    *availabilityMocks.MockNotifier
	audit       *auditMocks.MockPublisher
}

func setup(t *testing.T) (service.ICU, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:        icuMocks.NewMockICU(ctrl),
		hospital:    hospitalMocks.NewMockHospital(ctrl),
		user:        userMocks.NewMockUser(ctrl),
		notifier:    availabilityMocks.NewMockNotifier(ctrl),
		audit:       auditMocks.NewMockPublisher(ctrl),
	}

	svc := service.New(d.repo, d.hospital, d.user, d.notifier, d.audit, &config.Config{}, mocks.NewOtel())

	return svc, d
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func icuRoom(id string, status model.Status) model.ICU {
	return model.ICU{
		ID:                id,
		HospitalID:        "h-1",
		HospitalName:      "Cairo General",
		HospitalAddress:   "Tahrir St",
		HospitalLongitude: 31.0,
		HospitalLatitude:  30.0,
		Specialization:    "Cardiac ICU",
		Status:            status,
		Fees:              100,
	}
}

// expectNotify expects exactly one availability broadcast to be scheduled.
func expectNotify(d deps) {
	d.notifier.EXPECT().Notify().Times(1)
}

func statusArg(filter gDto.FilterGroup) any {
	_, args := filter.GetWhereClause()

	return args[model.ArgCurrentStatus]
}

func TestICUService_Reserve(t *testing.T) {
	t.Run("available room is occupied by the user", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusAvailable), nil).Times(1)
		d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().
			CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusOccupied, mod[model.FieldStatus])
				assert.Equal(t, true, mod[model.FieldIsReserved])
				assert.Equal(t, "user-1", mod[model.FieldReservedBy])
				assert.Equal(t, model.StatusAvailable, statusArg(filter))

				return 1, nil
			})

		occupied := icuRoom("icu-1", model.StatusOccupied)
		occupied.IsReserved = true
		occupied.ReservedBy = new(string)
		*occupied.ReservedBy = "user-1"

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ gDto.FilterGroup, _ ...string) (model.ICU, error) {
				assert.True(t, gRepo.OnPrimary(ctx), "room must be read back from the primary")

				return occupied, nil
			}).
			Times(1)
		d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event audit.Event) {
			assert.Equal(t, audit.EventICUReserved, event.Type)
			assert.Equal(t, "icu-1", event.ResourceID)
			assert.Equal(t, "user-1", event.UserID)
			assert.InDelta(t, 100.0, event.Fee, 0.001)
		})

		expectNotify(d)

		res, err := svc.Reserve(userCtx(), dto.ReserveICURequest{UserID: "user-1", ICUID: "icu-1"})
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusOccupied), res.Status)
		assert.True(t, res.IsReserved)
		assert.Equal(t, "user-1", *res.ReservedBy)
		assert.Equal(t, "Cairo General", res.Hospital.Name)
		assert.Equal(t, "Tahrir St", res.Hospital.Address)

	})

	t.Run("room that is not available is a conflict", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusOccupied), nil).Times(2)
		d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Reserve(userCtx(), dto.ReserveICURequest{UserID: "user-2", ICUID: "icu-1"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "ICU is not available for reservation", err.Error())
	})

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "unknown icu",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ICU{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown user",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusAvailable), nil)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "room removed while reserving",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusAvailable), nil).Times(1)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ICU{}, nil).Times(1)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusAvailable), nil)
				d.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			_, err := svc.Reserve(userCtx(), dto.ReserveICURequest{UserID: "user-1", ICUID: "icu-1"})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestICUService_Register(t *testing.T) {
	fees := 250.0

	tests := []struct {
		name      string
		req       dto.RegisterICURequest
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "missing specialization",
			req:  dto.RegisterICURequest{HospitalID: "h-1", Status: model.StatusAvailable},
			setupMock: func(deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing status",
			req:  dto.RegisterICURequest{HospitalID: "h-1", Specialization: "Burn ICU"},
			setupMock: func(deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "hospital does not exist",
			req:  dto.RegisterICURequest{HospitalID: "h-404", Specialization: "Burn ICU", Status: model.StatusAvailable},
			setupMock: func(d deps) {
				d.hospital.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hospitalModel.Hospital{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "registered and broadcast",
			req:  dto.RegisterICURequest{HospitalID: "h-1", Specialization: "Burn ICU", Status: model.StatusAvailable, Fees: &fees},
			setupMock: func(d deps) {
				d.hospital.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hospitalModel.Hospital{ID: "h-1", Name: "Cairo General", Address: "Tahrir St"}, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, icu model.ICU) error {
					assert.Equal(t, "h-1", icu.HospitalID)
					assert.Equal(t, model.StatusAvailable, icu.Status)
					assert.InDelta(t, fees, icu.Fees, 0.001)
					assert.Equal(t, "admin-1", icu.CreatedBy)

					return nil
				})

				expectNotify(d)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			res, err := svc.Register(userCtx(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Cairo General", res.Hospital.Name)
		})
	}
}

func TestICUService_GetAvailableNear(t *testing.T) {
	svc, d := setup(t)

	far := icuRoom("icu-far", model.StatusAvailable)
	far.HospitalLongitude, far.HospitalLatitude = 29.9, 31.2

	near := icuRoom("icu-near", model.StatusAvailable)

	d.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ICU, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, model.StatusAvailable, args[model.FieldStatus])

			return []model.ICU{far, near}, nil
		})

	res, err := svc.GetAvailableNear(context.Background(), geo.Point{Longitude: 31.01, Latitude: 30.01})
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "icu-near", res[0].ID)
	assert.Equal(t, "icu-far", res[1].ID)
	assert.Greater(t, res[0].DistanceKM, 0.0)
	assert.LessOrEqual(t, res[0].DistanceKM, res[1].DistanceKM)
}

func TestICUService_Lifecycle(t *testing.T) {
	type step func(svc service.ICU) (dto.ICUResponse, error)

	tests := []struct {
		name string
		from model.Status
		to   model.Status
		call step
	}{
		{
			name: "vacate occupied room",
			from: model.StatusOccupied,
			to:   model.StatusToBeCleaned,
			call: func(svc service.ICU) (dto.ICUResponse, error) { return svc.Vacate(userCtx(), "icu-1") },
		},
		{
			name: "mark room cleaned",
			from: model.StatusToBeCleaned,
			to:   model.StatusCleaned,
			call: func(svc service.ICU) (dto.ICUResponse, error) { return svc.MarkCleaned(userCtx(), "icu-1") },
		},
		{
			name: "release cleaned room",
			from: model.StatusCleaned,
			to:   model.StatusAvailable,
			call: func(svc service.ICU) (dto.ICUResponse, error) { return svc.Release(userCtx(), "icu-1") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)

			d.repo.EXPECT().
				CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
					assert.Equal(t, tt.to, mod[model.FieldStatus])
					assert.Equal(t, tt.from, statusArg(filter))

					return 1, nil
				})
			d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ gDto.FilterGroup, _ ...string) (model.ICU, error) {
					assert.True(t, gRepo.OnPrimary(ctx))

					return icuRoom("icu-1", tt.to), nil
				})

		expectNotify(d)

			res, err := tt.call(svc)
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), res.Status)

		})

		t.Run(tt.name+" from wrong status", func(t *testing.T) {
			svc, d := setup(t)

			d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusAvailable), nil)

			_, err := tt.call(svc)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestICUService_Update(t *testing.T) {
	t.Run("cannot occupy through update", func(t *testing.T) {
		svc, _ := setup(t)

		err := svc.Update(userCtx(), "icu-1", dto.UpdateICURequest{Status: model.StatusOccupied})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("leaving occupied drops the reservation", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusOccupied), nil)
		d.repo.EXPECT().
			CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusToBeCleaned, mod[model.FieldStatus])
				assert.Equal(t, false, mod[model.FieldIsReserved])
				assert.Nil(t, mod[model.FieldReservedBy])
				assert.Equal(t, model.StatusOccupied, statusArg(filter))

				return 1, nil
			})

		expectNotify(d)

		require.NoError(t, svc.Update(userCtx(), "icu-1", dto.UpdateICURequest{Status: model.StatusToBeCleaned}))
	})

	t.Run("concurrent change is rejected", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(icuRoom("icu-1", model.StatusAvailable), nil)
		d.repo.EXPECT().CompareAndSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := svc.Update(userCtx(), "icu-1", dto.UpdateICURequest{Specialization: "Trauma ICU"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestICUService_Delete(t *testing.T) {
	t.Run("missing room", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(userCtx(), "icu-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("deleted and broadcast", func(t *testing.T) {
		svc, d := setup(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		expectNotify(d)

		require.NoError(t, svc.Delete(userCtx(), "icu-1"))
	})
}

// store is an in-memory icu_rooms table whose CompareAndSet is atomic.
type store struct {
	mu   sync.Mutex
	rows map[string]model.ICU
}

func newStore(rows ...model.ICU) *store {
	s := &store{rows: map[string]model.ICU{}}
	for _, row := range rows {
		s.rows[row.ID] = row
	}

	return s
}

func (s *store) match(row model.ICU, filter gDto.FilterGroup) bool {
	_, args := filter.GetWhereClause()

	if id, ok := args[model.FieldID]; ok && id != row.ID {
		return false
	}

	if status, ok := args[model.FieldStatus]; ok && status != row.Status {
		return false
	}

	if status, ok := args[model.ArgCurrentStatus]; ok && status != row.Status {
		return false
	}

	return true
}

func (s *store) Insert(_ context.Context, icu model.ICU) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[icu.ID] = icu

	return nil
}

func (s *store) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.ICU, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if s.match(row, filter) {
			return row, nil
		}
	}

	return model.ICU{}, nil
}

func (s *store) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ICU, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := []model.ICU{}

	for _, row := range s.rows {
		if s.match(row, filter) {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func (s *store) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	row, err := s.Get(ctx, filter)

	return row.ID != constant.Empty, err
}

func (s *store) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	rows, err := s.GetAll(ctx, gDto.QueryParams{}, filter)

	return len(rows), err
}

func (s *store) Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error {
	_, err := s.CompareAndSet(ctx, mod, filter)

	return err
}

func (s *store) Delete(_ context.Context, filter gDto.FilterGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range s.rows {
		if s.match(row, filter) {
			delete(s.rows, id)
		}
	}

	return nil
}

func (s *store) CompareAndSet(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var affected int64

	for id, row := range s.rows {
		if !s.match(row, filter) {
			continue
		}

		if status, ok := mod[model.FieldStatus].(model.Status); ok {
			row.Status = status
		}

		if reserved, ok := mod[model.FieldIsReserved].(bool); ok {
			row.IsReserved = reserved
		}

		if by, ok := mod[model.FieldReservedBy].(string); ok {
			row.ReservedBy = &by
		}

		s.rows[id] = row
		affected++
	}

	return affected, nil
}

var _ repository.ICU = (*store)(nil)

func setupStore(t *testing.T, rows ...model.ICU) (service.ICU, *store, *atomic.Int32) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := newStore(rows...)

	users := userMocks.NewMockUser(ctrl)
	users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	notified := &atomic.Int32{}

	notifier := availabilityMocks.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Notify().
		Do(func() { notified.Add(1) }).
		AnyTimes()

	publisher := auditMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	svc := service.New(st, hospitalMocks.NewMockHospital(ctrl), users, notifier, publisher, &config.Config{}, mocks.NewOtel())

	return svc, st, notified
}

func TestICUService_ConcurrentReserve(t *testing.T) {
	svc, st, notified := setupStore(t, icuRoom("icu-1", model.StatusAvailable))

	const attempts = 16

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)

	for i := range attempts {
		wg.Add(1)

		go func(user string) {
			defer wg.Done()

			_, err := svc.Reserve(userCtx(), dto.ReserveICURequest{UserID: user, ICUID: "icu-1"})

			switch {
			case err == nil:
				successes.Add(1)
			case failure.GetCode(err) == http.StatusBadRequest:
				conflicts.Add(1)
			}
		}(string(rune('a' + i)))
	}

	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())

	room, err := st.Get(context.Background(), gDto.And(gDto.Eq(model.TableName, model.FieldID, "icu-1")))
	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, room.Status)
	require.NotNil(t, room.ReservedBy)

	assert.Equal(t, int32(1), notified.Load())
}

func TestICUService_ReserveThenQuery(t *testing.T) {
	svc, _, _ := setupStore(t, icuRoom("icu-r", model.StatusAvailable))
	ctx := userCtx()
	origin := geo.Point{Longitude: 31.01, Latitude: 30.01}

	available, err := svc.GetAvailableNear(ctx, origin)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "icu-r", available[0].ID)
	assert.Greater(t, available[0].DistanceKM, 0.0)
	assert.Less(t, available[0].DistanceKM, 2.0)

	res, err := svc.Reserve(ctx, dto.ReserveICURequest{UserID: "user-u", ICUID: "icu-r"})
	require.NoError(t, err)
	assert.Equal(t, "Occupied", res.Status)
	assert.InDelta(t, 100.0, res.Fees, 0.001)

	available, err = svc.GetAvailableNear(ctx, origin)
	require.NoError(t, err)
	assert.Empty(t, available)

	_, err = svc.Reserve(ctx, dto.ReserveICURequest{UserID: "user-v", ICUID: "icu-r"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	room, err := svc.Get(ctx, "icu-r")
	require.NoError(t, err)
	assert.Equal(t, "user-u", *room.ReservedBy)
}

// slowSnapshot holds the first Available read after taking it, so it is
// published after later writes have landed.
type slowSnapshot struct {
	*store
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (s *slowSnapshot) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ICU, error) {
	rows, err := s.store.GetAll(ctx, params, filter, columns...)

	if s.calls.Add(1) == 1 {
		close(s.entered)
		<-s.release
	}

	return rows, err
}

func TestICUService_BroadcastsFollowReservationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	st := &slowSnapshot{
		store:   newStore(icuRoom("icu-a", model.StatusAvailable), icuRoom("icu-b", model.StatusAvailable)),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	users := userMocks.NewMockUser(ctrl)
	users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	publisher := auditMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	var (
		mu        sync.Mutex
		published [][]dto.ICUResponse
	)

	broadcaster := broadcastMocks.NewMockBroadcaster(ctrl)
	broadcaster.EXPECT().
		Publish(gomock.Any(), broadcast.EventICUUpdated, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			mu.Lock()
			defer mu.Unlock()

			published = append(published, payload.([]dto.ICUResponse))

			return nil
		}).
		AnyTimes()

	notifier := availability.New(st, broadcaster, mocks.NewOtel())
	svc := service.New(st, hospitalMocks.NewMockHospital(ctrl), users, notifier, publisher, &config.Config{}, mocks.NewOtel())

	_, err := svc.Reserve(userCtx(), dto.ReserveICURequest{UserID: "user-1", ICUID: "icu-a"})
	require.NoError(t, err)

	<-st.entered

	_, err = svc.Reserve(userCtx(), dto.ReserveICURequest{UserID: "user-2", ICUID: "icu-b"})
	require.NoError(t, err)

	close(st.release)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(published) == 2
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, published[0], 1)
	assert.Equal(t, "icu-b", published[0][0].ID)
	assert.Empty(t, published[1], "last broadcast must reflect the final state")
}
