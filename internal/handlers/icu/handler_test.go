package icu_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/infras/otel/mocks"
	"hms/internal/domains/icu/model"
	"hms/internal/domains/icu/model/dto"
	icuMocks "hms/internal/domains/icu/service/mocks"
	"hms/internal/handlers/icu"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/geo"
)

func newRouter(t *testing.T, setupMock func(svc *icuMocks.MockICU)) http.Handler {
	t.Helper()

	svc := icuMocks.NewMockICU(gomock.NewController(t))
	setupMock(svc)

	handler := icu.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_ReserveICU(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *icuMocks.MockICU)
		wantCode  int
	}{
		{
			name: "reserved",
			body: `{"userId":"p-1","icuId":"icu-1"}`,
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().Reserve(gomock.Any(), dto.ReserveICURequest{UserID: "p-1", ICUID: "icu-1"}).
					Return(dto.ICUResponse{ID: "icu-1", Status: "Occupied", IsReserved: true}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing icu id",
			body:      `{"userId":"p-1"}`,
			setupMock: func(_ *icuMocks.MockICU) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "lost the race",
			body: `{"userId":"p-1","icuId":"icu-1"}`,
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().Reserve(gomock.Any(), gomock.Any()).
					Return(dto.ICUResponse{}, failure.BadRequestFromString("ICU is not available for reservation"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown patient",
			body: `{"userId":"p-9","icuId":"icu-1"}`,
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(dto.ICUResponse{}, failure.NotFound("Patient not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/icus/reserve", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var body struct {
					Data dto.ICUResponse `json:"data"`
				}

				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.True(t, body.Data.IsReserved)
			}
		})
	}
}

func TestHandler_GetAvailableICUs(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(svc *icuMocks.MockICU)
		wantCode  int
	}{
		{
			name:  "location parsed as longitude first",
			query: "?location=31.2357,30.0444",
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().GetAvailableNear(gomock.Any(), geo.Point{Longitude: 31.2357, Latitude: 30.0444}).
					Return([]dto.AvailableICUResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "falls back to userLocation",
			query: "?userLocation=31,30",
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().GetAvailableNear(gomock.Any(), geo.Point{Longitude: 31, Latitude: 30}).Return(nil, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing location",
			setupMock: func(_ *icuMocks.MockICU) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "latitude out of range",
			query:     "?location=31,95",
			setupMock: func(_ *icuMocks.MockICU) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icus/available"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetICUs(t *testing.T) {
	t.Run("filters by hospital and status", func(t *testing.T) {
		router := newRouter(t, func(svc *icuMocks.MockICU) {
			svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetICUsResponse, error) {
					_, args := filter.GetWhereClause()
					assert.Equal(t, "h-1", args[model.FieldHospitalID])
					assert.Equal(t, "Available", args[model.FieldStatus])

					return dto.GetICUsResponse{TotalData: 0}, nil
				})
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icus?hospitalId=h-1&status=Available", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown specialization", func(t *testing.T) {
		router := newRouter(t, func(_ *icuMocks.MockICU) {})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icus?specialization=Dentistry", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *icuMocks.MockICU)
		wantCode  int
	}{
		{
			name: "vacate",
			path: "/icus/icu-1/vacate",
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().Vacate(gomock.Any(), "icu-1").Return(dto.ICUResponse{ID: "icu-1", Status: "To Be Cleaned"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "clean before vacate",
			path: "/icus/icu-1/clean",
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().MarkCleaned(gomock.Any(), "icu-1").
					Return(dto.ICUResponse{}, failure.BadRequestFromString("ICU is not waiting to be cleaned"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "release",
			path: "/icus/icu-1/release",
			setupMock: func(svc *icuMocks.MockICU) {
				svc.EXPECT().Release(gomock.Any(), "icu-1").Return(dto.ICUResponse{ID: "icu-1", Status: "Available"}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
