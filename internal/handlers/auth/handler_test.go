package auth_test

import (
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
	"hms/internal/domains/auth/model/dto"
	authMocks "hms/internal/domains/auth/service/mocks"
	"hms/internal/handlers/auth"
	"hms/shared/failure"
)

func newRouter(t *testing.T, setupMock func(svc *authMocks.MockAuth)) http.Handler {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	setupMock(svc)

	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *authMocks.MockAuth)
		wantCode  int
	}{
		{
			name: "token pair issued",
			body: `{"userName":"amr","password":"secret1","role":"Patient"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{UserName: "amr", Password: "secret1", Role: "Patient"}).
					Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown role",
			body:      `{"userName":"amr","password":"secret1","role":"Janitor"}`,
			setupMock: func(_ *authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed body",
			body:      `{"userName":`,
			setupMock: func(_ *authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			body: `{"userName":"amr","password":"nope","role":"Doctor"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(dto.LoginResponse{}, failure.BadRequestFromString("invalid username, password or role"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var body struct {
					Data dto.LoginResponse `json:"data"`
				}

				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "access", body.Data.AccessToken)
			}
		})
	}
}

func TestHandler_Verify(t *testing.T) {
	router := newRouter(t, func(svc *authMocks.MockAuth) {
		svc.EXPECT().Verify(gomock.Any()).Return(dto.VerifyResponse{UserID: "p-1", UserName: "amr", Role: "Patient"}, nil)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/verify", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.VerifyResponse `json:"data"`
	}

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Patient", body.Data.Role)
}

func TestHandler_RefreshToken(t *testing.T) {
	router := newRouter(t, func(svc *authMocks.MockAuth) {
		svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "stale"}).
			Return(dto.RefreshTokenResponse{}, failure.Unauthorized("Invalid refresh token"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"stale"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
