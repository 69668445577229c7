package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/jwt"
	jwtMocks "hms/infras/jwt/mocks"
	"hms/infras/otel/mocks"
	"hms/permissions"
	"hms/shared/constant"
	"hms/transport/http/middleware"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/hospitals", Method: http.MethodGet, Skip: true},
		{Path: "/v1/icus/{id}/clean", Method: http.MethodPatch, Permissions: []string{constant.RoleCleaner}},
		{Path: "/v1/icus/{id}", Method: http.MethodGet, Permissions: []string{constant.RoleDoctor, constant.RoleNurse}},
	},
}

func newAuthRouter(t *testing.T, setupMock func(j *jwtMocks.MockJWT), seen map[string]string) http.Handler {
	t.Helper()

	jwtService := jwtMocks.NewMockJWT(gomock.NewController(t))
	setupMock(jwtService)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	authRole := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), testPermissions, cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen["id"], _ = r.Context().Value(constant.ContextKeyUserID).(string)
			seen["name"], _ = r.Context().Value(constant.ContextKeyUserName).(string)
			seen["role"], _ = r.Context().Value(constant.ContextKeyUserRole).(string)
		}

		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		r.Get("/v1/hospitals", ok)
		r.Get("/v1/icus/{id}", ok)
		r.Patch("/v1/icus/{id}/clean", ok)
	})

	return router
}

func TestAuthRole(t *testing.T) {
	doctor := &jwt.Claims{UserID: "d-1", UserName: "house", Role: constant.RoleDoctor}

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func(j *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name:      "public route needs no token",
			method:    http.MethodGet,
			path:      "/v1/hospitals",
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "missing authorization header",
			method:    http.MethodGet,
			path:      "/v1/icus/icu-1",
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/icus/icu-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer stale"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "claims without a role",
			method:  http.MethodGet,
			path:    "/v1/icus/icu-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(&jwt.Claims{UserID: "d-1"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "doctor reads an icu",
			method:  http.MethodGet,
			path:    "/v1/icus/icu-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(doctor, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "doctor cannot clean an icu",
			method:  http.MethodPatch,
			path:    "/v1/icus/icu-1/clean",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer token"},
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(doctor, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "internal api key skips token checks",
			method:    http.MethodPatch,
			path:      "/v1/icus/icu-1/clean",
			headers:   map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "wrong api key",
			method:    http.MethodPatch,
			path:      "/v1/icus/icu-1/clean",
			headers:   map[string]string{constant.RequestHeaderAPIKey: "guess"},
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(t, tt.setupMock, nil)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuth_SetsCallerContext(t *testing.T) {
	seen := map[string]string{}

	router := newAuthRouter(t, func(j *jwtMocks.MockJWT) {
		j.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "n-1", UserName: "joy", Role: constant.RoleNurse}, nil)
	}, seen)

	req := httptest.NewRequest(http.MethodGet, "/v1/icus/icu-1", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "n-1", seen["id"])
	assert.Equal(t, "joy", seen["name"])
	assert.Equal(t, constant.RoleNurse, seen["role"])
}
