package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	"hms/transport/http/middleware"
)

func TestAppMiddleware_RateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:   "first request in the window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.7:ward-client/1.0", 60).Return(1, nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name:   "last request in the window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(3, nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(4, nil)
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache down lets the request through",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(0, errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "limiter disabled",
			setupMock: func(_ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.setupMock(redisCache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusOK)
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/v1/hospitals", nil)
			req.RemoteAddr = "10.0.0.7:52100"
			req.Header.Set("User-Agent", "ward-client/1.0")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestAppMiddleware_Tracing(t *testing.T) {
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil).Tracing(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
