package middleware

import (
	"net"
	"net/http"
	"strconv"

	"hms/shared"
	"hms/shared/constant"
	"hms/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownClient     = "unknown"
)

// RateLimit counts requests per client in a fixed window. A cache outage
// never blocks traffic.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), a.getUA(r))

			count, err := a.cache.Increment(r.Context(), key, limiter.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(limiter.MaxRequests-count))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}

	return unknownClient
}

// clientIP reads RemoteAddr, which chi's RealIP middleware has already
// replaced with the forwarded address when one is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
