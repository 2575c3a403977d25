package middleware

import (
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// RateLimit counts requests per client and route in a fixed Redis window.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		cacheKey := shared.BuildCacheKey(constant.CacheKeyLimiter, clientIP(r), r.Method, routeOf(r))

		count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
		if err != nil {
			// fail open while redis is unreachable
			log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return r.URL.Path
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For can carry a chain, the first hop is the client
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, constant.Colon); idx > 0 {
		host = host[:idx]
	}

	return host
}
