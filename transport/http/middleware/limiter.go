package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/transport/http/response"

	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit applies a fixed window per client address. Booking writes share
// the counter with reads so a single visitor cannot flood the slot RPCs.
// Requests pass when the counter cannot be reached.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	if !limits.Enable || limits.MaxRequests <= 0 || limits.WindowSeconds <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	window := time.Duration(limits.WindowSeconds) * time.Second
	maxRequests := int64(limits.MaxRequests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := a.getClientIP(r)

			count, err := a.cache.Increment(r.Context(), shared.BuildCacheKey(cacheKeyRateLimit, clientIP), window)
			if err != nil {
				log.Warn().Err(err).Str("client_ip", clientIP).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.FormatInt(maxRequests, 10))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, maxRequests-count), 10))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			if count > maxRequests {
				header.Set(constant.RequestHeaderRetryAfter, strconv.Itoa(limits.WindowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP prefers the first forwarded address set by the edge proxy.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")

		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
