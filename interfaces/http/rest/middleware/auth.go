package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mentcare/pkg/auth"
	"mentcare/pkg/common"
	"go.uber.org/zap"
)

// Authenticate validates bearer tokens and applies per-IP and per-user rate
// limits. With an empty secret (local development) authentication is skipped
// and requests run as the anonymous user. When a distributed limiter is
// supplied, user-level limits are shared across instances; it fails open on
// store errors.
func Authenticate(validator *auth.JWTValidator, distLimiter *auth.DistributedRateLimiter, devMode bool, logger *zap.Logger) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewRateLimiter(100, time.Minute)
	userLimiter := auth.NewRateLimiter(200, time.Minute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)
			if !ipLimiter.Allow(clientIP) {
				respondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			if devMode {
				ctx := common.WithUserID(r.Context(), "anonymous")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := extractToken(r)
			if token == "" {
				respondUnauthorized(w, "Missing authentication token")
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				logger.Warn("Invalid token",
					zap.Error(err),
					zap.String("ip", clientIP),
					zap.String("path", r.URL.Path),
				)
				respondUnauthorized(w, "Invalid token")
				return
			}

			if distLimiter != nil {
				allowed, err := distLimiter.Allow(r.Context(), claims.UserID)
				if err != nil {
					logger.Warn("Distributed rate limiter error", zap.Error(err))
				}
				if !allowed {
					respondWithError(w, http.StatusTooManyRequests, "User rate limit exceeded")
					return
				}
			} else if !userLimiter.Allow(claims.UserID) {
				respondWithError(w, http.StatusTooManyRequests, "User rate limit exceeded")
				return
			}

			ctx := common.WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return authHeader
	}

	if cookie, err := r.Cookie("auth_token"); err == nil {
		return cookie.Value
	}

	return ""
}

// getClientIP extracts the client IP address
func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(w http.ResponseWriter, message string) {
	respondWithError(w, http.StatusUnauthorized, message)
}

// respondWithError sends an error response with a specific status code
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    code,
	})
}
