package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/iris/controllers"
	"github.com/blogem/iris/userctx"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// AuditLogger logs every POST/PUT/DELETE request with the acting user and client address.
// It must run inside RequireAuth to see the user.
func AuditLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			attrs := []any{
				"user", userctx.GetUsername(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"ip", getIPAddress(r),
				"user_agent", r.UserAgent(),
				"request_id", chimiddleware.GetReqID(r.Context()),
				"duration", time.Since(start),
			}
			if degraded := ww.Header().Get(controllers.PersistenceHeader); degraded != "" {
				attrs = append(attrs, "persistence", degraded)
			}
			logger.Info("mutation", attrs...)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
