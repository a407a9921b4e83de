package middleware

import (
	"net/http"

	"github.com/blogem/iris/services"
	"github.com/blogem/iris/userctx"
)

// RequireAuth ensures the token slot is set.
// Unauthenticated requests get a 401 JSON body instead of reaching the handler.
func RequireAuth(auth services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.CurrentUser(r.Context())
			if user == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}

			// Add user to request context for use in handlers
			ctx := userctx.SetUserID(r.Context(), user.ID)
			ctx = userctx.SetUsername(ctx, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
