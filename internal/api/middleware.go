package api

import (
	"net/http"
	"strings"

	"github.com/ad-altun/PerTiTrack-sub000/internal/api/handler"
	"github.com/ad-altun/PerTiTrack-sub000/internal/auth"
	"github.com/gorilla/mux"
)

// Authentication checks for a valid Bearer token and puts the authenticated
// employee on the request context.
func Authentication(tokens *auth.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			employeeID, err := claims.EmployeeUUID()
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := handler.WithEmployeeID(r.Context(), employeeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
