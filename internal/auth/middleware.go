package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"gigboard/internal/utils"
)

// Middleware gates the moderation routes behind the shared admin
// secret. The credential is a fixed bearer token, not a per-user
// identity: "Authorization: Bearer <secret>" either matches or the
// request is turned away with the JSON 401 shape.
func Middleware(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		panic("admin secret not configured")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
