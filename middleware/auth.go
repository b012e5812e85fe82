package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pveldman/tasklane/auth"
)

// ContextKey is a custom type to avoid context key collisions.
type ContextKey string

// UserIDKey is the key under which the authenticated user's id is stored in
// the request context.
const UserIDKey ContextKey = "userId"

// UserID returns the authenticated user id stashed by Auth, or "" when the
// request never passed through it.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

// Auth checks for a valid bearer token in the Authorization header and adds
// the user id to the request context. Requests without a resolvable user id
// are rejected with 401 before reaching the handler.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid Authorization header format")
				return
			}

			userID, err := auth.UserIDFromToken(secret, parts[1])
			if err != nil {
				log.Printf("Token rejected: %v", err)
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
