package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenVerifier resolves a bearer token to the user it identifies.
// Implemented by auth.Manager.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// ctxKey is unexported so no other package can forge context values.
type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user's id from a request context.
// The boolean is false on routes that never passed through NewAuthHandler.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUserID stashes a user id in the context the same way the auth
// middleware does. For tests.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// NewAuthHandler returns a middleware that requires a valid
// "Authorization: Bearer <token>" header, resolves it to a user id, and
// stores the id in the request context. Missing or invalid credentials get a
// 401 with a JSON body in the API's error shape.
func NewAuthHandler(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "missing token")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "invalid token format")
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": message},
	})
}
