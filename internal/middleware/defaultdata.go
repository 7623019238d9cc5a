package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// DataEnsurer seeds a user's starter catalogs when they have none.
// Implemented by service.BootstrapService.
type DataEnsurer interface {
	EnsureUserData(ctx context.Context, userID uuid.UUID) error
}

// NewDefaultDataHandler returns a middleware that runs the default-data
// bootstrap as a gate in front of the routes it wraps. It must be mounted
// inside NewAuthHandler so the user id is already in the context.
//
// A bootstrap failure fails the request: serving a first-time user an empty
// technique catalog would look like data loss on the client.
func NewDefaultDataHandler(log *slog.Logger, bootstrap DataEnsurer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok {
				unauthorized(w, "missing token")
				return
			}

			if err := bootstrap.EnsureUserData(r.Context(), userID); err != nil {
				log.ErrorContext(r.Context(), "default data bootstrap failed",
					"user_id", userID,
					"error", err,
				)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
