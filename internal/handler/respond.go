package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/middleware"
)

// callerID pulls the authenticated user id that the auth middleware stored
// in the request context. A missing id means a route was mounted outside the
// auth group by mistake; the request is answered 401 and ok is false.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorDetail{"unauthorized", "missing token"}})
	}
	return id, ok
}

// writeJSON serializes v with the given status. Encoding failures are logged,
// not surfaced — headers are already out.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON parses the request body into v, rejecting unknown fields so a
// typoed payload fails loudly instead of half-applying.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// idParam parses the {id} chi path parameter.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
