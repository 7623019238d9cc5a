package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
)

// errorResponse is the JSON error shape shared by every non-409 failure.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service error onto the API's error taxonomy. Technique
// soft-delete conflicts carry extra fields and are written by the technique
// handlers before this runs.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{errorDetail{"not_found", "not found"}})
	case errors.Is(err, domain.ErrDuplicateName):
		writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{"duplicate_name", "a record with this name already exists"}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{"validation_error", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{"email_taken", "an account with this email already exists"}})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorDetail{"invalid_credentials", "invalid credentials"}})
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{errorDetail{"server_error", "internal server error"}})
	}
}

// writeBadRequest reports a request rejected before reaching the service
// layer (unparseable body, bad path parameter).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{errorDetail{"validation_error", message}})
}

// unwrapMessage extracts the human-readable part from a wrapped validation
// error, e.g. "service.TagService.Create: validation error: name is required"
// → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
