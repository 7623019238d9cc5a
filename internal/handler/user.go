package handler

import (
	"net/http"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/service"
)

// GetMe handles GET /api/users/me.
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := s.users.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMe handles PUT /api/users/me. Omitted fields keep their stored value.
func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		Username string      `json:"username"`
		Rank     domain.Rank `json:"rank"`
		Stripes  *int        `json:"stripes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Username: body.Username,
		Rank:     body.Rank,
		Stripes:  body.Stripes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ChangePassword handles POST /api/users/me/password.
func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := s.users.ChangePassword(r.Context(), userID, body.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// DeleteMe handles DELETE /api/users/me.
func (s *Server) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := s.users.Delete(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}
