package handler

import (
	"net/http"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/service"
)

// authResponse is the shared success body for signup and login.
type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Signup handles POST /api/auth/signup.
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Username string      `json:"username"`
		Rank     domain.Rank `json:"rank"`
		Stripes  int         `json:"stripes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user, token, err := s.auth.Signup(r.Context(), service.SignupInput{
		Email:    body.Email,
		Password: body.Password,
		Username: body.Username,
		Rank:     body.Rank,
		Stripes:  body.Stripes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user, token, err := s.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
