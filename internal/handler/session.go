package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
)

// sessionBody is the request payload for session create and update.
// Date accepts both a bare "2006-01-02" and a full RFC 3339 timestamp, the
// two shapes date pickers produce.
type sessionBody struct {
	Date          string                    `json:"date"`
	Time          string                    `json:"time"`
	TotalDuration *int                      `json:"totalDuration"`
	Techniques    []domain.SessionTechnique `json:"techniques"`
	Note          string                    `json:"note"`
	Tags          []uuid.UUID               `json:"tags"`
}

func (b sessionBody) toSession(userID uuid.UUID) (domain.TrainingSession, error) {
	if b.Date == "" || b.Time == "" || b.TotalDuration == nil {
		return domain.TrainingSession{}, fmt.Errorf("%w: date, time, and totalDuration are required fields", domain.ErrValidation)
	}
	date, err := parseDate(b.Date)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, b.Date)
	}
	return domain.TrainingSession{
		UserID:        userID,
		Date:          date,
		Time:          b.Time,
		TotalDuration: *b.TotalDuration,
		Techniques:    b.Techniques,
		Note:          b.Note,
		TagIDs:        b.Tags,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ListSessions handles GET /api/trainingSessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	sessions, err := s.sessions.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// GetSession handles GET /api/trainingSessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid session id")
		return
	}

	session, err := s.sessions.Get(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// CreateSession handles POST /api/trainingSessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body sessionBody
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	session, err := body.toSession(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.sessions.Create(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateSession handles PUT /api/trainingSessions/{id}. The full payload is
// required, same as create.
func (s *Server) UpdateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid session id")
		return
	}

	var body sessionBody
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	session, err := body.toSession(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	session.ID = sessionID

	updated, err := s.sessions.Update(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteSession handles DELETE /api/trainingSessions/{id} — a hard delete;
// nothing references a session.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	sessionID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid session id")
		return
	}

	if err := s.sessions.Delete(r.Context(), userID, sessionID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "training session deleted"})
}
