package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
)

// techniqueBody is the request payload for create, update, and replace.
// Replace additionally names the draft's own id, which is accepted and left
// untouched — only the path id is written to.
type techniqueBody struct {
	Name                   string      `json:"name"`
	Description            string      `json:"description"`
	Tags                   []uuid.UUID `json:"tags"`
	IDOfTechniqueToReplace *uuid.UUID  `json:"idOfTechniqueToReplace,omitempty"`
}

func (b techniqueBody) draft() domain.TechniqueDraft {
	return domain.TechniqueDraft{
		Name:        b.Name,
		Description: b.Description,
		TagIDs:      b.Tags,
	}
}

// ListTechniques handles GET /api/techniques. Returns active and soft-deleted
// records; filtering is a client concern.
func (s *Server) ListTechniques(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	techniques, err := s.techniques.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, techniques)
}

// GetTechnique handles GET /api/techniques/{id}.
func (s *Server) GetTechnique(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	techniqueID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid technique id")
		return
	}

	technique, err := s.techniques.Get(r.Context(), userID, techniqueID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, technique)
}

// CreateTechnique handles POST /api/techniques.
//
// A name collision with a soft-deleted technique answers 409 with the
// existing record's id so the client can offer restore-or-replace; the
// submitted draft is not persisted.
func (s *Server) CreateTechnique(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body techniqueBody
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	technique, err := s.techniques.Create(r.Context(), userID, body.draft())
	if err != nil {
		if conflict, ok := domain.AsSoftDeletedConflict(err); ok {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message":             conflict.Error(),
				"existingTechniqueId": conflict.ExistingID,
				"conflict":            true,
			})
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, technique)
}

// UpdateTechnique handles PUT /api/techniques/{id}.
//
// The 409 body carries both ids: the soft-deleted record owning the name and
// the record being edited, so the client can resolve without losing the edit.
func (s *Server) UpdateTechnique(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	techniqueID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid technique id")
		return
	}

	var body techniqueBody
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	technique, err := s.techniques.Update(r.Context(), userID, techniqueID, body.draft())
	if err != nil {
		if conflict, ok := domain.AsSoftDeletedConflict(err); ok {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message":             conflict.Error(),
				"existingTechniqueId": conflict.ExistingID,
				"editingTechniqueId":  techniqueID,
				"conflict":            true,
				"action":              "update_or_restore",
			})
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, technique)
}

// RestoreTechnique handles PUT /api/techniques/{id}/restore — the "keep the
// old one as it was" conflict resolution.
func (s *Server) RestoreTechnique(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	techniqueID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid technique id")
		return
	}

	technique, err := s.techniques.Restore(r.Context(), userID, techniqueID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, technique)
}

// ReplaceTechnique handles PUT /api/techniques/{id}/replace — the "overwrite
// the old one with my draft" conflict resolution. The path id is the
// soft-deleted record to overwrite; its identity is kept so sessions
// referencing it keep resolving.
func (s *Server) ReplaceTechnique(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	targetID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid technique id")
		return
	}

	var body techniqueBody
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	technique, err := s.techniques.Replace(r.Context(), userID, targetID, body.draft())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, technique)
}

// DeleteTechnique handles DELETE /api/techniques/{id} — a soft delete.
func (s *Server) DeleteTechnique(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	techniqueID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid technique id")
		return
	}

	if err := s.techniques.SoftDelete(r.Context(), userID, techniqueID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "technique soft deleted"})
}
