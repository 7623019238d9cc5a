package handler

import "net/http"

// ListTags handles GET /api/tags. Soft-deleted tags are included; filtering
// them is the client's concern.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	tags, err := s.tags.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// CreateTag handles POST /api/tags. Creating a name held by a soft-deleted
// tag reactivates that tag instead of inserting a new row.
func (s *Server) CreateTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	tag, err := s.tags.Create(r.Context(), userID, body.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

// RenameTag handles PUT /api/tags/{id}.
func (s *Server) RenameTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	tagID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid tag id")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	tag, err := s.tags.Rename(r.Context(), userID, tagID, body.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// DeleteTag handles DELETE /api/tags/{id} — a soft delete. Sessions keep
// their references to the tag.
func (s *Server) DeleteTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	tagID, err := idParam(r)
	if err != nil {
		writeBadRequest(w, "invalid tag id")
		return
	}

	if err := s.tags.SoftDelete(r.Context(), userID, tagID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "tag soft deleted"})
}
