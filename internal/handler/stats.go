package handler

import (
	"net/http"
	"strconv"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
)

// GetStatistics handles GET /api/statistics?value=N&unit=days|weeks|months|years&top=K.
// Defaults: the last 1 month, no technique truncation.
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	value := 1
	if raw := r.URL.Query().Get("value"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "invalid window value")
			return
		}
		value = v
	}

	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = string(domain.UnitMonths)
	}

	window, err := domain.NewStatsWindow(value, unit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	top := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		t, err := strconv.Atoi(raw)
		if err != nil || t < 0 {
			writeBadRequest(w, "invalid top value")
			return
		}
		top = t
	}

	summary, err := s.stats.Summary(r.Context(), userID, window, top)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
