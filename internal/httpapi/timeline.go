package httpapi

import (
	"net/http"
)

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page := parsePageParams(r)
	items, total, err := s.timeline.List(r.Context(), userID, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, items, page, total)
}

func (s *Server) handleSummaryStats(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.stats.Summary(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleProfileStats(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profileStats, err := s.stats.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileStats)
}
