package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"showgram/internal/store"
)

type rateRequest struct {
	CheckinID uuid.UUID `json:"checkin_id" validate:"required"`
	Rating    float64   `json:"rating" validate:"required"`
}

func (s *Server) handleUpsertRating(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req rateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rating, err := s.ratings.Rate(r.Context(), userID, req.CheckinID, req.Rating)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

func (s *Server) handleGetRating(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	rating, err := s.ratings.Rating(r.Context(), checkinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

func (s *Server) handleDeleteRating(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := parseID(r, "checkinID")
	if err != nil {
		writeError(w, store.ErrRatingNotFound)
		return
	}

	if err := s.ratings.DeleteRating(r.Context(), userID, checkinID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "rating deleted"})
}

type reviewRequest struct {
	CheckinID uuid.UUID `json:"checkin_id" validate:"required"`
	Review    string    `json:"review" validate:"required,max=5000"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req reviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	review, err := s.ratings.Review(r.Context(), userID, req.CheckinID, req.Review)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	review, err := s.ratings.GetReview(r.Context(), checkinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

type updateReviewRequest struct {
	Review string `json:"review" validate:"required,max=5000"`
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := parseID(r, "checkinID")
	if err != nil {
		writeError(w, store.ErrReviewNotFound)
		return
	}

	var req updateReviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	review, err := s.ratings.UpdateReview(r.Context(), userID, checkinID, req.Review)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := parseID(r, "checkinID")
	if err != nil {
		writeError(w, store.ErrReviewNotFound)
		return
	}

	if err := s.ratings.DeleteReview(r.Context(), userID, checkinID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
