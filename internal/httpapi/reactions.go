package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"showgram/internal/store"
)

type likeRequest struct {
	CheckinID uuid.UUID `json:"checkin_id" validate:"required"`
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req likeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	like, err := s.reactions.Like(r.Context(), userID, req.CheckinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, like)
}

func (s *Server) handleUnlike(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	likeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrLikeNotFound)
		return
	}

	if err := s.reactions.Unlike(r.Context(), userID, likeID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "like removed"})
}

func (s *Server) handleListLikes(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	likes, err := s.reactions.Likes(r.Context(), checkinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": likes})
}

type createCommentRequest struct {
	CheckinID uuid.UUID `json:"checkin_id" validate:"required"`
	Comment   string    `json:"comment" validate:"required,max=2000"`
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req createCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	comment, err := s.reactions.Comment(r.Context(), userID, req.CheckinID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

type updateCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	commentID, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrCommentNotFound)
		return
	}

	var req updateCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	comment, err := s.reactions.UpdateComment(r.Context(), userID, commentID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	commentID, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrCommentNotFound)
		return
	}

	if err := s.reactions.DeleteComment(r.Context(), userID, commentID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	comments, err := s.reactions.Comments(r.Context(), checkinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": comments})
}
