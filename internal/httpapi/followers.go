package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"showgram/internal/store"
)

func (s *Server) handleListFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	following, err := s.followers.Following(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": following})
}

type followRequest struct {
	FollowedID uuid.UUID `json:"followed_id" validate:"required"`
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req followRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	edge, err := s.followers.Follow(r.Context(), userID, req.FollowedID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, edge)
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	followedID, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrFollowNotFound)
		return
	}

	if err := s.followers.Unfollow(r.Context(), userID, followedID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "unfollowed"})
}
