package httpapi

import (
	"net/http"

	"showgram/internal/models"
	"showgram/internal/store"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Bio      string `json:"bio" validate:"max=1000"`
	City     string `json:"city" validate:"max=255"`
	Country  string `json:"country" validate:"max=255"`
	PhotoURL string `json:"photo_url" validate:"max=2048"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userID, models.ProfileUpdate{
		Name:        req.Name,
		Bio:         req.Bio,
		City:        req.City,
		CountryName: req.Country,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrUserNotFound)
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	user.Email = ""

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserFollowers(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrUserNotFound)
		return
	}

	followers, err := s.followers.Followers(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": followers})
}

func (s *Server) handleUserFollowing(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrUserNotFound)
		return
	}

	following, err := s.followers.Following(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": following})
}

// handlePublicProfile serves a read-only profile page for server-to-server
// callers holding the shared system token.
func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-System-Token")
	if token == "" {
		writeError(w, store.ErrUnauthorized)
		return
	}
	if err := s.system.VerifySystemToken(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	user.Email = ""

	profileStats, err := s.stats.Profile(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	recent, _, err := s.checkins.ListOwn(r.Context(), user.ID, models.PageParams{}.Normalize())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":     user,
		"stats":    profileStats,
		"checkins": recent,
	})
}
