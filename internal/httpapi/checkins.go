package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"showgram/internal/store"
)

type createCheckinRequest struct {
	ConcertID uuid.UUID `json:"concert_id" validate:"required"`
}

func (s *Server) handleCreateCheckin(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req createCheckinRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	checkin, err := s.checkins.Create(r.Context(), userID, req.ConcertID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkin)
}

func (s *Server) handleListCheckins(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page := parsePageParams(r)
	items, total, err := s.checkins.ListOwn(r.Context(), userID, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, items, page, total)
}

func (s *Server) handleGetCheckin(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	checkin, err := s.checkins.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkin)
}

func (s *Server) handleDeleteCheckin(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	if err := s.checkins.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "checkin deleted"})
}

type artistCheckinRequest struct {
	CheckinID uuid.UUID `json:"checkin_id" validate:"required"`
	ArtistID  uuid.UUID `json:"artist_id" validate:"required"`
}

func (s *Server) handleAttachArtistCheckin(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req artistCheckinRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	link, err := s.checkins.AttachArtist(r.Context(), userID, req.CheckinID, req.ArtistID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

func (s *Server) handleDetachArtistCheckin(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}
	artistID, err := uuid.Parse(r.URL.Query().Get("artist_id"))
	if err != nil {
		writeError(w, store.ErrArtistNotFound)
		return
	}

	if err := s.checkins.DetachArtist(r.Context(), userID, checkinID, artistID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "artist removed from checkin"})
}

func (s *Server) handleListArtistCheckins(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, err)
		return
	}

	checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	artists, err := s.checkins.ListArtists(r.Context(), checkinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": artists})
}

type addPhotoRequest struct {
	CheckinID uuid.UUID `json:"checkin_id" validate:"required"`
	PhotoURL  string    `json:"photo_url" validate:"required,max=2048"`
}

func (s *Server) handleAddPhoto(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req addPhotoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	photo, err := s.checkins.AddPhoto(r.Context(), userID, req.CheckinID, req.PhotoURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, photo)
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	photoID, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrCheckinNotFound)
		return
	}

	if err := s.checkins.DeletePhoto(r.Context(), userID, photoID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "photo deleted"})
}
