package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"showgram/internal/models"
	"showgram/internal/store"
)

type artistRequest struct {
	Name        string      `json:"name" validate:"required,max=255"`
	Description string      `json:"description" validate:"max=5000"`
	Country     string      `json:"country" validate:"max=255"`
	FormedYear  *int        `json:"formed_year" validate:"omitempty,min=1700,max=2100"`
	ImageURL    string      `json:"image_url" validate:"max=2048"`
	Source      string      `json:"source" validate:"required"`
	Status      string      `json:"status" validate:"required"`
	GenreIDs    []uuid.UUID `json:"genre_ids"`
}

func (r artistRequest) toInput() models.ArtistInput {
	return models.ArtistInput{
		Name:        r.Name,
		Description: r.Description,
		CountryName: r.Country,
		FormedYear:  r.FormedYear,
		ImageURL:    r.ImageURL,
		Source:      r.Source,
		Status:      r.Status,
		GenreIDs:    r.GenreIDs,
	}
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	filter := parseCatalogFilter(r)
	artists, total, err := s.catalog.ListArtists(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, artists, models.PageParams{Page: filter.Page, PerPage: filter.PerPage}, total)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrArtistNotFound)
		return
	}
	artist, err := s.catalog.GetArtist(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	artist, err := s.catalog.CreateArtist(r.Context(), req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, artist)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrArtistNotFound)
		return
	}
	var req artistRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	artist, err := s.catalog.UpdateArtist(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrArtistNotFound)
		return
	}
	if err := s.catalog.DeleteArtist(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "artist deleted"})
}

type locationRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	City    string `json:"city" validate:"max=255"`
	Country string `json:"country" validate:"max=255"`
	Source  string `json:"source" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

func (r locationRequest) toInput() models.LocationInput {
	return models.LocationInput{
		Name:        r.Name,
		City:        r.City,
		CountryName: r.Country,
		Source:      r.Source,
		Status:      r.Status,
	}
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	filter := parseCatalogFilter(r)
	locations, total, err := s.catalog.ListLocations(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, locations, models.PageParams{Page: filter.Page, PerPage: filter.PerPage}, total)
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrLocationNotFound)
		return
	}
	location, err := s.catalog.GetLocation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (s *Server) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	location, err := s.catalog.CreateLocation(r.Context(), req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, location)
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrLocationNotFound)
		return
	}
	var req locationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	location, err := s.catalog.UpdateLocation(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, location)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrLocationNotFound)
		return
	}
	if err := s.catalog.DeleteLocation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "location deleted"})
}

type eventRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Type        string     `json:"type" validate:"required"`
	Description string     `json:"description" validate:"max=5000"`
	ImageURL    string     `json:"image_url" validate:"max=2048"`
	Source      string     `json:"source" validate:"required"`
	Status      string     `json:"status" validate:"required"`
}

func (r eventRequest) toInput() models.EventInput {
	return models.EventInput{
		Name:        r.Name,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Type:        r.Type,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Source:      r.Source,
		Status:      r.Status,
	}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	filter := parseCatalogFilter(r)
	events, total, err := s.catalog.ListEvents(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, events, models.PageParams{Page: filter.Page, PerPage: filter.PerPage}, total)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrEventNotFound)
		return
	}
	event, err := s.catalog.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	event, err := s.catalog.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrEventNotFound)
		return
	}
	var req eventRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	event, err := s.catalog.UpdateEvent(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrEventNotFound)
		return
	}
	if err := s.catalog.DeleteEvent(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "event deleted"})
}

type concertRequest struct {
	EventID    uuid.UUID   `json:"event_id" validate:"required"`
	LocationID uuid.UUID   `json:"location_id" validate:"required"`
	Date       time.Time   `json:"date" validate:"required"`
	Source     string      `json:"source" validate:"required"`
	Status     string      `json:"status" validate:"required"`
	ArtistIDs  []uuid.UUID `json:"artist_ids"`
}

func (r concertRequest) toInput() models.ConcertInput {
	return models.ConcertInput{
		EventID:    r.EventID,
		LocationID: r.LocationID,
		Date:       r.Date,
		Source:     r.Source,
		Status:     r.Status,
		ArtistIDs:  r.ArtistIDs,
	}
}

func (s *Server) handleListConcerts(w http.ResponseWriter, r *http.Request) {
	filter := parseCatalogFilter(r)
	concerts, total, err := s.catalog.ListConcerts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, concerts, models.PageParams{Page: filter.Page, PerPage: filter.PerPage}, total)
}

func (s *Server) handleGetConcert(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrConcertNotFound)
		return
	}
	concert, err := s.catalog.GetConcert(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, concert)
}

func (s *Server) handleCreateConcert(w http.ResponseWriter, r *http.Request) {
	var req concertRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	concert, err := s.catalog.CreateConcert(r.Context(), req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, concert)
}

func (s *Server) handleUpdateConcert(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrConcertNotFound)
		return
	}
	var req concertRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	concert, err := s.catalog.UpdateConcert(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, concert)
}

func (s *Server) handleDeleteConcert(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrConcertNotFound)
		return
	}
	if err := s.catalog.DeleteConcert(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "concert deleted"})
}

type genreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	filter := parseCatalogFilter(r)
	genres, total, err := s.catalog.ListGenres(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, genres, models.PageParams{Page: filter.Page, PerPage: filter.PerPage}, total)
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrGenreNotFound)
		return
	}
	genre, err := s.catalog.GetGenre(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	genre, err := s.catalog.CreateGenre(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, genre)
}

func (s *Server) handleUpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrGenreNotFound)
		return
	}
	var req genreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	genre, err := s.catalog.UpdateGenre(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

func (s *Server) handleDeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, store.ErrGenreNotFound)
		return
	}
	if err := s.catalog.DeleteGenre(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "genre deleted"})
}

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.catalog.ListCountries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": countries})
}
