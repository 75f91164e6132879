package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"showgram/internal/app"
	"showgram/internal/app/catalog"
	"showgram/internal/models"
	"showgram/internal/store"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Register(ctx context.Context, name, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.User, error)
}

// FollowerService describes follow-graph workflows.
type FollowerService interface {
	Follow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follower, error)
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
	Following(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
}

// CheckinService describes checkin workflows including artist links and photos.
type CheckinService interface {
	Create(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Checkin, error)
	ListOwn(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	AttachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error)
	DetachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) error
	ListArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error)
	AddPhoto(ctx context.Context, userID, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error)
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error
}

// ReactionService describes like and comment workflows.
type ReactionService interface {
	Like(ctx context.Context, userID, checkinID uuid.UUID) (*models.CheckinLike, error)
	Unlike(ctx context.Context, userID, likeID uuid.UUID) error
	Likes(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error)
	Comment(ctx context.Context, userID, checkinID uuid.UUID, comment string) (*models.CheckinComment, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, comment string) (*models.CheckinComment, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
	Comments(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error)
}

// RatingService describes rating and review workflows.
type RatingService interface {
	Rate(ctx context.Context, userID, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error)
	Rating(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error)
	DeleteRating(ctx context.Context, userID, checkinID uuid.UUID) error
	Review(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error)
	GetReview(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error)
	UpdateReview(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error)
	DeleteReview(ctx context.Context, userID, checkinID uuid.UUID) error
}

// TimelineService assembles the feed.
type TimelineService interface {
	List(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error)
}

// StatsService exposes read-only aggregates.
type StatsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*models.SummaryStats, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.ProfileStats, error)
}

// CatalogService is the full catalog CRUD surface.
type CatalogService = catalog.Service

// SystemTokenVerifier checks the server-to-server shared secret.
type SystemTokenVerifier interface {
	VerifySystemToken(ctx context.Context, token string) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	followers FollowerService
	checkins  CheckinService
	reactions ReactionService
	ratings   RatingService
	timeline  TimelineService
	stats     StatsService
	catalog   CatalogService
	system    SystemTokenVerifier
	uploadDir string
}

// New configures a Server with the given services.
func New(
	users UserService,
	followers FollowerService,
	checkins CheckinService,
	reactions ReactionService,
	ratings RatingService,
	timeline TimelineService,
	stats StatsService,
	catalogSvc CatalogService,
	system SystemTokenVerifier,
	uploadDir string,
) *Server {
	return &Server{
		users:     users,
		followers: followers,
		checkins:  checkins,
		reactions: reactions,
		ratings:   ratings,
		timeline:  timeline,
		stats:     stats,
		catalog:   catalogSvc,
		system:    system,
		uploadDir: uploadDir,
	}
}

// Routes builds the full route table.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)

	// Profile and users
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", s.handleUpdateProfile)
	mux.HandleFunc("GET /api/profile/stats", s.handleProfileStats)
	mux.HandleFunc("GET /api/summary-stats", s.handleSummaryStats)
	mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)
	mux.HandleFunc("GET /api/users/{id}/followers", s.handleUserFollowers)
	mux.HandleFunc("GET /api/users/{id}/following", s.handleUserFollowing)

	// Follow graph
	mux.HandleFunc("GET /api/followers", s.handleListFollowing)
	mux.HandleFunc("POST /api/followers", s.handleFollow)
	mux.HandleFunc("DELETE /api/followers/{id}", s.handleUnfollow)

	// Checkins
	mux.HandleFunc("GET /api/checkins", s.handleListCheckins)
	mux.HandleFunc("POST /api/checkins", s.handleCreateCheckin)
	mux.HandleFunc("GET /api/checkins/{id}", s.handleGetCheckin)
	mux.HandleFunc("DELETE /api/checkins/{id}", s.handleDeleteCheckin)

	// Artist checkins
	mux.HandleFunc("GET /api/artist-checkins", s.handleListArtistCheckins)
	mux.HandleFunc("POST /api/artist-checkins", s.handleAttachArtistCheckin)
	mux.HandleFunc("DELETE /api/artist-checkins", s.handleDetachArtistCheckin)

	// Likes, comments
	mux.HandleFunc("GET /api/checkin-likes", s.handleListLikes)
	mux.HandleFunc("POST /api/checkin-likes", s.handleLike)
	mux.HandleFunc("DELETE /api/checkin-likes/{id}", s.handleUnlike)
	mux.HandleFunc("GET /api/checkin-comments", s.handleListComments)
	mux.HandleFunc("POST /api/checkin-comments", s.handleCreateComment)
	mux.HandleFunc("PUT /api/checkin-comments/{id}", s.handleUpdateComment)
	mux.HandleFunc("DELETE /api/checkin-comments/{id}", s.handleDeleteComment)

	// Ratings, reviews
	mux.HandleFunc("GET /api/checkin-ratings", s.handleGetRating)
	mux.HandleFunc("POST /api/checkin-ratings", s.handleUpsertRating)
	mux.HandleFunc("DELETE /api/checkin-ratings/{checkinID}", s.handleDeleteRating)
	mux.HandleFunc("GET /api/checkin-reviews", s.handleGetReview)
	mux.HandleFunc("POST /api/checkin-reviews", s.handleCreateReview)
	mux.HandleFunc("PUT /api/checkin-reviews/{checkinID}", s.handleUpdateReview)
	mux.HandleFunc("DELETE /api/checkin-reviews/{checkinID}", s.handleDeleteReview)

	// Photos and uploads
	mux.HandleFunc("POST /api/checkin-photos", s.handleAddPhoto)
	mux.HandleFunc("DELETE /api/checkin-photos/{id}", s.handleDeletePhoto)
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.Handle("GET /storage/", http.StripPrefix("/storage/", http.FileServer(http.Dir(s.uploadDir))))

	// Timeline
	mux.HandleFunc("GET /api/timeline", s.handleTimeline)

	// Catalog, open to unauthenticated callers.
	mux.HandleFunc("GET /api/artists", s.handleListArtists)
	mux.HandleFunc("POST /api/artists", s.handleCreateArtist)
	mux.HandleFunc("GET /api/artists/{id}", s.handleGetArtist)
	mux.HandleFunc("PUT /api/artists/{id}", s.handleUpdateArtist)
	mux.HandleFunc("DELETE /api/artists/{id}", s.handleDeleteArtist)

	mux.HandleFunc("GET /api/locations", s.handleListLocations)
	mux.HandleFunc("POST /api/locations", s.handleCreateLocation)
	mux.HandleFunc("GET /api/locations/{id}", s.handleGetLocation)
	mux.HandleFunc("PUT /api/locations/{id}", s.handleUpdateLocation)
	mux.HandleFunc("DELETE /api/locations/{id}", s.handleDeleteLocation)

	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)

	mux.HandleFunc("GET /api/concerts", s.handleListConcerts)
	mux.HandleFunc("POST /api/concerts", s.handleCreateConcert)
	mux.HandleFunc("GET /api/concerts/{id}", s.handleGetConcert)
	mux.HandleFunc("PUT /api/concerts/{id}", s.handleUpdateConcert)
	mux.HandleFunc("DELETE /api/concerts/{id}", s.handleDeleteConcert)

	mux.HandleFunc("GET /api/genres", s.handleListGenres)
	mux.HandleFunc("POST /api/genres", s.handleCreateGenre)
	mux.HandleFunc("GET /api/genres/{id}", s.handleGetGenre)
	mux.HandleFunc("PUT /api/genres/{id}", s.handleUpdateGenre)
	mux.HandleFunc("DELETE /api/genres/{id}", s.handleDeleteGenre)

	mux.HandleFunc("GET /api/countries", s.handleListCountries)

	// Server-to-server public pages, gated by the system token
	mux.HandleFunc("GET /api/public/users/{username}", s.handlePublicProfile)

	return mux
}

// authenticate resolves the bearer token on the request to a user id.
func (s *Server) authenticate(r *http.Request) (uuid.UUID, error) {
	token := extractToken(r)
	if token == "" {
		return uuid.Nil, store.ErrUnauthorized
	}
	return s.users.Resolve(r.Context(), token)
}

func extractToken(r *http.Request) string {
	return parseBearerToken(r.Header.Get("Authorization"))
}

func parseBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func parseID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

func parsePageParams(r *http.Request) models.PageParams {
	var page models.PageParams
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Page = n
		}
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.PerPage = n
		}
	}
	return page.Normalize()
}

func parseCatalogFilter(r *http.Request) models.CatalogFilter {
	q := r.URL.Query()
	page := parsePageParams(r)
	return models.CatalogFilter{
		Status:        q.Get("status"),
		Search:        q.Get("search"),
		SortBy:        q.Get("sort_by"),
		SortDirection: q.Get("sort_direction"),
		Page:          page.Page,
		PerPage:       page.PerPage,
	}
}

// statusForError maps domain and store errors onto the API error taxonomy.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrUnauthorized),
		errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrCountryNotFound),
		errors.Is(err, store.ErrGenreNotFound),
		errors.Is(err, store.ErrArtistNotFound),
		errors.Is(err, store.ErrLocationNotFound),
		errors.Is(err, store.ErrEventNotFound),
		errors.Is(err, store.ErrConcertNotFound),
		errors.Is(err, store.ErrCheckinNotFound),
		errors.Is(err, store.ErrCommentNotFound),
		errors.Is(err, store.ErrLikeNotFound),
		errors.Is(err, store.ErrRatingNotFound),
		errors.Is(err, store.ErrReviewNotFound),
		errors.Is(err, store.ErrFollowNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrCheckinExists),
		errors.Is(err, store.ErrAlreadyLiked),
		errors.Is(err, store.ErrAlreadyFollowing),
		errors.Is(err, store.ErrArtistCheckinExists):
		return http.StatusConflict
	case errors.Is(err, store.ErrReviewExists),
		errors.Is(err, store.ErrUserExists),
		errors.Is(err, store.ErrUnknownSource),
		errors.Is(err, store.ErrUnknownStatus),
		errors.Is(err, store.ErrArtistNotAtConcert),
		errors.Is(err, app.ErrSelfFollow),
		errors.Is(err, app.ErrInvalidRating),
		errors.Is(err, catalog.ErrInvalidEventType):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
