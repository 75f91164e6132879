package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"showgram/internal/app"
	"showgram/internal/app/catalog"
	"showgram/internal/models"
	"showgram/internal/store"
)

type stubUserService struct {
	resolveID  uuid.UUID
	resolveErr error

	user    *models.User
	userErr error

	token    string
	loginErr error

	registered *models.User
	regErr     error
}

func (s *stubUserService) Register(ctx context.Context, name, username, email, password string) (*models.User, error) {
	if s.regErr != nil {
		return nil, s.regErr
	}
	return s.registered, nil
}

func (s *stubUserService) Login(ctx context.Context, username, password string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

func (s *stubUserService) Logout(ctx context.Context, token string) error { return nil }

func (s *stubUserService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if s.resolveErr != nil {
		return uuid.Nil, s.resolveErr
	}
	return s.resolveID, nil
}

func (s *stubUserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	return s.user, nil
}

func (s *stubUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	return s.user, nil
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.User, error) {
	return s.user, nil
}

type stubFollowerService struct {
	edge      *models.Follower
	followErr error
}

func (s *stubFollowerService) Follow(ctx context.Context, followerID, followedID uuid.UUID) (*models.Follower, error) {
	if s.followErr != nil {
		return nil, s.followErr
	}
	return s.edge, nil
}

func (s *stubFollowerService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	return nil
}

func (s *stubFollowerService) Followers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	return nil, nil
}

func (s *stubFollowerService) Following(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	return nil, nil
}

type stubCheckinService struct {
	checkin   *models.Checkin
	createErr error
	getErr    error
}

func (s *stubCheckinService) Create(ctx context.Context, userID, concertID uuid.UUID) (*models.Checkin, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.checkin, nil
}

func (s *stubCheckinService) Get(ctx context.Context, id uuid.UUID) (*models.Checkin, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.checkin, nil
}

func (s *stubCheckinService) ListOwn(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	return nil, 0, nil
}

func (s *stubCheckinService) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (s *stubCheckinService) AttachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) (*models.ArtistCheckin, error) {
	return nil, nil
}

func (s *stubCheckinService) DetachArtist(ctx context.Context, userID, checkinID, artistID uuid.UUID) error {
	return nil
}

func (s *stubCheckinService) ListArtists(ctx context.Context, checkinID uuid.UUID) ([]models.Artist, error) {
	return nil, nil
}

func (s *stubCheckinService) AddPhoto(ctx context.Context, userID, checkinID uuid.UUID, photoURL string) (*models.CheckinPhoto, error) {
	return nil, nil
}

func (s *stubCheckinService) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	return nil
}

type stubReactionService struct {
	like    *models.CheckinLike
	likeErr error
}

func (s *stubReactionService) Like(ctx context.Context, userID, checkinID uuid.UUID) (*models.CheckinLike, error) {
	if s.likeErr != nil {
		return nil, s.likeErr
	}
	return s.like, nil
}

func (s *stubReactionService) Unlike(ctx context.Context, userID, likeID uuid.UUID) error { return nil }

func (s *stubReactionService) Likes(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinLike, error) {
	return nil, nil
}

func (s *stubReactionService) Comment(ctx context.Context, userID, checkinID uuid.UUID, comment string) (*models.CheckinComment, error) {
	return nil, nil
}

func (s *stubReactionService) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, comment string) (*models.CheckinComment, error) {
	return nil, nil
}

func (s *stubReactionService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	return nil
}

func (s *stubReactionService) Comments(ctx context.Context, checkinID uuid.UUID) ([]models.CheckinComment, error) {
	return nil, nil
}

type stubRatingService struct {
	rating  *models.CheckinRating
	rateErr error
}

func (s *stubRatingService) Rate(ctx context.Context, userID, checkinID uuid.UUID, rating float64) (*models.CheckinRating, error) {
	if s.rateErr != nil {
		return nil, s.rateErr
	}
	return s.rating, nil
}

func (s *stubRatingService) Rating(ctx context.Context, checkinID uuid.UUID) (*models.CheckinRating, error) {
	return s.rating, nil
}

func (s *stubRatingService) DeleteRating(ctx context.Context, userID, checkinID uuid.UUID) error {
	return nil
}

func (s *stubRatingService) Review(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	return nil, nil
}

func (s *stubRatingService) GetReview(ctx context.Context, checkinID uuid.UUID) (*models.CheckinReview, error) {
	return nil, nil
}

func (s *stubRatingService) UpdateReview(ctx context.Context, userID, checkinID uuid.UUID, review string) (*models.CheckinReview, error) {
	return nil, nil
}

func (s *stubRatingService) DeleteReview(ctx context.Context, userID, checkinID uuid.UUID) error {
	return nil
}

type stubTimelineService struct {
	items    []models.CheckinDetail
	total    int
	lastPage models.PageParams
}

func (s *stubTimelineService) List(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	s.lastPage = page
	return s.items, s.total, nil
}

type stubStatsService struct {
	summary *models.SummaryStats
	profile *models.ProfileStats
}

func (s *stubStatsService) Summary(ctx context.Context, userID uuid.UUID) (*models.SummaryStats, error) {
	return s.summary, nil
}

func (s *stubStatsService) Profile(ctx context.Context, userID uuid.UUID) (*models.ProfileStats, error) {
	return s.profile, nil
}

// stubCatalogService embeds the interface so tests only fill in what they hit.
type stubCatalogService struct {
	catalog.Service

	genre *models.Genre
}

func (s *stubCatalogService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	return s.genre, nil
}

type stubSystemVerifier struct {
	verifyErr error
}

func (s *stubSystemVerifier) VerifySystemToken(ctx context.Context, token string) error {
	return s.verifyErr
}

type testServices struct {
	users     *stubUserService
	followers *stubFollowerService
	checkins  *stubCheckinService
	reactions *stubReactionService
	ratings   *stubRatingService
	timeline  *stubTimelineService
	stats     *stubStatsService
	catalog   *stubCatalogService
	system    *stubSystemVerifier
}

func newTestServer() (*Server, *testServices) {
	svcs := &testServices{
		users:     &stubUserService{resolveID: uuid.New()},
		followers: &stubFollowerService{},
		checkins:  &stubCheckinService{},
		reactions: &stubReactionService{},
		ratings:   &stubRatingService{},
		timeline:  &stubTimelineService{},
		stats:     &stubStatsService{},
		catalog:   &stubCatalogService{},
		system:    &stubSystemVerifier{},
	}
	srv := New(
		svcs.users,
		svcs.followers,
		svcs.checkins,
		svcs.reactions,
		svcs.ratings,
		svcs.timeline,
		svcs.stats,
		svcs.catalog,
		svcs.system,
		"storage",
	)
	return srv, svcs
}

func doRequest(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func TestTimelineRequiresToken(t *testing.T) {
	srv, _ := newTestServer()

	rec := doRequest(t, srv, http.MethodGet, "/api/timeline", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTimelineRejectsStaleToken(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.users.resolveErr = store.ErrUnauthorized

	rec := doRequest(t, srv, http.MethodGet, "/api/timeline", "stale", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTimelineClampsPageSize(t *testing.T) {
	srv, svcs := newTestServer()

	rec := doRequest(t, srv, http.MethodGet, "/api/timeline?page=0&per_page=1000", "token", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svcs.timeline.lastPage.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", svcs.timeline.lastPage.Page)
	}
	if svcs.timeline.lastPage.PerPage != models.MaxPerPage {
		t.Fatalf("expected per_page clamped to %d, got %d", models.MaxPerPage, svcs.timeline.lastPage.PerPage)
	}
}

func TestLikeConflict(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.reactions.likeErr = store.ErrAlreadyLiked

	rec := doRequest(t, srv, http.MethodPost, "/api/checkin-likes", "token", map[string]string{
		"checkin_id": uuid.New().String(),
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateCheckinConflict(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.checkins.createErr = store.ErrCheckinExists

	rec := doRequest(t, srv, http.MethodPost, "/api/checkins", "token", map[string]string{
		"concert_id": uuid.New().String(),
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestFollowSelfRejected(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.followers.followErr = app.ErrSelfFollow

	rec := doRequest(t, srv, http.MethodPost, "/api/followers", "token", map[string]string{
		"followed_id": uuid.New().String(),
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetCheckinNotFound(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.checkins.getErr = store.ErrCheckinNotFound

	rec := doRequest(t, srv, http.MethodGet, "/api/checkins/"+uuid.New().String(), "token", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	srv, _ := newTestServer()

	rec := doRequest(t, srv, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Alice",
		"username": "al",
		"email":    "not-an-email",
		"password": "short",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"username", "email", "password"} {
		if len(payload.Errors[field]) == 0 {
			t.Fatalf("expected validation error for %q, got %v", field, payload.Errors)
		}
	}
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.users.registered = &models.User{ID: uuid.New(), Name: "Alice", Username: "alice"}
	svcs.users.token = "fresh-token"

	rec := doRequest(t, srv, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Alice",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token != "fresh-token" {
		t.Fatalf("unexpected token %q", payload.Token)
	}
	if payload.User == nil || payload.User.Username != "alice" {
		t.Fatalf("unexpected user %+v", payload.User)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.users.loginErr = store.ErrInvalidCredentials

	rec := doRequest(t, srv, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRateOffGrid(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.ratings.rateErr = app.ErrInvalidRating

	rec := doRequest(t, srv, http.MethodPost, "/api/checkin-ratings", "token", map[string]any{
		"checkin_id": uuid.New().String(),
		"rating":     3.3,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestForbiddenMapsTo403(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.ratings.rateErr = app.ErrForbidden

	rec := doRequest(t, srv, http.MethodPost, "/api/checkin-ratings", "token", map[string]any{
		"checkin_id": uuid.New().String(),
		"rating":     4,
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestPublicProfileRequiresSystemToken(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.users.user = &models.User{ID: uuid.New(), Username: "alice"}
	svcs.stats.profile = &models.ProfileStats{Followers: 3}

	req := httptest.NewRequest(http.MethodGet, "/api/public/users/alice", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without system token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/public/users/alice", nil)
	req.Header.Set("X-System-Token", "shared-secret")
	rec = httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with system token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPublicProfileBadSystemToken(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.system.verifyErr = store.ErrUnauthorized

	req := httptest.NewRequest(http.MethodGet, "/api/public/users/alice", nil)
	req.Header.Set("X-System-Token", "wrong")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCatalogWriteOpenWithoutToken(t *testing.T) {
	srv, svcs := newTestServer()
	svcs.catalog.genre = &models.Genre{ID: uuid.New(), Name: "shoegaze"}

	rec := doRequest(t, srv, http.MethodPost, "/api/genres", "", map[string]string{
		"name": "shoegaze",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 without a token, got %d: %s", rec.Code, rec.Body.String())
	}

	var genre models.Genre
	if err := json.Unmarshal(rec.Body.Bytes(), &genre); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if genre.Name != "shoegaze" {
		t.Fatalf("unexpected genre %+v", genre)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer()

	rec := doRequest(t, srv, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
