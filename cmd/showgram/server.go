package main

import (
	"net/http"

	"showgram/internal/app/catalog"
	"showgram/internal/app/checkins"
	"showgram/internal/app/followers"
	"showgram/internal/app/ratings"
	"showgram/internal/app/reactions"
	"showgram/internal/app/stats"
	"showgram/internal/app/system"
	"showgram/internal/app/timeline"
	"showgram/internal/app/users"
	"showgram/internal/http/middleware"
	"showgram/internal/httpapi"
	"showgram/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	userSvc := users.New(dataStore)
	followerSvc := followers.New(dataStore)
	checkinSvc := checkins.New(dataStore)
	reactionSvc := reactions.New(dataStore)
	ratingSvc := ratings.New(dataStore)
	timelineSvc := timeline.New(dataStore)
	statsSvc := stats.New(dataStore)
	catalogSvc := catalog.New(dataStore)
	systemSvc := system.New(dataStore)

	api := httpapi.New(
		userSvc,
		followerSvc,
		checkinSvc,
		reactionSvc,
		ratingSvc,
		timelineSvc,
		statsSvc,
		catalogSvc,
		systemSvc,
		cfg.UploadDir,
	)

	handler := api.Routes()
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging()(handler)
	return middleware.CORS(cfg.AllowedOrigins, handler)
}
