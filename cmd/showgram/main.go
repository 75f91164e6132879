package main

import (
	"context"
	"net/http"
	"os"

	"showgram/internal/logging"
	"showgram/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger := logging.New(logging.Config{Level: "info", Format: "text"})
		logger.Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})
	logging.SetGlobalLogger(logger)

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err, "open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrap(context.Background(), dataStore); err != nil {
		logger.Fatal(err, "bootstrap")
	}

	handler := newHTTPHandler(cfg, dataStore)

	logger.Info("API listening on " + cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
