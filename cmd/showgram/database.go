package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	dbConnectWait = 30 * time.Second
	dbPingTimeout = 5 * time.Second
)

// openDatabase opens a pool against dsn and pings until the server answers.
// The database container may come up after the app, so failed pings are
// retried with a growing pause until dbConnectWait runs out.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	waitCtx, cancel := context.WithTimeout(ctx, dbConnectWait)
	defer cancel()

	pause := 250 * time.Millisecond
	for {
		pingCtx, cancelPing := context.WithTimeout(waitCtx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancelPing()
		if err == nil {
			return db, nil
		}

		select {
		case <-waitCtx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		case <-time.After(pause):
		}
		if pause < 4*time.Second {
			pause *= 2
		}
	}
}
