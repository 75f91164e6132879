// Command systoken sets the shared system token used by trusted
// server-to-server callers. Only the bcrypt hash is stored.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"showgram/internal/app/system"
	"showgram/internal/store"
)

func main() {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL env var is required")
	}
	token := os.Getenv("SYSTEM_TOKEN")
	if token == "" {
		log.Fatal("SYSTEM_TOKEN env var is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	svc := system.New(store.New(db))
	if err := svc.SetSystemToken(context.Background(), token); err != nil {
		log.Fatalf("set system token: %v", err)
	}

	log.Println("System token updated")
}
