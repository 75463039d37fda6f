package main

import (
	"database/sql"
	"log"
	"strings"
	"train-dispatch-service/internal/adapters/repositories"
	"train-dispatch-service/internal/config"
	"train-dispatch-service/internal/platform/db"
)

func main() {
	config.Load()
	cfg := config.FromEnv()

	if strings.TrimSpace(cfg.DSN()) == "" {
		log.Fatalf("no connection string for driver %q (set DATABASE_URL or DB_PATH)", cfg.DBDriver)
	}

	conn, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	initAndSeed(conn, repositories.DialectFor(cfg.DBDriver), cfg.SeedPath)
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
