// cmd/migrate/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"fintrack-api/internal/config"
	"fintrack-api/pkg/db"
)

// Applies migrations/schema.sql and migrations/seed.sql against the database
// named by the usual DB_* environment variables. Both files are idempotent.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	database, err := db.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, file := range []string{"migrations/schema.sql", "migrations/seed.sql"} {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("error reading %s: %v", file, err)
		}

		log.Printf("Applying %s...", file)
		if _, err := database.ExecContext(ctx, string(sqlBytes)); err != nil {
			log.Fatalf("error applying %s: %v", file, err)
		}
	}

	log.Println("Migrations applied successfully")
}
