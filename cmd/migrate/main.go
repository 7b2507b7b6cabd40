// Command main applies, inspects or rolls back SQL schema migrations.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"ripple/internal/config"
	"ripple/internal/database"
)

func main() {
	status := flag.Bool("status", false, "Show applied and pending migrations without changing anything")
	rollback := flag.Int("rollback", 0, "Roll back the migration with this version number")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch {
	case *status:
		st, err := database.GetSchemaStatus(ctx, db, cfg)
		if err != nil {
			log.Fatalf("Failed to read schema status: %v", err)
		}
		log.Printf("Schema mode %s (env %s), %d applied, %d pending",
			st.Mode, st.Environment, len(st.AppliedVersions), len(st.PendingMigrations))
		for _, m := range st.PendingMigrations {
			log.Printf("Pending: %s", m.String())
		}
	case *rollback != 0:
		if err := database.RollbackMigration(ctx, db, *rollback); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Printf("Rolled back migration %d", *rollback)
	default:
		if err := database.RunMigrations(ctx, db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations up to date")
	}
}
