// Command main runs a single scheduled-publishing sweep and exits.
// Intended for cron or one-off operational use when the in-process
// scheduler is disabled (PUBLISH_INTERVAL_MINUTES=0).
package main

import (
	"context"
	"log"
	"time"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/repository"
	"ripple/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher := service.NewPublisherService(repository.NewPostRepository(db))
	count, err := publisher.PublishDue(ctx)
	if err != nil {
		log.Fatalf("Publish sweep failed: %v", err)
	}

	log.Printf("Publish sweep complete: %d posts published", count)
}
