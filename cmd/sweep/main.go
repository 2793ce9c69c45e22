package main

import (
	"context"
	"log"
	"time"

	"scoutlete/internal/config"
	"scoutlete/internal/database"
	"scoutlete/internal/repository"
)

// Removes pending invites whose expiry has passed. Meant to run on a
// schedule, e.g. a daily cron job.
func main() {
	log.Println("Starting expired invite sweep...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inviteRepo := repository.NewTeamInviteRepository(mongoDB.Database)

	deleted, err := inviteRepo.DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("Failed to delete expired invites: %v", err)
	}

	log.Printf("Sweep completed, removed %d expired invites", deleted)
}
