package main

import (
	"context"
	"log"
	"time"

	"scoutlete/internal/config"
	"scoutlete/internal/database"
	"scoutlete/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Teams indexes
	createIndex(ctx, db, "teams", bson.D{{Key: "joinCode", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "teams", bson.D{
		{Key: "isPublic", Value: 1},
		{Key: "status", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "teams", bson.D{{Key: "sport", Value: 1}}, nil)

	// Team members indexes
	createIndex(ctx, db, "team_members", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "userId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "team_members", bson.D{{Key: "userId", Value: 1}}, nil)

	// Team invites indexes. At most one pending row per (team, invitee, kind).
	createIndex(ctx, db, "team_invites", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "inviteeId", Value: 1},
		{Key: "kind", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
		PartialFilterExpression: bson.D{
			{Key: "status", Value: models.InviteStatusPending},
		},
	})
	createIndex(ctx, db, "team_invites", bson.D{{Key: "inviteeId", Value: 1}}, nil)
	createIndex(ctx, db, "team_invites", bson.D{{Key: "expiresAt", Value: 1}}, nil)

	// Notifications indexes
	createIndex(ctx, db, "notifications", bson.D{
		{Key: "userId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "notifications", bson.D{
		{Key: "userId", Value: 1},
		{Key: "read", Value: 1},
	}, nil)

	// Refresh tokens indexes
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "token", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "expiresAt", Value: 1}}, &options.IndexOptions{
		ExpireAfterSeconds: ptrInt32(0),
	})
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrInt32(i int32) *int32 {
	return &i
}
