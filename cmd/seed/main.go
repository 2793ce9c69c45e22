package main

import (
	"context"
	"log"
	"time"

	"scoutlete/internal/config"
	"scoutlete/internal/database"
	"scoutlete/internal/models"
	"scoutlete/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	teamIDs := seedTeams(ctx, mongoDB.Database, userIDs)
	seedInvites(ctx, mongoDB.Database, teamIDs, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")
	password3, _ := auth.HashPassword("password789")

	now := time.Now()

	users := []interface{}{
		models.User{
			Email:     "alice@example.com",
			Password:  password1,
			Name:      "Alice Johnson",
			Sport:     "badminton",
			Location:  "Austin, TX",
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Email:     "bob@example.com",
			Password:  password2,
			Name:      "Bob Smith",
			Sport:     "badminton",
			Location:  "Austin, TX",
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Email:     "carol@example.com",
			Password:  password3,
			Name:      "Carol Diaz",
			Sport:     "soccer",
			Location:  "Dallas, TX",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedTeams(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	teams := db.Collection("teams")
	members := db.Collection("team_members")

	if _, err := teams.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear teams: %v", err)
	}
	if _, err := members.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear team members: %v", err)
	}

	now := time.Now()

	seedTeams := []interface{}{
		models.Team{
			Name:            "Downtown Smashers",
			Description:     "Competitive badminton doubles team",
			Sport:           "badminton",
			Location:        "Austin, TX",
			ExperienceLevel: "intermediate",
			MaxMembers:      6,
			CurrentMembers:  2,
			IsPublic:        true,
			JoinCode:        "K7KQ2B9X",
			Status:          models.TeamStatusActive,
			CreatedBy:       userIDs[0],
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		models.Team{
			Name:            "Dallas Strikers",
			Description:     "Weekend soccer squad",
			Sport:           "soccer",
			Location:        "Dallas, TX",
			ExperienceLevel: "beginner",
			MaxMembers:      11,
			CurrentMembers:  1,
			IsPublic:        true,
			JoinCode:        "M3NP8R2T",
			Status:          models.TeamStatusActive,
			CreatedBy:       userIDs[2],
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	result, err := teams.InsertMany(ctx, seedTeams)
	if err != nil {
		log.Fatalf("Failed to seed teams: %v", err)
	}

	var teamIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		teamIDs = append(teamIDs, id.(primitive.ObjectID))
	}

	memberships := []interface{}{
		models.TeamMember{TeamID: teamIDs[0], UserID: userIDs[0], Role: models.RoleCaptain, Status: models.MemberStatusActive, JoinedAt: now},
		models.TeamMember{TeamID: teamIDs[0], UserID: userIDs[1], Role: models.RoleMember, Status: models.MemberStatusActive, JoinedAt: now},
		models.TeamMember{TeamID: teamIDs[1], UserID: userIDs[2], Role: models.RoleCaptain, Status: models.MemberStatusActive, JoinedAt: now},
	}

	if _, err := members.InsertMany(ctx, memberships); err != nil {
		log.Fatalf("Failed to seed team members: %v", err)
	}

	log.Printf("Seeded %d teams with %d memberships", len(teamIDs), len(memberships))

	return teamIDs
}

func seedInvites(ctx context.Context, db *mongo.Database, teamIDs, userIDs []primitive.ObjectID) {
	invites := db.Collection("team_invites")

	if _, err := invites.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear team invites: %v", err)
	}

	now := time.Now()

	// Carol asks to join the badminton team; Alice invites Carol's teammate
	// slot stays open until someone answers.
	seedInvites := []interface{}{
		models.TeamInvite{
			TeamID:    teamIDs[0],
			InviteeID: userIDs[2],
			InviterID: userIDs[2],
			Kind:      models.KindJoinRequest,
			Message:   "Carol Diaz wants to join your team",
			Status:    models.InviteStatusPending,
			Role:      models.RoleMember,
			ExpiresAt: now.Add(7 * 24 * time.Hour),
			CreatedAt: now,
		},
		models.TeamInvite{
			TeamID:    teamIDs[1],
			InviteeID: userIDs[1],
			InviterID: userIDs[2],
			Kind:      models.KindInvitation,
			Message:   "You have been invited to join Dallas Strikers",
			Status:    models.InviteStatusPending,
			Role:      models.RoleMember,
			ExpiresAt: now.Add(7 * 24 * time.Hour),
			CreatedAt: now,
		},
	}

	result, err := invites.InsertMany(ctx, seedInvites)
	if err != nil {
		log.Fatalf("Failed to seed team invites: %v", err)
	}

	log.Printf("Seeded %d team invites", len(result.InsertedIDs))
}
