package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByJoinCode(ctx context.Context, joinCode string) (*models.Team, error)
	FindAll(ctx context.Context, filter *models.TeamFilter, page, limit int) ([]models.Team, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error)
	SetMemberCount(ctx context.Context, id primitive.ObjectID, count int) error
	IncrementMemberCountIfBelowCap(ctx context.Context, id primitive.ObjectID) error
	DecrementMemberCount(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team into the database.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()

	if team.Status == "" {
		team.Status = models.TeamStatusActive
	}
	if team.Requirements == nil {
		team.Requirements = []string{}
	}
	if team.RequiredSkills == nil {
		team.RequiredSkills = []string{}
	}

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByJoinCode retrieves a team by its join code.
// Codes are stored uppercase; lookup is case-insensitive.
func (r *teamRepository) FindByJoinCode(ctx context.Context, joinCode string) (*models.Team, error) {
	filter := bson.M{"joinCode": strings.ToUpper(joinCode)}

	var team models.Team
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvalidJoinCode
		}
		return nil, err
	}

	return &team, nil
}

// FindAll returns paginated public active teams matching the filter.
func (r *teamRepository) FindAll(ctx context.Context, filter *models.TeamFilter, page, limit int) ([]models.Team, int, error) {
	skip := (page - 1) * limit

	query := bson.M{
		"isPublic": true,
		"status":   models.TeamStatusActive,
	}

	if filter != nil {
		if filter.Sport != "" {
			query["sport"] = filter.Sport
		}
		if filter.Location != "" {
			query["location"] = filter.Location
		}
		if filter.ExperienceLevel != "" {
			query["experienceLevel"] = filter.ExperienceLevel
		}
		if len(filter.ExcludeTeamIDs) > 0 {
			query["_id"] = bson.M{"$nin": filter.ExcludeTeamIDs}
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, int(total), nil
}

// Update updates the mutable fields of a team.
func (r *teamRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Requirements != nil {
		updateDoc["requirements"] = *update.Requirements
	}
	if update.RequiredSkills != nil {
		updateDoc["requiredSkills"] = *update.RequiredSkills
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// SetMemberCount overwrites the stored member count.
// Used to reconcile the counter against the membership ledger.
func (r *teamRepository) SetMemberCount(ctx context.Context, id primitive.ObjectID, count int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"currentMembers": count}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

// IncrementMemberCountIfBelowCap atomically claims a seat on the team.
// The filter only matches while currentMembers < maxMembers, so two
// concurrent joins for the last seat cannot both succeed.
func (r *teamRepository) IncrementMemberCountIfBelowCap(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":   id,
		"$expr": bson.M{"$lt": bson.A{"$currentMembers", "$maxMembers"}},
	}

	update := bson.M{
		"$inc": bson.M{"currentMembers": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.ModifiedCount == 0 {
		// Either the team is gone or the last seat was taken.
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return findErr
		}
		return apperrors.ErrTeamFull
	}

	return nil
}

// DecrementMemberCount releases a seat. The counter never goes below zero.
func (r *teamRepository) DecrementMemberCount(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":            id,
		"currentMembers": bson.M{"$gt": 0},
	}

	update := bson.M{
		"$inc": bson.M{"currentMembers": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// Delete removes a team from the database.
func (r *teamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}
