package repository

import (
	"context"
	"errors"
	"time"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InviteExpiryDays is the number of days until a pending invite expires.
const InviteExpiryDays = 7

// TeamInviteRepository defines the interface for join request and invitation data operations.
type TeamInviteRepository interface {
	Create(ctx context.Context, invite *models.TeamInvite) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvite, error)
	FindPendingByTeamAndInvitee(ctx context.Context, teamID, inviteeID primitive.ObjectID, kind models.InviteKind) (*models.TeamInvite, error)
	FindByInviteeID(ctx context.Context, inviteeID primitive.ObjectID) ([]models.TeamInvite, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvite, error)
	Resolve(ctx context.Context, id primitive.ObjectID, status, responseMessage string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// teamInviteRepository implements TeamInviteRepository using MongoDB.
type teamInviteRepository struct {
	collection *mongo.Collection
}

// NewTeamInviteRepository creates a new TeamInviteRepository.
func NewTeamInviteRepository(db *mongo.Database) TeamInviteRepository {
	return &teamInviteRepository{
		collection: db.Collection("team_invites"),
	}
}

// Create inserts a new invite into the database.
func (r *teamInviteRepository) Create(ctx context.Context, invite *models.TeamInvite) error {
	invite.ID = primitive.NewObjectID()
	invite.CreatedAt = time.Now()
	invite.ExpiresAt = time.Now().AddDate(0, 0, InviteExpiryDays)

	if invite.Status == "" {
		invite.Status = models.InviteStatusPending
	}
	if invite.Role == "" {
		invite.Role = models.RoleMember
	}

	_, err := r.collection.InsertOne(ctx, invite)
	return err
}

// FindByID retrieves an invite by ID.
func (r *teamInviteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvite, error) {
	var invite models.TeamInvite
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invite)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, err
	}

	return &invite, nil
}

// FindPendingByTeamAndInvitee returns a pending unexpired invite of the given
// kind for a specific team and invitee.
func (r *teamInviteRepository) FindPendingByTeamAndInvitee(ctx context.Context, teamID, inviteeID primitive.ObjectID, kind models.InviteKind) (*models.TeamInvite, error) {
	filter := bson.M{
		"teamId":    teamID,
		"inviteeId": inviteeID,
		"kind":      kind,
		"status":    models.InviteStatusPending,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	var invite models.TeamInvite
	err := r.collection.FindOne(ctx, filter).Decode(&invite)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, err
	}

	return &invite, nil
}

// FindByInviteeID returns all pending unexpired invites addressed to a user.
func (r *teamInviteRepository) FindByInviteeID(ctx context.Context, inviteeID primitive.ObjectID) ([]models.TeamInvite, error) {
	filter := bson.M{
		"inviteeId": inviteeID,
		"status":    models.InviteStatusPending,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []models.TeamInvite
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, err
	}

	if invites == nil {
		invites = []models.TeamInvite{}
	}

	return invites, nil
}

// FindByTeamID returns all pending unexpired invites for a team.
func (r *teamInviteRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamInvite, error) {
	filter := bson.M{
		"teamId":    teamID,
		"status":    models.InviteStatusPending,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []models.TeamInvite
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, err
	}

	if invites == nil {
		invites = []models.TeamInvite{}
	}

	return invites, nil
}

// Resolve marks a pending invite as accepted or declined.
// Only pending invites match, so a second resolution attempt fails.
func (r *teamInviteRepository) Resolve(ctx context.Context, id primitive.ObjectID, status, responseMessage string) error {
	now := time.Now()

	filter := bson.M{
		"_id":    id,
		"status": models.InviteStatusPending,
	}

	update := bson.M{
		"$set": bson.M{
			"status":          status,
			"responseMessage": responseMessage,
			"respondedAt":     now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrInviteAlreadyResolved
	}

	return nil
}

// Delete removes an invite.
func (r *teamInviteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrInviteNotFound
	}

	return nil
}

// DeleteAllByTeamID removes all invites for a team (used when deleting a team).
func (r *teamInviteRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}

// DeleteExpired removes all expired pending invites.
func (r *teamInviteRepository) DeleteExpired(ctx context.Context) (int, error) {
	filter := bson.M{
		"status":    models.InviteStatusPending,
		"expiresAt": bson.M{"$lte": time.Now()},
	}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(result.DeletedCount), nil
}
