package mongo

import (
	"context"
	"errors"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user. Email is deliberately not unique-indexed, so
// duplicates are accepted the same way the in-memory store accepts them.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, errors.New("user ID is required")
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves the first user (in insertion order) with the given email.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByID retrieves a user by ID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	// $natural keeps "first match" aligned with insertion order
	opts := options.FindOne().SetSort(bson.D{{Key: "$natural", Value: 1}})
	err := r.collection.FindOne(ctx, filter, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ToggleFollow removes trainerID from the following set if present, adds it otherwise.
// A missing user is a no-op.
func (r *mongoUserRepository) ToggleFollow(ctx context.Context, userID, trainerID string) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if user.IsFollowing(trainerID) {
		return r.Unfollow(ctx, userID, trainerID)
	}
	return r.Follow(ctx, userID, trainerID)
}

// Follow adds trainerID to the user's following set.
func (r *mongoUserRepository) Follow(ctx context.Context, userID, trainerID string) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$addToSet": bson.M{"following": trainerID}} // $addToSet prevents duplicates
	_, err := r.collection.UpdateOne(ctx, filter, update)
	// MatchedCount == 0 means an unknown user, which is not an error here.
	return err
}

// Unfollow removes trainerID from the user's following set.
func (r *mongoUserRepository) Unfollow(ctx context.Context, userID, trainerID string) error {
	filter := bson.M{"_id": userID}
	update := bson.M{"$pull": bson.M{"following": trainerID}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// EnsureUserIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}}, // Login lookup; not unique
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
