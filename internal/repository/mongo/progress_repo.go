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

const progressCollectionName = "progress"

// mongoProgressRepository implements repository.ProgressRepository
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new Progress repository.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// Create inserts a progress entry. The user reference is not validated here.
func (r *mongoProgressRepository) Create(ctx context.Context, entry *domain.Progress) (*domain.Progress, error) {
	if entry.ID == "" || entry.UserID == "" {
		return nil, errors.New("progress entry requires an ID and a userId")
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByUserID retrieves a user's entries in the order they were recorded.
func (r *mongoProgressRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Progress, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.Progress{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureProgressIndexes creates necessary indexes. Call during startup.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index(),
	})
	return err
}
