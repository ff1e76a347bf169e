package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection used by the repositories.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := EnsureUserIndexes(ctx, db.Collection(userCollectionName)); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := EnsurePlanIndexes(ctx, db.Collection(planCollectionName)); err != nil {
		return fmt.Errorf("plans indexes: %w", err)
	}
	if err := EnsureSubscriptionIndexes(ctx, db.Collection(subscriptionCollectionName)); err != nil {
		return fmt.Errorf("subscriptions indexes: %w", err)
	}
	if err := EnsureWorkoutIndexes(ctx, db); err != nil {
		return fmt.Errorf("workout and diet indexes: %w", err)
	}
	if err := EnsureProgressIndexes(ctx, db.Collection(progressCollectionName)); err != nil {
		return fmt.Errorf("progress indexes: %w", err)
	}
	return nil
}

// NewRepositories returns every MongoDB-backed repository over db.
func NewRepositories(db *mongo.Database) repository.Repositories {
	return repository.Repositories{
		Users:         NewMongoUserRepository(db),
		Plans:         NewMongoPlanRepository(db),
		Subscriptions: NewMongoSubscriptionRepository(db),
		Workouts:      NewMongoWorkoutRepository(db),
		Diets:         NewMongoDietPlanRepository(db),
		Progress:      NewMongoProgressRepository(db),
	}
}

// Seed loads the sample users, plans, workouts, diets, progress entries and the
// u1 -> p1 subscription into an empty database. It does nothing when the users collection already has documents.
func Seed(ctx context.Context, db *mongo.Database) (bool, error) {
	users := db.Collection(userCollectionName)
	n, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	userDocs := []interface{}{}
	for _, u := range memory.SampleUsers() {
		userDocs = append(userDocs, u)
	}
	if _, err := users.InsertMany(ctx, userDocs); err != nil {
		return false, fmt.Errorf("seed users: %w", err)
	}

	planDocs := []interface{}{}
	for _, p := range memory.SamplePlans() {
		planDocs = append(planDocs, p)
	}
	if _, err := db.Collection(planCollectionName).InsertMany(ctx, planDocs); err != nil {
		return false, fmt.Errorf("seed plans: %w", err)
	}

	now := time.Now().UTC()
	workoutDocs := []interface{}{}
	for _, w := range memory.SampleWorkouts(now) {
		workoutDocs = append(workoutDocs, w)
	}
	if _, err := db.Collection(workoutCollectionName).InsertMany(ctx, workoutDocs); err != nil {
		return false, fmt.Errorf("seed workouts: %w", err)
	}

	dietDocs := []interface{}{}
	for _, d := range memory.SampleDietPlans(now) {
		dietDocs = append(dietDocs, d)
	}
	if _, err := db.Collection(dietCollectionName).InsertMany(ctx, dietDocs); err != nil {
		return false, fmt.Errorf("seed diets: %w", err)
	}

	progressDocs := []interface{}{}
	for _, p := range memory.SampleProgress() {
		progressDocs = append(progressDocs, p)
	}
	if _, err := db.Collection(progressCollectionName).InsertMany(ctx, progressDocs); err != nil {
		return false, fmt.Errorf("seed progress: %w", err)
	}

	if _, err := NewMongoSubscriptionRepository(db).Subscribe(ctx, "u1", "p1"); err != nil {
		return false, fmt.Errorf("seed subscriptions: %w", err)
	}
	return true, nil
}
