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

const (
	workoutCollectionName = "workouts"
	dietCollectionName    = "diets"
)

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout. The plan reference is not validated here.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if workout.ID == "" || workout.PlanID == "" {
		return nil, errors.New("workout requires an ID and a planId")
	}
	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// GetByPlanID retrieves all workouts associated with a specific plan.
func (r *mongoWorkoutRepository) GetByPlanID(ctx context.Context, planID string) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	if err := findByPlan(ctx, r.collection, planID, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// mongoDietPlanRepository implements repository.DietPlanRepository
type mongoDietPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoDietPlanRepository creates a new DietPlan repository.
func NewMongoDietPlanRepository(db *mongo.Database) repository.DietPlanRepository {
	return &mongoDietPlanRepository{
		collection: db.Collection(dietCollectionName),
	}
}

// Create inserts a new diet plan entry. The plan reference is not validated here.
func (r *mongoDietPlanRepository) Create(ctx context.Context, diet *domain.DietPlan) (*domain.DietPlan, error) {
	if diet.ID == "" || diet.PlanID == "" {
		return nil, errors.New("diet plan requires an ID and a planId")
	}
	if _, err := r.collection.InsertOne(ctx, diet); err != nil {
		return nil, err
	}
	return diet, nil
}

// GetByPlanID retrieves the diet plan entries of a plan.
func (r *mongoDietPlanRepository) GetByPlanID(ctx context.Context, planID string) ([]domain.DietPlan, error) {
	diets := []domain.DietPlan{}
	if err := findByPlan(ctx, r.collection, planID, &diets); err != nil {
		return nil, err
	}
	return diets, nil
}

// findByPlan decodes every document of the plan, in insertion order, into results.
func findByPlan(ctx context.Context, collection *mongo.Collection, planID string, results interface{}) error {
	findOptions := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})

	cursor, err := collection.Find(ctx, bson.M{"planId": planID}, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, results); err != nil {
		return err
	}
	return cursor.Err()
}

// EnsureWorkoutIndexes creates necessary indexes for both plan-attached
// collections. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{workoutCollectionName, dietCollectionName} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			// Index for finding the entries of a specific plan
			Keys:    bson.D{{Key: "planId", Value: 1}},
			Options: options.Index(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
