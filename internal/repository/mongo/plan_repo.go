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

const planCollectionName = "plans"

// mongoPlanRepository implements repository.PlanRepository
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new Plan repository.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Create inserts a new plan. The trainer reference is not validated here.
func (r *mongoPlanRepository) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if plan.ID == "" {
		return nil, errors.New("plan ID is required")
	}
	if _, err := r.collection.InsertOne(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetAll retrieves every plan in insertion order.
func (r *mongoPlanRepository) GetAll(ctx context.Context) ([]domain.Plan, error) {
	return r.find(ctx, bson.M{})
}

// GetByID retrieves a single plan by its ID.
func (r *mongoPlanRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetByTrainerID retrieves all plans owned by a trainer.
func (r *mongoPlanRepository) GetByTrainerID(ctx context.Context, trainerID string) ([]domain.Plan, error) {
	return r.find(ctx, bson.M{"trainerId": trainerID})
}

// GetByIDs retrieves the plans whose IDs are in ids, keyed by ID.
func (r *mongoPlanRepository) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Plan, error) {
	plans, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *mongoPlanRepository) find(ctx context.Context, filter bson.M) ([]domain.Plan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []domain.Plan{}
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

// Delete removes every plan with the given ID. Deleting a missing plan is not an error.
func (r *mongoPlanRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"_id": id})
	return err
}

// EnsurePlanIndexes creates necessary indexes. Call during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
