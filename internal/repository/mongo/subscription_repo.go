package mongo

import (
	"context"
	"time"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const subscriptionCollectionName = "subscriptions"

// mongoSubscriptionRepository implements repository.SubscriptionRepository.
// Documents get a generated ObjectID; duplicates per (user, plan) are allowed.
type mongoSubscriptionRepository struct {
	collection *mongo.Collection
	plans      *mongoPlanRepository
}

// NewMongoSubscriptionRepository creates a new Subscription repository.
func NewMongoSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	return &mongoSubscriptionRepository{
		collection: db.Collection(subscriptionCollectionName),
		plans:      &mongoPlanRepository{collection: db.Collection(planCollectionName)},
	}
}

// Subscribe inserts a subscription stamped with the current time.
func (r *mongoSubscriptionRepository) Subscribe(ctx context.Context, userID, planID string) (*domain.Subscription, error) {
	sub := &domain.Subscription{
		UserID:    userID,
		PlanID:    planID,
		StartDate: time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Exists reports whether the user holds at least one subscription to the plan.
func (r *mongoSubscriptionRepository) Exists(ctx context.Context, userID, planID string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "planId": planID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByUserID returns the raw subscriptions of a user in insertion order.
func (r *mongoSubscriptionRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Subscription, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []domain.Subscription{}
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetPlansByUserID joins subscriptions to plans on the application side.
// Subscriptions pointing at deleted plans are dropped.
func (r *mongoSubscriptionRepository) GetPlansByUserID(ctx context.Context, userID string) ([]domain.Plan, error) {
	subs, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return []domain.Plan{}, nil
	}

	ids := make([]string, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.PlanID)
	}
	byID, err := r.plans.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(subs))
	for _, s := range subs {
		if p, ok := byID[s.PlanID]; ok {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

// EnsureSubscriptionIndexes creates necessary indexes. Call during startup.
func EnsureSubscriptionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Not unique: repeat purchases are kept
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "planId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
