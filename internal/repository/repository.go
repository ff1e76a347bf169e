package repository

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Lookups of a missing user return ErrNotFound; follow operations on a
// missing user are silent no-ops.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ToggleFollow(ctx context.Context, userID, trainerID string) error
	Follow(ctx context.Context, userID, trainerID string) error
	Unfollow(ctx context.Context, userID, trainerID string) error
}

// PlanRepository defines the interface for interacting with plan data.
// Listing methods preserve insertion order.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetAll(ctx context.Context) ([]domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetByTrainerID(ctx context.Context, trainerID string) ([]domain.Plan, error)
	Delete(ctx context.Context, id string) error // Removes every plan with id; subscriptions are left alone
}

// SubscriptionRepository defines the interface for interacting with subscriptions.
type SubscriptionRepository interface {
	Subscribe(ctx context.Context, userID, planID string) (*domain.Subscription, error)
	Exists(ctx context.Context, userID, planID string) (bool, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Subscription, error)
	// GetPlansByUserID joins the user's subscriptions to plans, in subscription
	// order. Subscriptions whose plan no longer exists are dropped.
	GetPlansByUserID(ctx context.Context, userID string) ([]domain.Plan, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetByPlanID(ctx context.Context, planID string) ([]domain.Workout, error) // Get all workouts for a plan, in insertion order
}

// DietPlanRepository defines the interface for interacting with diet plan data.
type DietPlanRepository interface {
	Create(ctx context.Context, diet *domain.DietPlan) (*domain.DietPlan, error)
	GetByPlanID(ctx context.Context, planID string) ([]domain.DietPlan, error)
}

// ProgressRepository defines the interface for interacting with progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.Progress) (*domain.Progress, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Progress, error) // In the order recorded
}

// Repositories bundles one implementation of every repository over a shared backend.
type Repositories struct {
	Users         UserRepository
	Plans         PlanRepository
	Subscriptions SubscriptionRepository
	Workouts      WorkoutRepository
	Diets         DietPlanRepository
	Progress      ProgressRepository
}
