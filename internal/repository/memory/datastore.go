// Package memory holds the in-memory DataStore that stands in for a real
// backend. It is the single mutable authority over users, plans,
// subscriptions and the workouts, diets and progress entries attached to them.
package memory

import (
	"sync"
	"time"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// DataStore keeps every collection in insertion-ordered slices.
// Lookups are linear scans. Values handed out are copies.
type DataStore struct {
	mu            sync.RWMutex
	users         []domain.User
	plans         []domain.Plan
	subscriptions []domain.Subscription
	workouts      []domain.Workout
	diets         []domain.DietPlan
	progress      []domain.Progress

	now func() time.Time
}

// NewDataStore returns an empty store.
func NewDataStore() *DataStore {
	return &DataStore{now: func() time.Time { return time.Now().UTC() }}
}

// NewSeededDataStore returns a store loaded with the sample data.
func NewSeededDataStore() *DataStore {
	s := NewDataStore()
	s.Seed()
	return s
}

// Users exposes the store through repository.UserRepository.
func (s *DataStore) Users() repository.UserRepository { return &userRepository{store: s} }

// Plans exposes the store through repository.PlanRepository.
func (s *DataStore) Plans() repository.PlanRepository { return &planRepository{store: s} }

// Subscriptions exposes the store through repository.SubscriptionRepository.
func (s *DataStore) Subscriptions() repository.SubscriptionRepository {
	return &subscriptionRepository{store: s}
}

// Workouts exposes the store through repository.WorkoutRepository.
func (s *DataStore) Workouts() repository.WorkoutRepository { return &workoutRepository{store: s} }

// Diets exposes the store through repository.DietPlanRepository.
func (s *DataStore) Diets() repository.DietPlanRepository { return &dietPlanRepository{store: s} }

// Progress exposes the store through repository.ProgressRepository.
func (s *DataStore) Progress() repository.ProgressRepository { return &progressRepository{store: s} }

// Repositories returns every repository view of the store.
func (s *DataStore) Repositories() repository.Repositories {
	return repository.Repositories{
		Users:         s.Users(),
		Plans:         s.Plans(),
		Subscriptions: s.Subscriptions(),
		Workouts:      s.Workouts(),
		Diets:         s.Diets(),
		Progress:      s.Progress(),
	}
}
