package memory

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
)

// Subscribe records a new subscription stamped with the current time. Neither
// the user nor the plan is checked, and repeats are kept as separate entries.
func (s *DataStore) Subscribe(userID, planID string) domain.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := domain.Subscription{UserID: userID, PlanID: planID, StartDate: s.now()}
	s.subscriptions = append(s.subscriptions, sub)
	return sub
}

// HasSubscription reports whether userID holds at least one subscription to planID.
func (s *DataStore) HasSubscription(userID, planID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subscriptions {
		if sub.UserID == userID && sub.PlanID == planID {
			return true
		}
	}
	return false
}

// UserSubscriptionRecords returns the raw subscriptions of userID, duplicates included.
func (s *DataStore) UserSubscriptionRecords(userID string) []domain.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := []domain.Subscription{}
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			subs = append(subs, sub)
		}
	}
	return subs
}

// GetUserSubscriptions maps each subscription of userID to its plan.
// Subscriptions whose plan has been deleted are skipped.
func (s *DataStore) GetUserSubscriptions(userID string) []domain.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plans := []domain.Plan{}
	for _, sub := range s.subscriptions {
		if sub.UserID != userID {
			continue
		}
		if p, ok := s.findPlan(sub.PlanID); ok {
			plans = append(plans, p)
		}
	}
	return plans
}

// subscriptionRepository implements repository.SubscriptionRepository on top of a DataStore.
type subscriptionRepository struct {
	store *DataStore
}

func (r *subscriptionRepository) Subscribe(_ context.Context, userID, planID string) (*domain.Subscription, error) {
	sub := r.store.Subscribe(userID, planID)
	return &sub, nil
}

func (r *subscriptionRepository) Exists(_ context.Context, userID, planID string) (bool, error) {
	return r.store.HasSubscription(userID, planID), nil
}

func (r *subscriptionRepository) GetByUserID(_ context.Context, userID string) ([]domain.Subscription, error) {
	return r.store.UserSubscriptionRecords(userID), nil
}

func (r *subscriptionRepository) GetPlansByUserID(_ context.Context, userID string) ([]domain.Plan, error) {
	return r.store.GetUserSubscriptions(userID), nil
}
