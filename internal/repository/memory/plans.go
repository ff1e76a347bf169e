package memory

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// GetPlans returns every plan in insertion order.
func (s *DataStore) GetPlans() []domain.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Plan{}, s.plans...)
}

// GetPlan returns the first plan with the given ID.
func (s *DataStore) GetPlan(id string) (domain.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findPlan(id)
}

// GetTrainerPlans returns the plans owned by trainerID, in store order.
func (s *DataStore) GetTrainerPlans(trainerID string) []domain.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plans := []domain.Plan{}
	for _, p := range s.plans {
		if p.TrainerID == trainerID {
			plans = append(plans, p)
		}
	}
	return plans
}

// CreatePlan appends plan. The trainer reference is not validated.
func (s *DataStore) CreatePlan(plan domain.Plan) domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans = append(s.plans, plan)
	return plan
}

// DeletePlan removes every plan with the given ID. Subscriptions that point at
// it are kept and filtered out when read.
func (s *DataStore) DeletePlan(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Plan, 0, len(s.plans))
	for _, p := range s.plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.plans = kept
}

// findPlan must be called with s.mu held.
func (s *DataStore) findPlan(id string) (domain.Plan, bool) {
	for _, p := range s.plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// planRepository implements repository.PlanRepository on top of a DataStore.
type planRepository struct {
	store *DataStore
}

func (r *planRepository) Create(_ context.Context, plan *domain.Plan) (*domain.Plan, error) {
	created := r.store.CreatePlan(*plan)
	return &created, nil
}

func (r *planRepository) GetAll(_ context.Context) ([]domain.Plan, error) {
	return r.store.GetPlans(), nil
}

func (r *planRepository) GetByID(_ context.Context, id string) (*domain.Plan, error) {
	p, ok := r.store.GetPlan(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *planRepository) GetByTrainerID(_ context.Context, trainerID string) ([]domain.Plan, error) {
	return r.store.GetTrainerPlans(trainerID), nil
}

func (r *planRepository) Delete(_ context.Context, id string) error {
	r.store.DeletePlan(id)
	return nil
}
