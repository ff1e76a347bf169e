package memory

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
)

// AddWorkout appends a workout. The plan reference is not validated.
func (s *DataStore) AddWorkout(w domain.Workout) domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workouts = append(s.workouts, w)
	return w
}

// GetPlanWorkouts returns the workouts of planID in insertion order.
func (s *DataStore) GetPlanWorkouts(planID string) []domain.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workouts := []domain.Workout{}
	for _, w := range s.workouts {
		if w.PlanID == planID {
			workouts = append(workouts, w)
		}
	}
	return workouts
}

// AddDietPlan appends a diet plan entry. The plan reference is not validated.
func (s *DataStore) AddDietPlan(d domain.DietPlan) domain.DietPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.diets = append(s.diets, d)
	return d
}

// GetPlanDiet returns the diet plan entries of planID in insertion order.
func (s *DataStore) GetPlanDiet(planID string) []domain.DietPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diets := []domain.DietPlan{}
	for _, d := range s.diets {
		if d.PlanID == planID {
			diets = append(diets, d)
		}
	}
	return diets
}

type workoutRepository struct {
	store *DataStore
}

func (r *workoutRepository) Create(_ context.Context, workout *domain.Workout) (*domain.Workout, error) {
	created := r.store.AddWorkout(*workout)
	return &created, nil
}

func (r *workoutRepository) GetByPlanID(_ context.Context, planID string) ([]domain.Workout, error) {
	return r.store.GetPlanWorkouts(planID), nil
}

type dietPlanRepository struct {
	store *DataStore
}

func (r *dietPlanRepository) Create(_ context.Context, diet *domain.DietPlan) (*domain.DietPlan, error) {
	created := r.store.AddDietPlan(*diet)
	return &created, nil
}

func (r *dietPlanRepository) GetByPlanID(_ context.Context, planID string) ([]domain.DietPlan, error) {
	return r.store.GetPlanDiet(planID), nil
}
