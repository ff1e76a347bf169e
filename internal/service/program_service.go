package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrValidationFailed = errors.New("validation failed")
)

// ProgramService manages the workouts and diet plan attached to a plan.
// Entries of a deleted plan stay stored but are no longer reachable.
type ProgramService interface {
	GetWorkouts(ctx context.Context, planID string) ([]domain.Workout, error)
	AddWorkout(ctx context.Context, input domain.WorkoutInput) (*domain.Workout, error)
	GetDiet(ctx context.Context, planID string) ([]domain.DietPlan, error)
	AddDietPlan(ctx context.Context, input domain.DietPlanInput) (*domain.DietPlan, error)
}

// programService implements the ProgramService interface.
type programService struct {
	planRepo    repository.PlanRepository
	workoutRepo repository.WorkoutRepository
	dietRepo    repository.DietPlanRepository
	latency     Latency
	now         func() time.Time
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	planRepo repository.PlanRepository,
	workoutRepo repository.WorkoutRepository,
	dietRepo repository.DietPlanRepository,
	latency Latency,
) ProgramService {
	return &programService{
		planRepo:    planRepo,
		workoutRepo: workoutRepo,
		dietRepo:    dietRepo,
		latency:     latency,
		now:         time.Now,
	}
}

func (s *programService) GetWorkouts(ctx context.Context, planID string) ([]domain.Workout, error) {
	if err := simulateLatency(ctx, s.latency.GetWorkouts); err != nil {
		return nil, err
	}
	if err := s.requirePlan(ctx, planID); err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByPlanID(ctx, planID)
}

// AddWorkout appends an exercise to an existing plan.
func (s *programService) AddWorkout(ctx context.Context, input domain.WorkoutInput) (*domain.Workout, error) {
	switch {
	case input.Exercise == "":
		return nil, fmt.Errorf("%w: exercise is required", ErrValidationFailed)
	case input.Sets < 1 || input.Reps < 1:
		return nil, fmt.Errorf("%w: sets and reps must be at least 1", ErrValidationFailed)
	}

	if err := simulateLatency(ctx, s.latency.AddWorkout); err != nil {
		return nil, err
	}
	if err := s.requirePlan(ctx, input.PlanID); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		ID:        uuid.NewString(),
		PlanID:    input.PlanID,
		Exercise:  input.Exercise,
		Sets:      input.Sets,
		Reps:      input.Reps,
		CreatedAt: s.now().UTC(),
	}
	created, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return created, nil
}

func (s *programService) GetDiet(ctx context.Context, planID string) ([]domain.DietPlan, error) {
	if err := simulateLatency(ctx, s.latency.GetWorkouts); err != nil {
		return nil, err
	}
	if err := s.requirePlan(ctx, planID); err != nil {
		return nil, err
	}
	return s.dietRepo.GetByPlanID(ctx, planID)
}

// AddDietPlan appends a meal to an existing plan's nutrition guide.
func (s *programService) AddDietPlan(ctx context.Context, input domain.DietPlanInput) (*domain.DietPlan, error) {
	switch {
	case input.Meal == "":
		return nil, fmt.Errorf("%w: meal is required", ErrValidationFailed)
	case input.Calories < 0:
		return nil, fmt.Errorf("%w: calories cannot be negative", ErrValidationFailed)
	}

	if err := simulateLatency(ctx, s.latency.AddWorkout); err != nil {
		return nil, err
	}
	if err := s.requirePlan(ctx, input.PlanID); err != nil {
		return nil, err
	}

	diet := &domain.DietPlan{
		ID:        uuid.NewString(),
		PlanID:    input.PlanID,
		Meal:      input.Meal,
		Calories:  input.Calories,
		CreatedAt: s.now().UTC(),
	}
	created, err := s.dietRepo.Create(ctx, diet)
	if err != nil {
		return nil, fmt.Errorf("create diet plan: %w", err)
	}
	return created, nil
}

func (s *programService) requirePlan(ctx context.Context, planID string) error {
	if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}
