package memory

import (
	"time"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
)

var sampleTrainers = []domain.User{
	{
		ID:        "t1",
		Name:      "Alex Rivera",
		Email:     "alex@fit.com",
		Role:      domain.RoleTrainer,
		Avatar:    "https://images.unsplash.com/photo-1531427186611-ecfd6d936c79?w=150&h=150&fit=crop&crop=faces",
		Following: []string{},
	},
	{
		ID:        "t2",
		Name:      "Sarah Chen",
		Email:     "sarah@fit.com",
		Role:      domain.RoleTrainer,
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=faces",
		Following: []string{},
	},
}

var sampleUsers = []domain.User{
	{
		ID:        "u1",
		Name:      "Jordan Lee",
		Email:     "jordan@user.com",
		Role:      domain.RoleUser,
		Avatar:    "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=150&h=150&fit=crop&crop=faces",
		Following: []string{"t1"},
	},
}

var samplePlans = []domain.Plan{
	{
		ID:          "p1",
		TrainerID:   "t1",
		TrainerName: "Alex Rivera",
		Title:       "30-Day Shred",
		Description: "High intensity interval training designed to burn fat fast. Includes daily workouts and meal guide.",
		Price:       49.99,
		Duration:    30,
		Image:       "/assets/generated_images/runner_tying_shoes.png",
		Category:    domain.CategoryWeightLoss,
	},
	{
		ID:          "p2",
		TrainerID:   "t1",
		TrainerName: "Alex Rivera",
		Title:       "Muscle Builder Pro",
		Description: "Hypertrophy focused program for intermediate lifters. 5 days a week split.",
		Price:       79.99,
		Duration:    60,
		Image:       "/assets/generated_images/dumbbells_gym_floor.png",
		Category:    domain.CategoryMuscle,
	},
	{
		ID:          "p3",
		TrainerID:   "t2",
		TrainerName: "Sarah Chen",
		Title:       "Morning Flow Yoga",
		Description: "Start your day with energy and balance. Beginner friendly yoga sequences.",
		Price:       29.99,
		Duration:    14,
		Image:       "/assets/generated_images/yoga_morning_sunlight.png",
		Category:    domain.CategoryYoga,
	},
	{
		ID:          "p4",
		TrainerID:   "t2",
		TrainerName: "Sarah Chen",
		Title:       "Clean Eating Reset",
		Description: "A comprehensive nutrition plan to reset your metabolism and habits.",
		Price:       19.99,
		Duration:    21,
		Image:       "/assets/generated_images/healthy_meal_prep.png",
		Category:    domain.CategoryGeneral,
	},
}

var sampleWorkouts = []domain.Workout{
	{ID: "w1", PlanID: "p1", Exercise: "Burpees", Sets: 4, Reps: 15},
	{ID: "w2", PlanID: "p1", Exercise: "Mountain Climbers", Sets: 4, Reps: 30},
	{ID: "w3", PlanID: "p2", Exercise: "Back Squat", Sets: 5, Reps: 5},
	{ID: "w4", PlanID: "p2", Exercise: "Bench Press", Sets: 5, Reps: 5},
	{ID: "w5", PlanID: "p3", Exercise: "Sun Salutation", Sets: 3, Reps: 5},
}

var sampleDiets = []domain.DietPlan{
	{ID: "d1", PlanID: "p1", Meal: "Oatmeal with berries", Calories: 350},
	{ID: "d2", PlanID: "p1", Meal: "Grilled chicken salad", Calories: 450},
	{ID: "d3", PlanID: "p4", Meal: "Green smoothie", Calories: 250},
	{ID: "d4", PlanID: "p4", Meal: "Salmon with quinoa", Calories: 550},
}

var sampleProgress = []domain.Progress{
	{ID: "pr1", UserID: "u1", Weight: 82.5, BMI: 25.5, Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	{ID: "pr2", UserID: "u1", Weight: 81.2, BMI: 25.1, Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
}

// SampleUsers returns copies of the seeded trainers followed by the seeded users.
func SampleUsers() []domain.User {
	users := make([]domain.User, 0, len(sampleTrainers)+len(sampleUsers))
	for _, u := range sampleTrainers {
		users = append(users, u.Clone())
	}
	for _, u := range sampleUsers {
		users = append(users, u.Clone())
	}
	return users
}

// SamplePlans returns a copy of the seeded plans.
func SamplePlans() []domain.Plan {
	return append([]domain.Plan(nil), samplePlans...)
}

// SampleWorkouts returns the seeded workouts stamped with createdAt.
func SampleWorkouts(createdAt time.Time) []domain.Workout {
	workouts := append([]domain.Workout(nil), sampleWorkouts...)
	for i := range workouts {
		workouts[i].CreatedAt = createdAt
	}
	return workouts
}

// SampleDietPlans returns the seeded diet plan entries stamped with createdAt.
func SampleDietPlans(createdAt time.Time) []domain.DietPlan {
	diets := append([]domain.DietPlan(nil), sampleDiets...)
	for i := range diets {
		diets[i].CreatedAt = createdAt
	}
	return diets
}

// SampleProgress returns a copy of the seeded progress entries.
func SampleProgress() []domain.Progress {
	return append([]domain.Progress(nil), sampleProgress...)
}

// Seed replaces the store contents with the sample data. The one seeded
// subscription (u1 -> p1) is stamped with the current time.
func (s *DataStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = SampleUsers()
	s.plans = SamplePlans()
	now := s.now()
	s.subscriptions = []domain.Subscription{
		{UserID: "u1", PlanID: "p1", StartDate: now},
	}
	s.workouts = SampleWorkouts(now)
	s.diets = SampleDietPlans(now)
	s.progress = SampleProgress()
}
