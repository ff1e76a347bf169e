package domain

import "time"

// Workout is one exercise prescription within a Plan.
type Workout struct {
	ID        string    `bson:"_id" json:"id"`
	PlanID    string    `bson:"planId" json:"planId"`     // Link back to the plan
	Exercise  string    `bson:"exercise" json:"exercise"` // e.g., "Burpees", "Back Squat"
	Sets      int       `bson:"sets" json:"sets"`
	Reps      int       `bson:"reps" json:"reps"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// WorkoutInput carries the trainer-supplied fields of a new Workout.
type WorkoutInput struct {
	PlanID   string
	Exercise string
	Sets     int
	Reps     int
}

// DietPlan is one meal of a Plan's nutrition guide.
type DietPlan struct {
	ID        string    `bson:"_id" json:"id"`
	PlanID    string    `bson:"planId" json:"planId"`
	Meal      string    `bson:"meal" json:"meal"`
	Calories  int       `bson:"calories" json:"calories"` // kcal
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DietPlanInput carries the trainer-supplied fields of a new DietPlan.
type DietPlanInput struct {
	PlanID   string
	Meal     string
	Calories int
}
