package domain

import "time"

// Progress is a body measurement a user logged on a given day.
type Progress struct {
	ID     string    `bson:"_id" json:"id"`
	UserID string    `bson:"userId" json:"userId"`
	Weight float64   `bson:"weight" json:"weight"` // kg
	BMI    float64   `bson:"bmi" json:"bmi"`
	Date   time.Time `bson:"date" json:"date"` // Midnight UTC of the measurement day
}

// ProgressInput carries a new measurement. A zero Date means today.
type ProgressInput struct {
	UserID string
	Weight float64
	BMI    float64
	Date   time.Time
}
