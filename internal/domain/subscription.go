package domain

import "time"

// Subscription records that a user purchased access to a plan.
// A user may hold several subscriptions to the same plan.
type Subscription struct {
	UserID    string    `bson:"userId" json:"userId"`
	PlanID    string    `bson:"planId" json:"planId"`
	StartDate time.Time `bson:"startDate" json:"startDate"`
}
