package service

import (
	"context"
	"time"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/config"
)

// Latency holds the simulated network delay of each API call.
// It is a test seam, not a behaviour contract: a zero value disables the delay.
type Latency struct {
	Login            time.Duration
	Signup           time.Duration
	Logout           time.Duration
	GetPlans         time.Duration
	GetPlan          time.Duration
	CreatePlan       time.Duration
	DeletePlan       time.Duration
	GetTrainerPlans  time.Duration
	PlanImageUpload  time.Duration
	Follow           time.Duration // Also used by Unfollow
	GetSubscriptions time.Duration
	Subscribe        time.Duration
	GetWorkouts      time.Duration // Also used by GetDiet
	AddWorkout       time.Duration // Also used by AddDietPlan
	GetProgress      time.Duration
	RecordProgress   time.Duration
}

// DefaultLatency mirrors the delays of the original mock API. It matches the
// latency.* defaults of config.LoadConfig.
func DefaultLatency() Latency {
	return Latency{
		Login:            500 * time.Millisecond,
		Signup:           500 * time.Millisecond,
		Logout:           200 * time.Millisecond,
		GetPlans:         300 * time.Millisecond,
		GetPlan:          200 * time.Millisecond,
		CreatePlan:       600 * time.Millisecond,
		DeletePlan:       400 * time.Millisecond,
		GetTrainerPlans:  300 * time.Millisecond,
		PlanImageUpload:  300 * time.Millisecond,
		Follow:           200 * time.Millisecond,
		GetSubscriptions: 400 * time.Millisecond,
		Subscribe:        500 * time.Millisecond,
		GetWorkouts:      300 * time.Millisecond,
		AddWorkout:       400 * time.Millisecond,
		GetProgress:      300 * time.Millisecond,
		RecordProgress:   400 * time.Millisecond,
	}
}

// LatencyFromConfig copies the configured delays.
func LatencyFromConfig(cfg config.LatencyConfig) Latency {
	return Latency{
		Login:            cfg.Login,
		Signup:           cfg.Signup,
		Logout:           cfg.Logout,
		GetPlans:         cfg.GetPlans,
		GetPlan:          cfg.GetPlan,
		CreatePlan:       cfg.CreatePlan,
		DeletePlan:       cfg.DeletePlan,
		GetTrainerPlans:  cfg.GetTrainerPlans,
		PlanImageUpload:  cfg.PlanImageUpload,
		Follow:           cfg.Follow,
		GetSubscriptions: cfg.GetSubscriptions,
		Subscribe:        cfg.Subscribe,
		GetWorkouts:      cfg.GetWorkouts,
		AddWorkout:       cfg.AddWorkout,
		GetProgress:      cfg.GetProgress,
		RecordProgress:   cfg.RecordProgress,
	}
}

// simulateLatency blocks for d. It returns ctx.Err() if the context ends
// first, in which case the caller must not touch the store.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
