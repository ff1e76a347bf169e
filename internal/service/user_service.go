package service

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// UserService covers the users namespace of the API.
// None of its methods validate that the referenced users or plans exist.
type UserService interface {
	Follow(ctx context.Context, userID, trainerID string) error
	Unfollow(ctx context.Context, userID, trainerID string) error
	GetSubscriptions(ctx context.Context, userID string) ([]domain.Plan, error)
	Subscribe(ctx context.Context, userID, planID string) error
}

// userService implements the UserService interface.
type userService struct {
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	latency          Latency
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, subscriptionRepo repository.SubscriptionRepository, latency Latency) UserService {
	return &userService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		latency:          latency,
	}
}

// Follow adds trainerID to the user's following set. Following twice is a no-op.
func (s *userService) Follow(ctx context.Context, userID, trainerID string) error {
	if err := simulateLatency(ctx, s.latency.Follow); err != nil {
		return err
	}
	return s.userRepo.Follow(ctx, userID, trainerID)
}

// Unfollow removes trainerID from the user's following set. Unfollowing twice is a no-op.
func (s *userService) Unfollow(ctx context.Context, userID, trainerID string) error {
	if err := simulateLatency(ctx, s.latency.Follow); err != nil {
		return err
	}
	return s.userRepo.Unfollow(ctx, userID, trainerID)
}

// GetSubscriptions returns the plans the user is subscribed to. Subscriptions
// to deleted plans are left out.
func (s *userService) GetSubscriptions(ctx context.Context, userID string) ([]domain.Plan, error) {
	if err := simulateLatency(ctx, s.latency.GetSubscriptions); err != nil {
		return nil, err
	}
	return s.subscriptionRepo.GetPlansByUserID(ctx, userID)
}

// Subscribe records a new subscription. Repeat purchases are kept as separate
// subscriptions (renewals).
func (s *userService) Subscribe(ctx context.Context, userID, planID string) error {
	if err := simulateLatency(ctx, s.latency.Subscribe); err != nil {
		return err
	}
	_, err := s.subscriptionRepo.Subscribe(ctx, userID, planID)
	return err
}
