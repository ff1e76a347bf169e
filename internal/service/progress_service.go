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

// ProgressService keeps a user's weight and BMI log.
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) ([]domain.Progress, error)
	Record(ctx context.Context, input domain.ProgressInput) (*domain.Progress, error)
}

type progressService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	latency      Latency
	now          func() time.Time
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository, latency Latency) ProgressService {
	return &progressService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		latency:      latency,
		now:          time.Now,
	}
}

// GetProgress returns the user's entries in the order recorded. Unknown users
// simply have none.
func (s *progressService) GetProgress(ctx context.Context, userID string) ([]domain.Progress, error) {
	if err := simulateLatency(ctx, s.latency.GetProgress); err != nil {
		return nil, err
	}
	return s.progressRepo.GetByUserID(ctx, userID)
}

// Record logs a measurement for an existing user. The date is truncated to
// the day; a zero date means today.
func (s *progressService) Record(ctx context.Context, input domain.ProgressInput) (*domain.Progress, error) {
	switch {
	case input.Weight <= 0:
		return nil, fmt.Errorf("%w: weight must be positive", ErrValidationFailed)
	case input.BMI < 0:
		return nil, fmt.Errorf("%w: bmi cannot be negative", ErrValidationFailed)
	}

	if err := simulateLatency(ctx, s.latency.RecordProgress); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	date = date.UTC()

	entry := &domain.Progress{
		ID:     uuid.NewString(),
		UserID: input.UserID,
		Weight: input.Weight,
		BMI:    input.BMI,
		Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}
	created, err := s.progressRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("record progress: %w", err)
	}
	return created, nil
}
