package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/storage"
)

// --- Error Definitions ---
var (
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrNotImplemented     = errors.New("not implemented")
	ErrStorageUnavailable = errors.New("image storage is not configured")
)

// PlanService covers the plans namespace of the API.
type PlanService interface {
	GetAll(ctx context.Context) ([]domain.Plan, error)
	// GetByID returns nil, nil when no plan has the given ID.
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	Create(ctx context.Context, input domain.PlanInput) (*domain.Plan, error)
	// Update is part of the surface a real backend must provide; it always fails with ErrNotImplemented.
	Update(ctx context.Context, id string, patch map[string]interface{}) (*domain.Plan, error)
	Delete(ctx context.Context, id string) error
	GetByTrainer(ctx context.Context, trainerID string) ([]domain.Plan, error)
	CreateImageUpload(ctx context.Context, trainerID, fileName, contentType string) (*domain.PlanImageUpload, error)
}

// planService implements the PlanService interface.
type planService struct {
	planRepo    repository.PlanRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage // nil when image uploads are disabled
	latency     Latency
	now         func() time.Time
}

// NewPlanService creates a new instance of planService. fileStorage may be nil.
func NewPlanService(
	planRepo repository.PlanRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
	latency Latency,
) PlanService {
	return &planService{
		planRepo:    planRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
		latency:     latency,
		now:         time.Now,
	}
}

func (s *planService) GetAll(ctx context.Context) ([]domain.Plan, error) {
	if err := simulateLatency(ctx, s.latency.GetPlans); err != nil {
		return nil, err
	}
	return s.planRepo.GetAll(ctx)
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	if err := simulateLatency(ctx, s.latency.GetPlan); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return plan, err
}

// Create looks the trainer up by ID, then stores the plan with a fresh ID and
// a copy of the trainer's current name. The trainer's role is not checked.
func (s *planService) Create(ctx context.Context, input domain.PlanInput) (*domain.Plan, error) {
	switch {
	case !input.Category.Valid():
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidationFailed, input.Category)
	case input.Price < 0:
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidationFailed)
	case input.Duration < 1:
		return nil, fmt.Errorf("%w: duration must be at least 1 day", ErrValidationFailed)
	}

	if err := simulateLatency(ctx, s.latency.CreatePlan); err != nil {
		return nil, err
	}

	trainer, err := s.lookupTrainer(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}

	id, err := newUniqueID(ctx, func(ctx context.Context, id string) error {
		_, err := s.planRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		ID:          id,
		TrainerID:   input.TrainerID,
		TrainerName: trainer.Name,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Image:       input.Image,
		Category:    input.Category,
	}
	created, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return created, nil
}

func (s *planService) Update(ctx context.Context, id string, patch map[string]interface{}) (*domain.Plan, error) {
	return nil, ErrNotImplemented
}

func (s *planService) Delete(ctx context.Context, id string) error {
	if err := simulateLatency(ctx, s.latency.DeletePlan); err != nil {
		return err
	}
	return s.planRepo.Delete(ctx, id)
}

func (s *planService) GetByTrainer(ctx context.Context, trainerID string) ([]domain.Plan, error) {
	if err := simulateLatency(ctx, s.latency.GetTrainerPlans); err != nil {
		return nil, err
	}
	return s.planRepo.GetByTrainerID(ctx, trainerID)
}

// CreateImageUpload hands the trainer a presigned URL to PUT a plan cover
// image to. The returned object key is what goes into Plan.Image.
func (s *planService) CreateImageUpload(ctx context.Context, trainerID, fileName, contentType string) (*domain.PlanImageUpload, error) {
	if s.fileStorage == nil {
		return nil, ErrStorageUnavailable
	}
	if err := simulateLatency(ctx, s.latency.PlanImageUpload); err != nil {
		return nil, err
	}
	if _, err := s.lookupTrainer(ctx, trainerID); err != nil {
		return nil, err
	}

	objectKey := path.Join("plans", trainerID, uuid.NewString()+path.Ext(fileName))
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign plan image: %w", err)
	}

	return &domain.PlanImageUpload{
		ObjectKey: objectKey,
		UploadURL: uploadURL,
		ExpiresAt: s.now().Add(storage.DefaultPresignedURLExpiry).UTC(),
	}, nil
}

func (s *planService) lookupTrainer(ctx context.Context, trainerID string) (*domain.User, error) {
	trainer, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}
