package memory

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
)

// RecordProgress appends a progress entry. The user reference is not validated.
func (s *DataStore) RecordProgress(p domain.Progress) domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress = append(s.progress, p)
	return p
}

// GetUserProgress returns the entries of userID in the order they were recorded.
func (s *DataStore) GetUserProgress(userID string) []domain.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []domain.Progress{}
	for _, p := range s.progress {
		if p.UserID == userID {
			entries = append(entries, p)
		}
	}
	return entries
}

// progressRepository implements repository.ProgressRepository on top of a DataStore.
type progressRepository struct {
	store *DataStore
}

func (r *progressRepository) Create(_ context.Context, entry *domain.Progress) (*domain.Progress, error) {
	created := r.store.RecordProgress(*entry)
	return &created, nil
}

func (r *progressRepository) GetByUserID(_ context.Context, userID string) ([]domain.Progress, error) {
	return r.store.GetUserProgress(userID), nil
}
