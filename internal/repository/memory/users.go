package memory

import (
	"context"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// GetUser returns the first user with the given email.
func (s *DataStore) GetUser(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u.Clone(), true
		}
	}
	return domain.User{}, false
}

// GetUserByID returns the first user with the given ID.
func (s *DataStore) GetUserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.userIndex(id); i >= 0 {
		return s.users[i].Clone(), true
	}
	return domain.User{}, false
}

// CreateUser appends user. Neither the ID nor the email is checked for
// uniqueness here.
func (s *DataStore) CreateUser(user domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user.Clone())
	return user
}

// ToggleFollow adds trainerID to the user's following set, or removes it if
// already present. Unknown users are ignored. trainerID is not checked.
func (s *DataStore) ToggleFollow(userID, trainerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(userID)
	if i < 0 {
		return
	}
	u := &s.users[i]
	if u.Following == nil {
		u.Following = []string{}
	}
	if u.IsFollowing(trainerID) {
		u.Following = without(u.Following, trainerID)
	} else {
		u.Following = append(u.Following, trainerID)
	}
}

// Follow makes sure trainerID is in the user's following set.
func (s *DataStore) Follow(userID, trainerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(userID)
	if i < 0 {
		return
	}
	u := &s.users[i]
	if u.Following == nil {
		u.Following = []string{}
	}
	if !u.IsFollowing(trainerID) {
		u.Following = append(u.Following, trainerID)
	}
}

// Unfollow makes sure trainerID is not in the user's following set.
func (s *DataStore) Unfollow(userID, trainerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(userID)
	if i < 0 {
		return
	}
	u := &s.users[i]
	if u.Following == nil {
		u.Following = []string{}
	}
	u.Following = without(u.Following, trainerID)
}

// userIndex must be called with s.mu held.
func (s *DataStore) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func without(ids []string, drop string) []string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			kept = append(kept, id)
		}
	}
	return kept
}

// userRepository implements repository.UserRepository on top of a DataStore.
type userRepository struct {
	store *DataStore
}

func (r *userRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	created := r.store.CreateUser(*user)
	return &created, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.store.GetUser(email)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.store.GetUserByID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepository) ToggleFollow(_ context.Context, userID, trainerID string) error {
	r.store.ToggleFollow(userID, trainerID)
	return nil
}

func (r *userRepository) Follow(_ context.Context, userID, trainerID string) error {
	r.store.Follow(userID, trainerID)
	return nil
}

func (r *userRepository) Unfollow(_ context.Context, userID, trainerID string) error {
	r.store.Unfollow(userID, trainerID)
	return nil
}
