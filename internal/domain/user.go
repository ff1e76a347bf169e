package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
)

// User represents an account in the marketplace (either a regular user or a Trainer).
type User struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"` // Login key, assumed unique
	Role   Role   `bson:"role" json:"role"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`

	// IDs of trainers this user follows. Order carries no meaning.
	Following []string `bson:"following,omitempty" json:"following,omitempty"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

// IsFollowing reports whether trainerID is in the user's following set.
func (u *User) IsFollowing(trainerID string) bool {
	for _, id := range u.Following {
		if id == trainerID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with u. It takes u by value:
// the receiver is already the shallow copy, only Following needs duplicating.
func (u User) Clone() User {
	if u.Following != nil {
		following := make([]string, len(u.Following))
		copy(following, u.Following)
		u.Following = following
	}
	return u
}
