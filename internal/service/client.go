package service

import (
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/storage"
)

// Client is the API facade: the method surface that stays the same whether
// it runs over the in-memory store or a real backend.
type Client struct {
	Auth     AuthService
	Plans    PlanService
	Users    UserService
	Programs ProgramService
	Progress ProgressService
}

// NewClient wires every API namespace to one set of repositories.
// fileStorage may be nil, which disables plan image uploads.
func NewClient(repos repository.Repositories, fileStorage storage.FileStorage, latency Latency) *Client {
	return &Client{
		Auth:     NewAuthService(repos.Users, latency),
		Plans:    NewPlanService(repos.Plans, repos.Users, fileStorage, latency),
		Users:    NewUserService(repos.Users, repos.Subscriptions, latency),
		Programs: NewProgramService(repos.Plans, repos.Workouts, repos.Diets, latency),
		Progress: NewProgressService(repos.Users, repos.Progress, latency),
	}
}
