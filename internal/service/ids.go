package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

const maxIDAttempts = 5

var ErrIDExhausted = errors.New("could not generate a unique identifier")

// newUniqueID draws random UUIDs until lookup reports the ID as unused.
func newUniqueID(ctx context.Context, lookup func(ctx context.Context, id string) error) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := uuid.NewString()
		err := lookup(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking identifier: %w", err)
		}
	}
	return "", ErrIDExhausted
}
