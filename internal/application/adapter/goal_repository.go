// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// GoalRepository defines the interface for saving goal persistence operations.
type GoalRepository interface {
	// Create creates a new saving goal in the database.
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// FindByID retrieves a saving goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingGoal, error)

	// FindByUser retrieves all saving goals for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error)

	// Update updates an existing saving goal in the database.
	Update(ctx context.Context, goal *entity.SavingGoal) error

	// Delete soft-deletes a saving goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
