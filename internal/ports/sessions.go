package ports

import (
	"context"

	"github.com/randomtoy/klondike-go/internal/domain"
)

// SessionStore keeps the live games, one per player session.
type SessionStore interface {
	// Create stores g and returns the id it was assigned.
	Create(ctx context.Context, g *domain.Game) (string, error)
	// Update runs fn with exclusive access to the game identified by id.
	// Calls for the same id never overlap.
	Update(ctx context.Context, id string, fn func(g *domain.Game) error) error
	Delete(ctx context.Context, id string) error
}
