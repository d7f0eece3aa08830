package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randomtoy/klondike-go/internal/domain"
	"github.com/randomtoy/klondike-go/internal/ports"
)

// Status messages shown to the player.
const (
	StatusNewGame       = "New game started."
	StatusWin           = "You win! (All cards in foundations)"
	StatusIllegalMove   = "Illegal move."
	StatusNothingToDraw = "Nothing to draw."
	StatusNothingToFlip = "Nothing to flip."
	StatusNothingToUndo = "Nothing to undo."
	StatusNoFoundation  = "No foundation accepts that card."
)

// GameView is the application-level result of every game operation.
type GameView struct {
	ID              string
	State           domain.State
	Changed         bool
	CanUndo         bool
	Win             bool
	FoundationCount int
	Status          string
}

// GameService runs Klondike games held in a session store.
type GameService struct {
	store  ports.SessionStore
	rng    domain.RNG
	logger *slog.Logger
}

func NewGameService(store ports.SessionStore, rng domain.RNG, logger *slog.Logger) *GameService {
	return &GameService{
		store:  store,
		rng:    rng,
		logger: logger,
	}
}

// NewGame deals a fresh game in a new session.
func (s *GameService) NewGame(ctx context.Context) (GameView, error) {
	g := domain.NewGame(s.rng)
	id, err := s.store.Create(ctx, g)
	if err != nil {
		return GameView{}, fmt.Errorf("create game: %w", err)
	}
	s.logger.InfoContext(ctx, "game created", "game_id", id)

	v := view(id, g, true, "")
	v.Status = StatusNewGame
	return v, nil
}

func (s *GameService) Get(ctx context.Context, id string) (GameView, error) {
	return s.apply(ctx, id, "get", func(g *domain.Game) (bool, string) {
		return false, ""
	})
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	s.logger.InfoContext(ctx, "game deleted", "game_id", id)
	return nil
}

// Draw turns one stock card, or recycles the waste when the stock is empty.
func (s *GameService) Draw(ctx context.Context, id string) (GameView, error) {
	return s.apply(ctx, id, "draw", func(g *domain.Game) (bool, string) {
		return g.Draw(), StatusNothingToDraw
	})
}

func (s *GameService) Flip(ctx context.Context, id string, column int) (GameView, error) {
	if err := domain.TableauPile(column).Validate(); err != nil {
		return GameView{}, err
	}
	return s.apply(ctx, id, "flip", func(g *domain.Game) (bool, string) {
		return g.Flip(column), StatusNothingToFlip
	})
}

// AutoMove sends the card at from to the first foundation that takes it.
func (s *GameService) AutoMove(ctx context.Context, id string, from domain.Source) (GameView, error) {
	if err := from.Validate(); err != nil {
		return GameView{}, err
	}
	return s.apply(ctx, id, "auto-move", func(g *domain.Game) (bool, string) {
		return g.MoveToFoundation(from), StatusNoFoundation
	})
}

func (s *GameService) Move(ctx context.Context, id string, from domain.Source, to domain.Location) (GameView, error) {
	if err := from.Validate(); err != nil {
		return GameView{}, err
	}
	if err := to.Validate(); err != nil {
		return GameView{}, err
	}
	return s.apply(ctx, id, "move", func(g *domain.Game) (bool, string) {
		return g.Move(from, to), StatusIllegalMove
	})
}

func (s *GameService) Undo(ctx context.Context, id string) (GameView, error) {
	return s.apply(ctx, id, "undo", func(g *domain.Game) (bool, string) {
		return g.Undo(), StatusNothingToUndo
	})
}

// apply runs op against the stored game. op returns whether the board
// changed and the status to report if it did not.
func (s *GameService) apply(ctx context.Context, id, action string, op func(*domain.Game) (bool, string)) (GameView, error) {
	var v GameView
	err := s.store.Update(ctx, id, func(g *domain.Game) error {
		wasWin := g.IsWin()
		changed, rejected := op(g)
		status := ""
		if !changed {
			status = rejected
		}
		v = view(id, g, changed, status)

		switch {
		case changed && !wasWin && v.Win:
			s.logger.InfoContext(ctx, "game won", "game_id", id, "action", action)
		case !changed && action != "get":
			s.logger.DebugContext(ctx, "action rejected", "game_id", id, "action", action)
		}
		return nil
	})
	if err != nil {
		return GameView{}, fmt.Errorf("%s: %w", action, err)
	}
	return v, nil
}

func view(id string, g *domain.Game, changed bool, status string) GameView {
	v := GameView{
		ID:              id,
		State:           g.State(),
		Changed:         changed,
		CanUndo:         g.CanUndo(),
		Win:             g.IsWin(),
		FoundationCount: g.FoundationCount(),
		Status:          status,
	}
	if v.Status == "" {
		v.Status = foundationStatus(v.FoundationCount)
	}
	return v
}

func foundationStatus(n int) string {
	if n == domain.DeckSize {
		return StatusWin
	}
	return fmt.Sprintf("Foundations: %d/%d", n, domain.DeckSize)
}
