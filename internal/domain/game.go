package domain

// Game is one player's session: the live board plus its undo history.
// A Game is not safe for concurrent use; callers serialize access.
type Game struct {
	state   State
	history History
	rng     RNG
}

// NewGame deals a fresh shuffled game.
func NewGame(rng RNG) *Game {
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// FromState resumes play from an existing board with an empty history.
func FromState(rng RNG, s State) *Game {
	return &Game{state: s.Clone(), rng: rng}
}

// Reset shuffles and deals a new game and forgets all history.
func (g *Game) Reset() {
	deck := MakeDeck()
	Shuffle(deck, g.rng)
	g.state = Deal(deck)
	g.history.Clear()
}

// State returns a copy of the live board.
func (g *Game) State() State {
	return g.state.Clone()
}

func (g *Game) IsWin() bool          { return g.state.IsWin() }
func (g *Game) FoundationCount() int { return g.state.FoundationCount() }
func (g *Game) CanUndo() bool        { return g.history.Len() > 0 }
func (g *Game) HistoryLen() int      { return g.history.Len() }

// Draw turns the top stock card onto the waste. With an empty stock it
// recycles the waste: reversed, turned face down, and moved to the stock.
// It reports false when both piles are empty.
func (g *Game) Draw() bool {
	s := &g.state
	switch {
	case len(s.Stock) > 0:
		g.record()
		c := s.removeCards(StockPile(), len(s.Stock)-1)
		c[0].FaceUp = true
		s.addCards(WastePile(), c)
		return true
	case len(s.Waste) > 0:
		g.record()
		recycled := s.removeCards(WastePile(), 0)
		for i, j := 0, len(recycled)-1; i < j; i, j = i+1, j-1 {
			recycled[i], recycled[j] = recycled[j], recycled[i]
		}
		for i := range recycled {
			recycled[i].FaceUp = false
		}
		s.addCards(StockPile(), recycled)
		return true
	default:
		return false
	}
}

// Flip turns the face-down top card of a tableau column face up.
func (g *Game) Flip(column int) bool {
	c := top(g.state.Pile(TableauPile(column)))
	if c == nil || c.FaceUp {
		return false
	}
	g.record()
	return g.state.TryFlipTableauTop(column)
}

// MoveToFoundation sends the single card at src to the first foundation,
// in order 0..3, that accepts it.
func (g *Game) MoveToFoundation(src Source) bool {
	stack := g.state.MovableStack(src)
	if len(stack) != 1 {
		return false
	}
	for i := range NumFoundations {
		dst := FoundationPile(i)
		if dst == src.Location {
			continue
		}
		if CanPlaceOnFoundation(stack[0], top(g.state.Pile(dst))) {
			g.transfer(src, dst)
			return true
		}
	}
	return false
}

// Move carries the stack picked up at src onto dst. Foundations take one
// card at a time; tableau columns check only the lead card of the stack.
func (g *Game) Move(src Source, dst Location) bool {
	if src.Location == dst || dst.Validate() != nil {
		return false
	}
	stack := g.state.MovableStack(src)
	if len(stack) == 0 {
		return false
	}

	destTop := top(g.state.Pile(dst))
	switch dst.Kind {
	case Foundation:
		if len(stack) != 1 || !CanPlaceOnFoundation(stack[0], destTop) {
			return false
		}
	case Tableau:
		if !CanPlaceOnTableau(stack[0], destTop) {
			return false
		}
	case Stock, Waste:
		return false
	default:
		return false
	}

	g.transfer(src, dst)
	return true
}

// Undo restores the board to the snapshot taken before the last change.
func (g *Game) Undo() bool {
	prev, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.state = prev
	return true
}

// transfer records history and moves the tail of src onto dst. The new
// top of a tableau source is turned face up.
func (g *Game) transfer(src Source, dst Location) {
	g.record()
	cards := g.state.removeCards(src.Location, src.Position)
	g.state.addCards(dst, cards)
	if src.Kind == Tableau {
		g.state.TryFlipTableauTop(src.Index)
	}
}

func (g *Game) record() {
	g.history.Push(g.state)
}
