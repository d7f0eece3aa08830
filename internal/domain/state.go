package domain

import (
	"fmt"
	"slices"
)

// State is the whole board. The top of every pile is its last element.
type State struct {
	Stock       []Card                 `json:"stock"`
	Waste       []Card                 `json:"waste"`
	Foundations [NumFoundations][]Card `json:"foundations"`
	Tableau     [NumTableaus][]Card    `json:"tableau"`
}

// Deal lays out a shuffled deck: column c receives c+1 cards with only the
// last one face up, and the remaining 24 cards become the face-down stock.
func Deal(deck []Card) State {
	var s State
	idx := 0
	for col := range NumTableaus {
		pile := make([]Card, 0, col+1)
		for row := 0; row <= col; row++ {
			c := deck[idx]
			idx++
			c.FaceUp = row == col
			pile = append(pile, c)
		}
		s.Tableau[col] = pile
	}

	s.Stock = make([]Card, 0, len(deck)-idx)
	for _, c := range deck[idx:] {
		c.FaceUp = false
		s.Stock = append(s.Stock, c)
	}
	s.Waste = []Card{}
	for i := range s.Foundations {
		s.Foundations[i] = []Card{}
	}
	return s
}

// Clone returns a deep copy sharing no backing arrays with s.
func (s State) Clone() State {
	out := State{
		Stock: clonePile(s.Stock),
		Waste: clonePile(s.Waste),
	}
	for i, p := range s.Foundations {
		out.Foundations[i] = clonePile(p)
	}
	for i, p := range s.Tableau {
		out.Tableau[i] = clonePile(p)
	}
	return out
}

func clonePile(p []Card) []Card {
	if p == nil {
		return []Card{}
	}
	return slices.Clone(p)
}

// Equal reports whether two states hold the same cards in the same places
// with the same orientation.
func (s State) Equal(o State) bool {
	if !slices.Equal(s.Stock, o.Stock) || !slices.Equal(s.Waste, o.Waste) {
		return false
	}
	for i := range s.Foundations {
		if !slices.Equal(s.Foundations[i], o.Foundations[i]) {
			return false
		}
	}
	for i := range s.Tableau {
		if !slices.Equal(s.Tableau[i], o.Tableau[i]) {
			return false
		}
	}
	return true
}

// FoundationCount is the number of cards on all four foundations.
func (s State) FoundationCount() int {
	n := 0
	for _, p := range s.Foundations {
		n += len(p)
	}
	return n
}

// IsWin reports whether every card has reached the foundations.
func (s State) IsWin() bool {
	return s.FoundationCount() == DeckSize
}

// CardCount is the number of cards across every pile.
func (s State) CardCount() int {
	n := len(s.Stock) + len(s.Waste) + s.FoundationCount()
	for _, p := range s.Tableau {
		n += len(p)
	}
	return n
}

// Validate checks that the piles partition exactly one 52-card deck.
// A failure is a programming defect, never a player error.
func (s State) Validate() error {
	if n := s.CardCount(); n != DeckSize {
		return fmt.Errorf("%w: %d cards on the board", ErrBrokenDeck, n)
	}
	var seen [DeckSize]bool
	var bad error
	s.each(func(loc Location, c Card) bool {
		id := c.ID()
		if c.Rank < 0 || c.Rank >= NumRanks || c.Suit < 0 || int(c.Suit) >= NumSuits {
			bad = fmt.Errorf("%w: invalid card %+v in %s", ErrBrokenDeck, c, loc)
			return false
		}
		if seen[id] {
			bad = fmt.Errorf("%w: %s appears twice (again in %s)", ErrBrokenDeck, c, loc)
			return false
		}
		seen[id] = true
		return true
	})
	return bad
}

func (s State) each(fn func(Location, Card) bool) {
	visit := func(loc Location, p []Card) bool {
		for _, c := range p {
			if !fn(loc, c) {
				return false
			}
		}
		return true
	}
	if !visit(StockPile(), s.Stock) || !visit(WastePile(), s.Waste) {
		return
	}
	for i, p := range s.Foundations {
		if !visit(FoundationPile(i), p) {
			return
		}
	}
	for i, p := range s.Tableau {
		if !visit(TableauPile(i), p) {
			return
		}
	}
}

// Pile returns the cards at loc, or nil when loc does not exist.
func (s *State) Pile(loc Location) []Card {
	p := s.pileRef(loc)
	if p == nil {
		return nil
	}
	return *p
}

func (s *State) pileRef(loc Location) *[]Card {
	if loc.Validate() != nil {
		return nil
	}
	switch loc.Kind {
	case Stock:
		return &s.Stock
	case Waste:
		return &s.Waste
	case Foundation:
		return &s.Foundations[loc.Index]
	case Tableau:
		return &s.Tableau[loc.Index]
	}
	return nil
}

// top returns the last card of p, or nil for an empty pile.
func top(p []Card) *Card {
	if len(p) == 0 {
		return nil
	}
	c := p[len(p)-1]
	return &c
}
