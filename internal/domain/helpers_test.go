package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/randomtoy/klondike-go/internal/domain"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// topRNG always picks the highest index, leaving a Fisher-Yates shuffle
// as the identity permutation.
type topRNG struct{}

func (topRNG) Intn(n int) int { return n - 1 }

// seededRNG adapts a seeded math/rand/v2 source.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// up and down build cards by face value (1 = ace, 13 = king).
func up(s domain.Suit, face int) domain.Card {
	return domain.Card{Suit: s, Rank: face - 1, FaceUp: true}
}

func down(s domain.Suit, face int) domain.Card {
	return domain.Card{Suit: s, Rank: face - 1}
}

// fillStock puts every card missing from s onto the stock, face down, so
// hand-built boards hold a full deck.
func fillStock(s *domain.State) {
	present := make(map[int]bool)
	mark := func(p []domain.Card) {
		for _, c := range p {
			present[c.ID()] = true
		}
	}
	mark(s.Stock)
	mark(s.Waste)
	for _, p := range s.Foundations {
		mark(p)
	}
	for _, p := range s.Tableau {
		mark(p)
	}
	for _, c := range domain.MakeDeck() {
		if !present[c.ID()] {
			s.Stock = append(s.Stock, c)
		}
	}
}

func mustValid(t *testing.T, s domain.State) {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("board invariant broken: %v", err)
	}
}
