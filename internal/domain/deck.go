package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// MakeDeck returns the 52 cards in suit-major, rank-minor order, all face down.
func MakeDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := range NumSuits {
		for r := range NumRanks {
			deck = append(deck, Card{Suit: Suit(s), Rank: r})
		}
	}
	return deck
}

// Shuffle permutes deck in place with Fisher-Yates.
func Shuffle(deck []Card, rng RNG) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
