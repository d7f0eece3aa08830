package domain

import "fmt"

// Suit identifies one of the four French suits.
type Suit int

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

// NumSuits and NumRanks describe a standard 52-card deck.
const (
	NumSuits = 4
	NumRanks = 13
	DeckSize = NumSuits * NumRanks
)

// Rank indices at the edges of a suit.
const (
	Ace  = 0
	King = NumRanks - 1
)

var (
	suitNames   = [NumSuits]string{"spade", "heart", "diamond", "club"}
	suitSymbols = [NumSuits]string{"♠", "♥", "♦", "♣"}
	rankNames   = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

func (s Suit) String() string {
	if s < 0 || int(s) >= NumSuits {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit glyph used when printing cards.
func (s Suit) Symbol() string {
	if s < 0 || int(s) >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// Red reports whether the suit is hearts or diamonds.
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

// Card is a playing card. Rank is an index 0..12 mapping to A..K.
// Identity never changes during a game; only FaceUp is mutated.
type Card struct {
	Suit   Suit `json:"suit"`
	Rank   int  `json:"rank"`
	FaceUp bool `json:"face_up"`
}

// ID is the stable identity of the card, unique within a deck.
func (c Card) ID() int {
	return int(c.Suit)*NumRanks + c.Rank
}

func (c Card) Red() bool {
	return c.Suit.Red()
}

// RankName returns "A".."K".
func (c Card) RankName() string {
	if c.Rank < 0 || c.Rank >= NumRanks {
		return "?"
	}
	return rankNames[c.Rank]
}

func (c Card) String() string {
	return c.RankName() + c.Suit.Symbol()
}
