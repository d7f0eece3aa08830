package domain

// CanPlaceOnTableau reports whether moving may be laid on a tableau column
// whose top card is destTop (nil for an empty column). Only kings go on
// empty columns; otherwise the card must be one rank lower and of the
// opposite color.
func CanPlaceOnTableau(moving Card, destTop *Card) bool {
	if destTop == nil {
		return moving.Rank == King
	}
	return moving.Red() != destTop.Red() && moving.Rank == destTop.Rank-1
}

// CanPlaceOnFoundation reports whether moving may be laid on a foundation
// whose top card is destTop (nil for an empty foundation). Foundations start
// at the ace and climb by one within a suit.
func CanPlaceOnFoundation(moving Card, destTop *Card) bool {
	if destTop == nil {
		return moving.Rank == Ace
	}
	return moving.Suit == destTop.Suit && moving.Rank == destTop.Rank+1
}

// isRun reports whether cards form a face-up, strictly descending,
// alternating-color sequence.
func isRun(cards []Card) bool {
	for i, c := range cards {
		if !c.FaceUp {
			return false
		}
		if i == 0 {
			continue
		}
		upper := cards[i-1]
		if upper.Rank != c.Rank+1 || upper.Red() == c.Red() {
			return false
		}
	}
	return true
}
