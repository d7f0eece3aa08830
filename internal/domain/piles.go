package domain

// MovableStack returns a copy of the cards that may be picked up at src,
// or nil when nothing there is movable. Waste and foundations only give up
// their top card; a tableau gives up a valid run running to the column's
// end; the stock never gives up cards this way.
func (s *State) MovableStack(src Source) []Card {
	pile := s.Pile(src.Location)
	if src.Position < 0 || src.Position >= len(pile) {
		return nil
	}

	switch src.Kind {
	case Stock:
		return nil
	case Waste, Foundation:
		if src.Position != len(pile)-1 {
			return nil
		}
		return []Card{pile[src.Position]}
	case Tableau:
		run := pile[src.Position:]
		if !isRun(run) {
			return nil
		}
		return clonePile(run)
	}
	return nil
}

// removeCards detaches the tail of the pile at loc starting at position
// start and returns it.
func (s *State) removeCards(loc Location, start int) []Card {
	p := s.pileRef(loc)
	if p == nil || start < 0 || start > len(*p) {
		return nil
	}
	removed := clonePile((*p)[start:])
	*p = (*p)[:start:start]
	return removed
}

// addCards appends cards, in order, to the pile at loc.
func (s *State) addCards(loc Location, cards []Card) {
	p := s.pileRef(loc)
	if p == nil {
		return
	}
	*p = append(*p, cards...)
}

// TryFlipTableauTop turns the top card of a tableau column face up.
// It reports whether a card was turned.
func (s *State) TryFlipTableauTop(column int) bool {
	p := s.pileRef(TableauPile(column))
	if p == nil || len(*p) == 0 {
		return false
	}
	last := &(*p)[len(*p)-1]
	if last.FaceUp {
		return false
	}
	last.FaceUp = true
	return true
}
