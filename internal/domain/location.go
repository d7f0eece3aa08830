package domain

import "fmt"

// PileKind tags the four kinds of pile on the board.
type PileKind int

const (
	Stock PileKind = iota
	Waste
	Foundation
	Tableau
)

const (
	NumFoundations = 4
	NumTableaus    = 7
)

func (k PileKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Foundation:
		return "foundation"
	case Tableau:
		return "tableau"
	default:
		return fmt.Sprintf("PileKind(%d)", int(k))
	}
}

// ParsePileKind maps a pile name back to its kind.
func ParsePileKind(s string) (PileKind, error) {
	switch s {
	case "stock":
		return Stock, nil
	case "waste":
		return Waste, nil
	case "foundation":
		return Foundation, nil
	case "tableau":
		return Tableau, nil
	default:
		return 0, fmt.Errorf("%w: unknown pile %q", ErrInvalidLocation, s)
	}
}

// Location names a single pile. Index is only meaningful for
// foundations (0..3) and tableau columns (0..6).
type Location struct {
	Kind  PileKind
	Index int
}

// Source is a position inside a pile from which cards are picked up.
type Source struct {
	Location
	Position int
}

func StockPile() Location { return Location{Kind: Stock} }
func WastePile() Location { return Location{Kind: Waste} }
func FoundationPile(i int) Location { return Location{Kind: Foundation, Index: i} }
func TableauPile(i int) Location { return Location{Kind: Tableau, Index: i} }
func (l Location) At(position int) Source { return Source{Location: l, Position: position} }

// Validate checks that the location names a pile that exists.
func (l Location) Validate() error {
	switch l.Kind {
	case Stock, Waste:
		return nil
	case Foundation:
		if l.Index < 0 || l.Index >= NumFoundations {
			return fmt.Errorf("%w: foundation %d", ErrInvalidLocation, l.Index)
		}
		return nil
	case Tableau:
		if l.Index < 0 || l.Index >= NumTableaus {
			return fmt.Errorf("%w: tableau %d", ErrInvalidLocation, l.Index)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLocation, l.Kind)
	}
}

func (l Location) String() string {
	switch l.Kind {
	case Foundation, Tableau:
		return fmt.Sprintf("%s[%d]", l.Kind, l.Index)
	default:
		return l.Kind.String()
	}
}
