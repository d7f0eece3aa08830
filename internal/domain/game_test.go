package domain_test

import (
	"testing"

	"github.com/randomtoy/klondike-go/internal/domain"
)

func TestNewGame_Deal(t *testing.T) {
	g := domain.NewGame(newSeededRNG(7))
	s := g.State()
	mustValid(t, s)

	for col, pile := range s.Tableau {
		if len(pile) != col+1 {
			t.Fatalf("column %d: expected %d cards, got %d", col, col+1, len(pile))
		}
		for i, c := range pile {
			wantUp := i == len(pile)-1
			if c.FaceUp != wantUp {
				t.Errorf("column %d card %d: expected faceUp=%v", col, i, wantUp)
			}
		}
	}
	if len(s.Stock) != 24 {
		t.Errorf("expected 24 stock cards, got %d", len(s.Stock))
	}
	for _, c := range s.Stock {
		if c.FaceUp {
			t.Errorf("stock card %s is face up", c)
		}
	}
	if len(s.Waste) != 0 || s.FoundationCount() != 0 {
		t.Errorf("waste and foundations should start empty")
	}
	if g.CanUndo() {
		t.Error("fresh game should have no history")
	}
}

func TestDeal_UsesDeckOrder(t *testing.T) {
	deck := domain.MakeDeck()
	s := domain.Deal(deck)

	if s.Tableau[0][0].ID() != 0 {
		t.Errorf("column 0 should get the first card, got %s", s.Tableau[0][0])
	}
	if got := s.Tableau[6][6].ID(); got != 27 {
		t.Errorf("column 6 top should be card 27, got %d", got)
	}
	if got := s.Stock[0].ID(); got != 28 {
		t.Errorf("stock bottom should be card 28, got %d", got)
	}
	if deck[0].FaceUp {
		t.Error("Deal must not mutate the input deck")
	}
}

func TestDraw_TurnsOneCard(t *testing.T) {
	g := domain.NewGame(newSeededRNG(3))
	before := g.State()

	if !g.Draw() {
		t.Fatal("expected draw to succeed")
	}
	s := g.State()
	if len(s.Stock) != 23 || len(s.Waste) != 1 {
		t.Fatalf("expected 23/1 stock/waste, got %d/%d", len(s.Stock), len(s.Waste))
	}
	want := before.Stock[len(before.Stock)-1]
	want.FaceUp = true
	if s.Waste[0] != want {
		t.Errorf("expected %s on waste, got %s", want, s.Waste[0])
	}
	if g.HistoryLen() != 1 {
		t.Errorf("expected one history entry, got %d", g.HistoryLen())
	}
}

func TestDraw_RecyclesWasteReversed(t *testing.T) {
	var s domain.State
	s.Waste = []domain.Card{up(domain.Spade, 5), up(domain.Heart, 9), up(domain.Club, 2)}
	g := domain.FromState(topRNG{}, s)

	if !g.Draw() {
		t.Fatal("expected recycle to succeed")
	}
	got := g.State()
	if len(got.Waste) != 0 {
		t.Fatalf("waste should be empty, has %d", len(got.Waste))
	}
	want := []domain.Card{down(domain.Club, 2), down(domain.Heart, 9), down(domain.Spade, 5)}
	if len(got.Stock) != len(want) {
		t.Fatalf("expected %d stock cards, got %d", len(want), len(got.Stock))
	}
	for i := range want {
		if got.Stock[i] != want[i] {
			t.Errorf("stock[%d]: expected %s face down, got %+v", i, want[i], got.Stock[i])
		}
	}

	// The first card ever drawn comes back first.
	g.Draw()
	if w := g.State().Waste; len(w) != 1 || w[0] != up(domain.Spade, 5) {
		t.Errorf("expected 5♠ to be drawn again first, got %v", w)
	}
}

func TestDraw_BothEmptyIsNoOp(t *testing.T) {
	var s domain.State
	s.Foundations[0] = []domain.Card{up(domain.Spade, 1)}
	g := domain.FromState(topRNG{}, s)

	if g.Draw() {
		t.Fatal("expected no-op")
	}
	if g.CanUndo() {
		t.Error("no-op draw left a history entry")
	}
}

func TestFlip(t *testing.T) {
	var s domain.State
	s.Tableau[0] = []domain.Card{down(domain.Heart, 4)}
	s.Tableau[1] = []domain.Card{up(domain.Club, 4)}
	g := domain.FromState(topRNG{}, s)

	if g.Flip(1) {
		t.Error("face-up top should not flip")
	}
	if g.Flip(2) {
		t.Error("empty column should not flip")
	}
	if g.Flip(-1) || g.Flip(7) {
		t.Error("missing columns should not flip")
	}
	if g.HistoryLen() != 0 {
		t.Fatalf("rejected flips recorded history: %d", g.HistoryLen())
	}

	if !g.Flip(0) {
		t.Fatal("expected face-down top to flip")
	}
	if !g.State().Tableau[0][0].FaceUp {
		t.Error("card still face down")
	}
	if g.HistoryLen() != 1 {
		t.Errorf("expected one history entry, got %d", g.HistoryLen())
	}
}

func TestMoveToFoundation_FirstAcceptingFoundation(t *testing.T) {
	var s domain.State
	s.Foundations[0] = []domain.Card{up(domain.Spade, 1)}
	s.Tableau[0] = []domain.Card{down(domain.Heart, 5), up(domain.Club, 1)}
	s.Waste = []domain.Card{up(domain.Spade, 2)}
	fillStock(&s)
	g := domain.FromState(topRNG{}, s)

	if !g.MoveToFoundation(domain.TableauPile(0).At(1)) {
		t.Fatal("expected ace to move")
	}
	got := g.State()
	if len(got.Foundations[1]) != 1 || got.Foundations[1][0] != up(domain.Club, 1) {
		t.Errorf("expected A♣ on foundation 1, got %v", got.Foundations[1])
	}
	if !got.Tableau[0][0].FaceUp {
		t.Error("new tableau top should be turned face up")
	}

	if !g.MoveToFoundation(domain.WastePile().At(0)) {
		t.Fatal("expected 2♠ to move")
	}
	if n := len(g.State().Foundations[0]); n != 2 {
		t.Errorf("expected 2♠ on foundation 0, foundation has %d cards", n)
	}
	mustValid(t, g.State())
	if g.HistoryLen() != 2 {
		t.Errorf("expected 2 history entries, got %d", g.HistoryLen())
	}
}

func TestMoveToFoundation_Rejected(t *testing.T) {
	var s domain.State
	s.Tableau[0] = []domain.Card{up(domain.Spade, 3), up(domain.Heart, 2)}
	s.Tableau[1] = []domain.Card{up(domain.Club, 5)}
	g := domain.FromState(topRNG{}, s)
	before := g.State()

	if g.MoveToFoundation(domain.TableauPile(0).At(0)) {
		t.Error("multi-card stack must not auto-move")
	}
	if g.MoveToFoundation(domain.TableauPile(1).At(0)) {
		t.Error("5♣ has no foundation to go to")
	}
	if g.MoveToFoundation(domain.StockPile().At(0)) {
		t.Error("stock cannot auto-move")
	}
	if !g.State().Equal(before) || g.CanUndo() {
		t.Error("rejected auto-move changed the game")
	}
}

func TestMove_TableauRunCarriesTogether(t *testing.T) {
	var s domain.State
	s.Tableau[0] = []domain.Card{down(domain.Diamond, 9), up(domain.Spade, 8), up(domain.Heart, 7)}
	s.Tableau[1] = []domain.Card{up(domain.Heart, 9)}
	fillStock(&s)
	g := domain.FromState(topRNG{}, s)

	if !g.Move(domain.TableauPile(0).At(1), domain.TableauPile(1)) {
		t.Fatal("expected run to move")
	}
	got := g.State()
	want := []domain.Card{up(domain.Heart, 9), up(domain.Spade, 8), up(domain.Heart, 7)}
	if len(got.Tableau[1]) != 3 {
		t.Fatalf("expected 3 cards on column 1, got %v", got.Tableau[1])
	}
	for i := range want {
		if got.Tableau[1][i] != want[i] {
			t.Errorf("column 1[%d]: expected %s, got %s", i, want[i], got.Tableau[1][i])
		}
	}
	if len(got.Tableau[0]) != 1 || !got.Tableau[0][0].FaceUp {
		t.Errorf("9♦ should be alone and face up, got %+v", got.Tableau[0])
	}
	mustValid(t, got)
}

func TestMove_KingToEmptyColumn(t *testing.T) {
	var s domain.State
	s.Waste = []domain.Card{up(domain.Diamond, 13)}
	g := domain.FromState(topRNG{}, s)

	if !g.Move(domain.WastePile().At(0), domain.TableauPile(4)) {
		t.Fatal("expected king to move to empty column")
	}
	if got := g.State(); len(got.Waste) != 0 || len(got.Tableau[4]) != 1 {
		t.Errorf("unexpected board: waste %v, column 4 %v", got.Waste, got.Tableau[4])
	}
}

func TestMove_Rejected(t *testing.T) {
	var s domain.State
	s.Tableau[0] = []domain.Card{down(domain.Diamond, 9), up(domain.Spade, 2), up(domain.Heart, 1)}
	s.Tableau[1] = []domain.Card{up(domain.Spade, 3)}
	s.Tableau[2] = []domain.Card{up(domain.Heart, 12)}
	s.Waste = []domain.Card{up(domain.Club, 12), up(domain.Club, 11)}
	s.Foundations[0] = []domain.Card{up(domain.Club, 1)}
	fillStock(&s)
	g := domain.FromState(topRNG{}, s)
	before := g.State()

	cases := []struct {
		name string
		src  domain.Source
		dst  domain.Location
	}{
		{"two cards onto foundation", domain.TableauPile(0).At(1), domain.FoundationPile(1)},
		{"face-down card in stack", domain.TableauPile(0).At(0), domain.TableauPile(3)},
		{"same color", domain.TableauPile(0).At(1), domain.TableauPile(1)},
		{"queen onto empty column", domain.TableauPile(2).At(0), domain.TableauPile(3)},
		{"waste below top", domain.WastePile().At(0), domain.TableauPile(3)},
		{"onto the stock", domain.WastePile().At(1), domain.StockPile()},
		{"onto the waste", domain.TableauPile(1).At(0), domain.WastePile()},
		{"from the stock", domain.StockPile().At(0), domain.TableauPile(2)},
		{"onto itself", domain.TableauPile(1).At(0), domain.TableauPile(1)},
		{"missing column", domain.TableauPile(1).At(0), domain.TableauPile(7)},
		{"ace onto started foundation", domain.TableauPile(0).At(2), domain.FoundationPile(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if g.Move(tc.src, tc.dst) {
				t.Fatal("expected move to be rejected")
			}
			if !g.State().Equal(before) || g.CanUndo() {
				t.Fatal("rejected move changed the game")
			}
		})
	}
}

func TestUndo_EmptyHistoryIsNoOp(t *testing.T) {
	g := domain.NewGame(newSeededRNG(11))
	before := g.State()
	if g.Undo() {
		t.Fatal("expected undo to be a no-op")
	}
	if !g.State().Equal(before) {
		t.Error("undo without history changed the board")
	}
}

func TestUndo_SnapshotsAreIndependent(t *testing.T) {
	var s domain.State
	s.Tableau[0] = []domain.Card{down(domain.Heart, 4), up(domain.Club, 1)}
	s.Waste = []domain.Card{up(domain.Club, 2)}
	g := domain.FromState(topRNG{}, s)
	before := g.State()

	g.MoveToFoundation(domain.TableauPile(0).At(1))
	g.MoveToFoundation(domain.WastePile().At(0))
	if !g.Undo() {
		t.Fatal("expected undo")
	}
	if got := g.State(); !got.Tableau[0][0].FaceUp || len(got.Foundations[0]) != 1 {
		t.Fatalf("first undo should leave A♣ up and 4♥ revealed: %+v", got)
	}
	if !g.Undo() {
		t.Fatal("expected second undo")
	}
	if !g.State().Equal(before) {
		t.Errorf("undo did not restore the original board: %+v", g.State())
	}
}

func TestEndToEnd_DrawThreeThenUndo(t *testing.T) {
	g := domain.NewGame(newSeededRNG(2024))
	initial := g.State()

	for range 3 {
		if !g.Draw() {
			t.Fatal("draw failed")
		}
	}
	s := g.State()
	if len(s.Waste) != 3 {
		t.Fatalf("expected 3 waste cards, got %d", len(s.Waste))
	}
	third := initial.Stock[len(initial.Stock)-3]
	if s.Waste[2].ID() != third.ID() {
		t.Errorf("waste top should be the third card drawn (%s), got %s", third, s.Waste[2])
	}
	for _, c := range s.Waste {
		if !c.FaceUp {
			t.Errorf("waste card %s is face down", c)
		}
	}

	g.Undo()
	if n := len(g.State().Waste); n != 2 {
		t.Fatalf("expected 2 waste cards after undo, got %d", n)
	}
	g.Undo()
	g.Undo()
	if !g.State().Equal(initial) {
		t.Error("board does not match the initial deal")
	}
	if g.CanUndo() {
		t.Error("history should be empty")
	}
}

func TestReset_ClearsHistory(t *testing.T) {
	g := domain.NewGame(newSeededRNG(5))
	g.Draw()
	g.Draw()
	g.Reset()
	if g.CanUndo() {
		t.Error("new game kept old history")
	}
	mustValid(t, g.State())
}

func TestWinDetection(t *testing.T) {
	var s domain.State
	for i := range domain.NumFoundations {
		for face := 1; face <= 13; face++ {
			s.Foundations[i] = append(s.Foundations[i], up(domain.Suit(i), face))
		}
	}
	mustValid(t, s)
	if !s.IsWin() || s.FoundationCount() != 52 {
		t.Fatalf("full foundations should win, count %d", s.FoundationCount())
	}

	king := s.Foundations[0][12]
	s.Foundations[0] = s.Foundations[0][:12]
	s.Waste = []domain.Card{king}
	g := domain.FromState(topRNG{}, s)
	if g.IsWin() || g.FoundationCount() != 51 {
		t.Fatalf("51 cards should not win")
	}
	if !g.MoveToFoundation(domain.WastePile().At(0)) {
		t.Fatal("expected K♠ to reach the foundation")
	}
	if !g.IsWin() {
		t.Error("expected win after last card")
	}
}

// Every accepted action must keep the deck intact and be exactly undoable.
func TestRandomPlay_ConservationAndUndo(t *testing.T) {
	rng := newSeededRNG(99)
	for game := range 20 {
		g := domain.NewGame(rng)
		for step := range 400 {
			before := g.State()
			act := randomAction(rng, before)
			if !act(g) {
				if !g.State().Equal(before) {
					t.Fatalf("game %d step %d: rejected action changed the board", game, step)
				}
				continue
			}
			mustValid(t, g.State())

			n := g.HistoryLen()
			g.Undo()
			if !g.State().Equal(before) || g.HistoryLen() != n-1 {
				t.Fatalf("game %d step %d: undo did not restore the board", game, step)
			}
			act(g)
		}
	}
}

func randomAction(rng seededRNG, s domain.State) func(*domain.Game) bool {
	kind := rng.Intn(5)
	col := rng.Intn(domain.NumTableaus)
	switch kind {
	case 0:
		return (*domain.Game).Draw
	case 1:
		return func(g *domain.Game) bool { return g.Flip(col) }
	case 2:
		src := randomSource(rng, s)
		return func(g *domain.Game) bool { return g.MoveToFoundation(src) }
	default:
		src := randomSource(rng, s)
		var dst domain.Location
		if rng.Intn(3) == 0 {
			dst = domain.FoundationPile(rng.Intn(domain.NumFoundations))
		} else {
			dst = domain.TableauPile(rng.Intn(domain.NumTableaus))
		}
		return func(g *domain.Game) bool { return g.Move(src, dst) }
	}
}

func randomSource(rng seededRNG, s domain.State) domain.Source {
	switch rng.Intn(3) {
	case 0:
		return domain.WastePile().At(len(s.Waste) - 1)
	case 1:
		i := rng.Intn(domain.NumFoundations)
		return domain.FoundationPile(i).At(len(s.Foundations[i]) - 1)
	default:
		i := rng.Intn(domain.NumTableaus)
		pile := s.Tableau[i]
		if len(pile) == 0 {
			return domain.TableauPile(i).At(0)
		}
		return domain.TableauPile(i).At(rng.Intn(len(pile)))
	}
}
