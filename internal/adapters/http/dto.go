package http

import (
	"github.com/randomtoy/klondike-go/internal/app"
	"github.com/randomtoy/klondike-go/internal/domain"
)

// GameResponse is the JSON shape returned by every /v1/games endpoint.
type GameResponse struct {
	ID              string        `json:"id"`
	Changed         bool          `json:"changed"`
	CanUndo         bool          `json:"can_undo"`
	Win             bool          `json:"win"`
	FoundationCount int           `json:"foundation_count"`
	Status          string        `json:"status"`
	Board           BoardResponse `json:"board"`
	Meta            MetaResp      `json:"meta"`
}

// BoardResponse hides the stock and every face-down card.
type BoardResponse struct {
	StockCount  int              `json:"stock_count"`
	Waste       []CardResponse   `json:"waste"`
	Foundations [][]CardResponse `json:"foundations"`
	Tableau     [][]CardResponse `json:"tableau"`
}

type CardResponse struct {
	FaceUp bool   `json:"face_up"`
	ID     *int   `json:"id,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Rank   string `json:"rank,omitempty"`
	Color  string `json:"color,omitempty"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// PileRequest addresses a pile, and optionally a card inside it.
type PileRequest struct {
	Pile     string `json:"pile"`
	Index    int    `json:"index"`
	Position *int   `json:"position"`
}

type FlipRequest struct {
	Column *int `json:"column"`
}

type AutoMoveRequest struct {
	From PileRequest `json:"from"`
}

type MoveRequest struct {
	From PileRequest `json:"from"`
	To   PileRequest `json:"to"`
}

func (p PileRequest) location() (domain.Location, error) {
	kind, err := domain.ParsePileKind(p.Pile)
	if err != nil {
		return domain.Location{}, err
	}
	loc := domain.Location{Kind: kind, Index: p.Index}
	if err := loc.Validate(); err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

func (p PileRequest) source() (domain.Source, error) {
	loc, err := p.location()
	if err != nil {
		return domain.Source{}, err
	}
	if p.Position == nil {
		return domain.Source{}, errMissingPosition
	}
	return loc.At(*p.Position), nil
}

func toResponse(v app.GameView, requestID string) GameResponse {
	board := BoardResponse{
		StockCount:  len(v.State.Stock),
		Waste:       toCards(v.State.Waste),
		Foundations: make([][]CardResponse, len(v.State.Foundations)),
		Tableau:     make([][]CardResponse, len(v.State.Tableau)),
	}
	for i, p := range v.State.Foundations {
		board.Foundations[i] = toCards(p)
	}
	for i, p := range v.State.Tableau {
		board.Tableau[i] = toCards(p)
	}

	return GameResponse{
		ID:              v.ID,
		Changed:         v.Changed,
		CanUndo:         v.CanUndo,
		Win:             v.Win,
		FoundationCount: v.FoundationCount,
		Status:          v.Status,
		Board:           board,
		Meta:            MetaResp{RequestID: requestID},
	}
}

func toCards(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		if !c.FaceUp {
			continue
		}
		id := c.ID()
		color := "black"
		if c.Red() {
			color = "red"
		}
		out[i] = CardResponse{
			FaceUp: true,
			ID:     &id,
			Suit:   c.Suit.String(),
			Rank:   c.RankName(),
			Color:  color,
		}
	}
	return out
}
