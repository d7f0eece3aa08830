package domain

import "errors"

var (
	ErrInvalidLocation = errors.New("invalid pile location")
	ErrGameNotFound    = errors.New("game not found")
	ErrTooManyGames    = errors.New("too many active games")
	ErrBrokenDeck      = errors.New("card partition broken")
)
