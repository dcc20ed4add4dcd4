package engine

import (
	"errors"
	"kalah/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	// ErrQuit is returned by an agent whose player wants to stop the game.
	ErrQuit = errors.New("player quit")
)

// Observer is notified of everything the engine does to the game.
type Observer interface {
	MoveApplied(state *game.GameState, result game.MoveResult)
	MoveRejected(state *game.GameState, house int, err error)
	GameOver(state *game.GameState)
}
