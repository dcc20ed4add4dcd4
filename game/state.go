package game

import "fmt"

type Phase int

const (
	AwaitingMove Phase = iota
	TerminalSweep
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingMove:
		return "awaiting move"
	case TerminalSweep:
		return "terminal sweep"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// GameState represents the state of a game at any point. Play never mutates
// the receiver; it returns the next state.
type GameState struct {
	Board         Board
	CurrentPlayer Player // Player to move while AwaitingMove
	Phase         Phase
	LastMove      int  // House sown by the last move, -1 before the first
	ExtraTurn     bool // Whether the last move granted an extra turn
	Turns         int  // Moves applied so far
}

// NewGameState sets up a board with seeds in every house. Player 1 starts.
func NewGameState(seeds int) *GameState {
	return &GameState{
		Board:         NewBoard(seeds),
		CurrentPlayer: Player1,
		Phase:         AwaitingMove,
		LastMove:      -1,
	}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

// IsLegal reports whether the current player may sow house.
func (gs *GameState) IsLegal(house int) bool {
	return gs.Phase == AwaitingMove &&
		gs.CurrentPlayer.OwnsHouse(house) &&
		gs.Board[house] > 0
}

// LegalMoves lists the houses the current player may sow, ascending.
func (gs *GameState) LegalMoves() []int {
	if gs.Phase != AwaitingMove {
		return nil
	}
	moves := []int{}
	for _, h := range gs.CurrentPlayer.Houses() {
		if gs.Board[h] > 0 {
			moves = append(moves, h)
		}
	}
	return moves
}

// Play applies a legal move and returns the resulting state together with
// what happened during the sow.
func (gs *GameState) Play(house int) (*GameState, MoveResult) {
	if !gs.IsLegal(house) {
		panic(fmt.Sprintf("illegal move %d for %s in phase %s", house, gs.CurrentPlayer, gs.Phase))
	}
	next := gs.Copy()
	board, result := Sow(gs.Board, house, gs.CurrentPlayer)
	next.Board = board
	next.LastMove = house
	next.ExtraTurn = result.ExtraTurn
	next.Turns++

	switch {
	case IsTerminal(next.Board):
		next.Phase = TerminalSweep
		next.sweep()
	case !result.ExtraTurn:
		next.CurrentPlayer = gs.CurrentPlayer.Other()
	}
	return next, result
}

func (gs *GameState) sweep() {
	if gs.Phase != TerminalSweep {
		panic(fmt.Sprintf("cannot sweep in phase %s", gs.Phase))
	}
	gs.Board = Sweep(gs.Board)
	gs.Phase = Finished
}

// Winner is Undecided until the game has finished.
func (gs *GameState) Winner() Outcome {
	if gs.Phase != Finished {
		return Undecided
	}
	return Winner(gs.Board)
}

// Score returns the stores of both players.
func (gs *GameState) Score() (player1, player2 int) {
	return gs.Board[Player1.Store()], gs.Board[Player2.Store()]
}
