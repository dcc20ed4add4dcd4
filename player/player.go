package player

import (
	"context"
	"fmt"
	"kalah/game"

	"golang.org/x/exp/rand"
)

// Agent chooses moves for whichever player is to move in the given state.
type Agent interface {
	Name() string
	// FindMove returns the house to sow. It may return a house that is not
	// legal; the engine rejects it and asks again. Agents that wait on input
	// return ctx.Err() once ctx is done.
	FindMove(ctx context.Context, gs *game.GameState) (int, error)
}

// Heuristic plays the greedy single-ply rule from ChooseMove.
type Heuristic struct {
	rng *rand.Rand
}

// NewHeuristic returns a heuristic player. A nil rng uses the global source.
func NewHeuristic(rng *rand.Rand) *Heuristic {
	return &Heuristic{rng: rng}
}

func (h *Heuristic) Name() string { return "heuristic" }

func (h *Heuristic) FindMove(ctx context.Context, gs *game.GameState) (int, error) {
	if len(gs.LegalMoves()) == 0 {
		return 0, fmt.Errorf("%s has no legal move in phase %s", gs.CurrentPlayer, gs.Phase)
	}
	return ChooseMove(gs.Board, gs.CurrentPlayer, h.rng), nil
}

// Random picks uniformly among the legal moves. Used as a baseline opponent.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return "random" }

func (r *Random) FindMove(ctx context.Context, gs *game.GameState) (int, error) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%s has no legal move in phase %s", gs.CurrentPlayer, gs.Phase)
	}
	return moves[intn(r.rng, len(moves))], nil
}

// New returns the computer player registered under name.
func New(name string, rng *rand.Rand) (Agent, error) {
	switch name {
	case "heuristic", "":
		return NewHeuristic(rng), nil
	case "random":
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown player %q", name)
	}
}
