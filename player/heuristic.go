package player

import (
	"fmt"
	"kalah/game"

	"golang.org/x/exp/rand"
)

// Priority ranks a move for the greedy heuristic. Higher values win.
type Priority int

const (
	None       Priority = 0
	PlainScore Priority = 2 // some seeds reach or pass the store
	BonusScore Priority = 3 // last seed lands in the store
	Capture    Priority = 4
)

func (p Priority) String() string {
	switch p {
	case Capture:
		return "capture"
	case BonusScore:
		return "bonus score"
	case PlainScore:
		return "plain score"
	default:
		return "none"
	}
}

// Candidate pairs a legal house with its rating.
type Candidate struct {
	House    int
	Priority Priority
}

// Rate returns the highest priority that applies when player sows house.
func Rate(b game.Board, house int, player game.Player) Priority {
	seeds := b[house]
	target := game.ResolveTarget(house, seeds)

	switch {
	case canCapture(b, house, target, player):
		return Capture
	case target == player.Store():
		return BonusScore
	case house+seeds > player.HighestHouse():
		return PlainScore
	default:
		return None
	}
}

// oneLap is the number of seeds that brings the last one back to its house.
const oneLap = 2*game.HousesPerSide + 1

// canCapture predicts a capture without sowing.
func canCapture(b game.Board, house, target int, player game.Player) bool {
	if !player.OwnsHouse(target) {
		return false
	}
	if target == house {
		// Exactly one lap ends on the emptied source after dropping a seed
		// opposite. More laps refill the source before the last seed lands.
		return b[house] == oneLap
	}
	return b[target] == 0 && b[game.Opposite(target)] > 0
}

// Candidates rates every non-empty house of player in ascending house order.
func Candidates(b game.Board, player game.Player) []Candidate {
	candidates := []Candidate{}
	for _, h := range player.Houses() {
		if b[h] == 0 {
			continue
		}
		candidates = append(candidates, Candidate{House: h, Priority: Rate(b, h, player)})
	}
	return candidates
}

// best returns the first candidate with the highest priority.
func best(candidates []Candidate) Candidate {
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Priority > top.Priority {
			top = c
		}
	}
	return top
}

// ChooseMove picks the house with the highest priority, the lowest index on
// ties. When nothing rates above None a random non-empty house is picked
// from rng, or from the global source if rng is nil.
func ChooseMove(b game.Board, player game.Player, rng *rand.Rand) int {
	candidates := Candidates(b, player)
	if len(candidates) == 0 {
		panic(fmt.Sprintf("%s has no legal move", player))
	}
	if top := best(candidates); top.Priority > None {
		return top.House
	}
	return candidates[intn(rng, len(candidates))].House
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
