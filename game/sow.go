package game

import "fmt"

// MoveResult describes what happened while sowing a single house.
type MoveResult struct {
	House     int
	ExtraTurn bool // last seed landed in the mover's store
	LastSeed  int  // index that received the last seed
	Captured  int  // seeds moved to the store by a capture, 0 if none
}

// Sow empties house and distributes its seeds counter-clockwise for player,
// skipping the opponent's store. The caller must only pass a non-empty house
// owned by player; anything else panics.
func Sow(b Board, house int, player Player) (Board, MoveResult) {
	if !player.OwnsHouse(house) {
		panic(fmt.Sprintf("%s cannot sow house %d", player, house))
	}
	seeds := b[house]
	if seeds == 0 {
		panic(fmt.Sprintf("%s cannot sow empty house %d", player, house))
	}
	b[house] = 0

	result := MoveResult{
		House:     house,
		ExtraTurn: ResolveTarget(house, seeds) == player.Store(),
	}

	skip := player.OpponentStore()
	pos := house
	for seeds > 0 {
		pos = (pos + 1) % BoardSize
		if pos == skip {
			continue
		}
		b[pos]++
		seeds--
	}
	result.LastSeed = pos

	// Last house was empty before the sow.
	if b[pos] == 1 && MayCapture(b, player, pos) {
		b, result.Captured = ApplyCapture(b, player, pos)
	}
	return b, result
}
