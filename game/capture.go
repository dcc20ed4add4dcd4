package game

import "fmt"

// MayCapture reports whether a last seed at lastSeed lets player capture.
// Only the player's own houses qualify, and only when the facing house holds seeds.
func MayCapture(b Board, player Player, lastSeed int) bool {
	if !player.OwnsHouse(lastSeed) {
		return false
	}
	return b[Opposite(lastSeed)] > 0
}

// ApplyCapture moves the seed at lastSeed and everything in the opposite house
// into player's store. It returns the new board and the number of seeds moved.
func ApplyCapture(b Board, player Player, lastSeed int) (Board, int) {
	if !MayCapture(b, player, lastSeed) {
		panic(fmt.Sprintf("%s cannot capture at index %d", player, lastSeed))
	}
	opposite := Opposite(lastSeed)
	captured := b[lastSeed] + b[opposite]
	b[player.Store()] += captured
	b[lastSeed] = 0
	b[opposite] = 0
	return b, captured
}
